package bridge

import (
	"github.com/dshills/cellbridge/internal/host"
	"github.com/dshills/cellbridge/internal/tui"
)

// ColourConverter maps rendering-library colours to host colours. Separate
// foreground and background entry points let a policy pick a different
// default for each.
type ColourConverter interface {
	ConvertFg(c tui.Color, mod tui.Modifier) host.RGBA
	ConvertBg(c tui.Color, mod tui.Modifier) host.RGBA
}

// BasicColourConverter is the default conversion policy.
//
//   - Reset converts to DefaultFg or DefaultBg depending on the call site.
//   - RGB colours are copied exactly.
//   - Named colours convert to the closest named host colour.
//   - Indexed colours are looked up in IndexedColours. A nil table or an
//     index past its end converts to the default.
//   - Modifiers are ignored.
type BasicColourConverter struct {
	DefaultFg      host.RGBA
	DefaultBg      host.RGBA
	IndexedColours []host.RGBA
}

// DefaultColourConverter returns white on black with no indexed palette.
func DefaultColourConverter() BasicColourConverter {
	return BasicColourConverter{
		DefaultFg: host.White,
		DefaultBg: host.Black,
	}
}

func (c BasicColourConverter) ConvertFg(color tui.Color, _ tui.Modifier) host.RGBA {
	return c.convert(color, c.DefaultFg)
}

func (c BasicColourConverter) ConvertBg(color tui.Color, _ tui.Modifier) host.RGBA {
	return c.convert(color, c.DefaultBg)
}

func (c BasicColourConverter) convert(color tui.Color, def host.RGBA) host.RGBA {
	switch color.Kind() {
	case tui.KindNamed:
		if rgba, ok := namedColours[color.Name()]; ok {
			return rgba
		}
		return def
	case tui.KindRGB:
		r, g, b := color.RGB()
		return host.RGB(r, g, b)
	case tui.KindIndexed:
		i := int(color.Index())
		if i < len(c.IndexedColours) {
			return c.IndexedColours[i]
		}
		return def
	default:
		return def
	}
}

var namedColours = map[tui.NamedColor]host.RGBA{
	tui.Black:        host.Black,
	tui.Red:          host.DarkRed,
	tui.Green:        host.Green,
	tui.Yellow:       host.Yellow,
	tui.Blue:         host.Blue,
	tui.Magenta:      host.DarkMagenta,
	tui.Cyan:         host.Cyan,
	tui.Gray:         host.Gray,
	tui.DarkGray:     host.DarkGray,
	tui.LightRed:     host.Red,
	tui.LightGreen:   host.LightGreen,
	tui.LightYellow:  host.LightYellow,
	tui.LightBlue:    host.LightBlue,
	tui.LightMagenta: host.Magenta,
	tui.LightCyan:    host.LightCyan,
	tui.White:        host.White,
}

// XtermPalette returns the standard 256-colour xterm palette, for use as
// IndexedColours.
func XtermPalette() []host.RGBA {
	palette := make([]host.RGBA, 0, 256)
	palette = append(palette,
		host.RGB(0, 0, 0), host.RGB(128, 0, 0), host.RGB(0, 128, 0), host.RGB(128, 128, 0),
		host.RGB(0, 0, 128), host.RGB(128, 0, 128), host.RGB(0, 128, 128), host.RGB(192, 192, 192),
		host.RGB(128, 128, 128), host.RGB(255, 0, 0), host.RGB(0, 255, 0), host.RGB(255, 255, 0),
		host.RGB(0, 0, 255), host.RGB(255, 0, 255), host.RGB(0, 255, 255), host.RGB(255, 255, 255),
	)

	levels := [6]uint8{0, 95, 135, 175, 215, 255}
	for r := range 6 {
		for g := range 6 {
			for b := range 6 {
				palette = append(palette, host.RGB(levels[r], levels[g], levels[b]))
			}
		}
	}

	for i := range 24 {
		v := uint8(8 + 10*i)
		palette = append(palette, host.RGB(v, v, v))
	}
	return palette
}
