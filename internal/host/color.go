package host

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// RGBA is the host's native colour. Channels are stored as bytes so that
// colours copied in from 24-bit sources survive unchanged.
type RGBA struct {
	R, G, B, A uint8
}

// RGB returns an opaque colour.
func RGB(r, g, b uint8) RGBA {
	return RGBA{R: r, G: g, B: b, A: 255}
}

// NewRGBA returns a colour with an explicit alpha channel.
func NewRGBA(r, g, b, a uint8) RGBA {
	return RGBA{R: r, G: g, B: b, A: a}
}

// ParseHex parses "#RRGGBB" or "#RGB" into an opaque colour.
func ParseHex(s string) (RGBA, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") || (len(s) != 7 && len(s) != 4) {
		return RGBA{}, fmt.Errorf("parse colour %q: %w", s, ErrInvalidColor)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return RGBA{}, fmt.Errorf("parse colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGB(r, g, b), nil
}

// ParseColor accepts either a palette name (see Named) or a hex string.
func ParseColor(s string) (RGBA, error) {
	if c, ok := Named(s); ok {
		return c, nil
	}
	return ParseHex(s)
}

// Colorful converts to a go-colorful colour, dropping alpha.
func (c RGBA) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// Lerp blends towards other by t in [0, 1] in RGB space. Alpha is
// interpolated linearly.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	t = max(0, min(1, t))
	r, g, b := c.Colorful().BlendRgb(other.Colorful(), t).Clamped().RGB255()
	a := float64(c.A) + (float64(other.A)-float64(c.A))*t
	return RGBA{R: r, G: g, B: b, A: uint8(a + 0.5)}
}

// Hex returns the colour as "#rrggbb".
func (c RGBA) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c RGBA) String() string {
	if c.A == 255 {
		return c.Hex()
	}
	return fmt.Sprintf("%s/%d", c.Hex(), c.A)
}

// ToTcell converts to a 24-bit tcell colour. Alpha is ignored.
func (c RGBA) ToTcell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// ColorPair is a foreground and background colour applied together.
type ColorPair struct {
	Fg RGBA
	Bg RGBA
}

// NewColorPair creates a colour pair.
func NewColorPair(fg, bg RGBA) ColorPair {
	return ColorPair{Fg: fg, Bg: bg}
}

// Style converts the pair into a tcell style.
func (p ColorPair) Style() tcell.Style {
	return tcell.StyleDefault.Foreground(p.Fg.ToTcell()).Background(p.Bg.ToTcell())
}

// Named palette. Values follow the X11 colour names.
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(255, 255, 255)
	Red         = RGB(255, 0, 0)
	DarkRed     = RGB(139, 0, 0)
	Green       = RGB(0, 255, 0)
	DarkGreen   = RGB(0, 100, 0)
	LightGreen  = RGB(144, 238, 144)
	Blue        = RGB(0, 0, 255)
	DarkBlue    = RGB(0, 0, 139)
	LightBlue   = RGB(173, 216, 230)
	Yellow      = RGB(255, 255, 0)
	LightYellow = RGB(255, 255, 224)
	Magenta     = RGB(255, 0, 255)
	DarkMagenta = RGB(139, 0, 139)
	Cyan        = RGB(0, 255, 255)
	DarkCyan    = RGB(0, 139, 139)
	LightCyan   = RGB(224, 255, 255)
	Gray        = RGB(190, 190, 190)
	DarkGray    = RGB(169, 169, 169)
	LightGray   = RGB(211, 211, 211)
	Orange      = RGB(255, 165, 0)
	Navy        = RGB(0, 0, 128)
	Purple      = RGB(160, 32, 240)
	Transparent = NewRGBA(0, 0, 0, 0)
)

var namedColors = map[string]RGBA{
	"black":       Black,
	"white":       White,
	"red":         Red,
	"darkred":     DarkRed,
	"green":       Green,
	"darkgreen":   DarkGreen,
	"lightgreen":  LightGreen,
	"blue":        Blue,
	"darkblue":    DarkBlue,
	"lightblue":   LightBlue,
	"yellow":      Yellow,
	"lightyellow": LightYellow,
	"magenta":     Magenta,
	"darkmagenta": DarkMagenta,
	"cyan":        Cyan,
	"darkcyan":    DarkCyan,
	"lightcyan":   LightCyan,
	"gray":        Gray,
	"grey":        Gray,
	"darkgray":    DarkGray,
	"darkgrey":    DarkGray,
	"lightgray":   LightGray,
	"lightgrey":   LightGray,
	"orange":      Orange,
	"navy":        Navy,
	"purple":      Purple,
	"transparent": Transparent,
}

// Named looks up a palette colour by name. Case, spaces, dashes and
// underscores are ignored.
func Named(name string) (RGBA, bool) {
	key := strings.ToLower(name)
	key = strings.NewReplacer(" ", "", "_", "", "-", "").Replace(key)
	c, ok := namedColors[key]
	return c, ok
}
