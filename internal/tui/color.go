package tui

import (
	"fmt"
	"strconv"
	"strings"
)

// ColorKind identifies which variant a Color holds.
type ColorKind uint8

const (
	// KindReset restores the terminal's default colour. It is the zero value.
	KindReset ColorKind = iota
	// KindNamed is one of the sixteen standard named colours.
	KindNamed
	// KindRGB is an explicit 24-bit colour.
	KindRGB
	// KindIndexed is a slot in a 256-entry palette.
	KindIndexed
)

// NamedColor enumerates the sixteen standard terminal colours.
type NamedColor uint8

const (
	Black NamedColor = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	Gray
	DarkGray
	LightRed
	LightGreen
	LightYellow
	LightBlue
	LightMagenta
	LightCyan
	White
)

var namedColorNames = [...]string{
	Black:        "black",
	Red:          "red",
	Green:        "green",
	Yellow:       "yellow",
	Blue:         "blue",
	Magenta:      "magenta",
	Cyan:         "cyan",
	Gray:         "gray",
	DarkGray:     "darkgray",
	LightRed:     "lightred",
	LightGreen:   "lightgreen",
	LightYellow:  "lightyellow",
	LightBlue:    "lightblue",
	LightMagenta: "lightmagenta",
	LightCyan:    "lightcyan",
	White:        "white",
}

func (n NamedColor) String() string {
	if int(n) < len(namedColorNames) {
		return namedColorNames[n]
	}
	return fmt.Sprintf("named(%d)", uint8(n))
}

// Color is a tagged colour value. The zero value is ColorReset.
// Colours are small and immutable; pass them by value.
type Color struct {
	kind  ColorKind
	name  NamedColor
	r     uint8
	g     uint8
	b     uint8
	index uint8
}

// ColorReset is the terminal default colour.
var ColorReset = Color{}

// Named colour values.
var (
	ColorBlack        = Named(Black)
	ColorRed          = Named(Red)
	ColorGreen        = Named(Green)
	ColorYellow       = Named(Yellow)
	ColorBlue         = Named(Blue)
	ColorMagenta      = Named(Magenta)
	ColorCyan         = Named(Cyan)
	ColorGray         = Named(Gray)
	ColorDarkGray     = Named(DarkGray)
	ColorLightRed     = Named(LightRed)
	ColorLightGreen   = Named(LightGreen)
	ColorLightYellow  = Named(LightYellow)
	ColorLightBlue    = Named(LightBlue)
	ColorLightMagenta = Named(LightMagenta)
	ColorLightCyan    = Named(LightCyan)
	ColorWhite        = Named(White)
)

// Named returns the named colour n.
func Named(n NamedColor) Color {
	return Color{kind: KindNamed, name: n}
}

// RGB returns an explicit 24-bit colour.
func RGB(r, g, b uint8) Color {
	return Color{kind: KindRGB, r: r, g: g, b: b}
}

// Indexed returns a palette colour.
func Indexed(i uint8) Color {
	return Color{kind: KindIndexed, index: i}
}

// Kind reports which variant c holds.
func (c Color) Kind() ColorKind {
	return c.kind
}

// IsReset returns true if c is the terminal default colour.
func (c Color) IsReset() bool {
	return c.kind == KindReset
}

// Name returns the named colour. Only meaningful for KindNamed.
func (c Color) Name() NamedColor {
	return c.name
}

// RGB returns the channels. Only meaningful for KindRGB.
func (c Color) RGB() (r, g, b uint8) {
	return c.r, c.g, c.b
}

// Index returns the palette slot. Only meaningful for KindIndexed.
func (c Color) Index() uint8 {
	return c.index
}

// String returns a string representation of the color.
func (c Color) String() string {
	switch c.kind {
	case KindNamed:
		return c.name.String()
	case KindRGB:
		return fmt.Sprintf("#%02X%02X%02X", c.r, c.g, c.b)
	case KindIndexed:
		return fmt.Sprintf("idx(%d)", c.index)
	default:
		return "reset"
	}
}

// ParseColor parses a colour name ("reset", "lightblue"), a hex triple
// ("#RGB", "#RRGGBB") or a palette index ("idx(42)" or "42").
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "reset" || s == "default" {
		return ColorReset, nil
	}
	for i, name := range namedColorNames {
		if s == name {
			return Named(NamedColor(i)), nil
		}
	}
	if s == "grey" {
		return ColorGray, nil
	}
	if s == "darkgrey" {
		return ColorDarkGray, nil
	}

	if inner, ok := strings.CutPrefix(s, "idx("); ok {
		s = strings.TrimSuffix(inner, ")")
	}
	if n, err := strconv.ParseUint(s, 10, 8); err == nil {
		return Indexed(uint8(n)), nil
	}

	return parseHexColor(s)
}

func parseHexColor(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")

	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	default:
		return Color{}, fmt.Errorf("invalid color: %q", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color: %q", s)
	}
	return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}
