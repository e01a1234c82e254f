package tui

import "strings"

// Modifier is a set of text style flags (bold, italic, etc.).
type Modifier uint16

// ModNone is the empty modifier set.
const ModNone Modifier = 0

// Modifier flags.
const (
	ModBold       Modifier = 1 << iota
	ModDim                 // Faint/dim text
	ModItalic              // Italic text
	ModUnderlined          // Underlined text
	ModSlowBlink           // Blinking text (rarely supported)
	ModRapidBlink
	ModReversed // Reverse video (swap fg/bg)
	ModHidden
	ModCrossedOut
)

var modifierNames = []struct {
	mod  Modifier
	name string
}{
	{ModBold, "bold"},
	{ModDim, "dim"},
	{ModItalic, "italic"},
	{ModUnderlined, "underlined"},
	{ModSlowBlink, "slow_blink"},
	{ModRapidBlink, "rapid_blink"},
	{ModReversed, "reversed"},
	{ModHidden, "hidden"},
	{ModCrossedOut, "crossed_out"},
}

// Has returns true if the set contains every flag in mod.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod == mod
}

// With returns a new set with mod added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns a new set with mod removed.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

func (m Modifier) String() string {
	if m == ModNone {
		return "none"
	}
	var parts []string
	for _, mn := range modifierNames {
		if m.Has(mn.mod) {
			parts = append(parts, mn.name)
		}
	}
	return strings.Join(parts, "|")
}

// Style is a partial cell style. Unset colours leave the underlying cell
// untouched when the style is applied; AddModifier and SubModifier are added
// and removed respectively.
type Style struct {
	fg, bg       Color
	hasFg, hasBg bool
	AddModifier  Modifier
	SubModifier  Modifier
}

// NewStyle returns an empty style that changes nothing when applied.
func NewStyle() Style {
	return Style{}
}

// Fg returns a new style with the given foreground colour.
func (s Style) Fg(c Color) Style {
	s.fg = c
	s.hasFg = true
	return s
}

// Bg returns a new style with the given background colour.
func (s Style) Bg(c Color) Style {
	s.bg = c
	s.hasBg = true
	return s
}

// Add returns a new style that adds mod.
func (s Style) Add(mod Modifier) Style {
	s.SubModifier = s.SubModifier.Without(mod)
	s.AddModifier = s.AddModifier.With(mod)
	return s
}

// Remove returns a new style that removes mod.
func (s Style) Remove(mod Modifier) Style {
	s.AddModifier = s.AddModifier.Without(mod)
	s.SubModifier = s.SubModifier.With(mod)
	return s
}

// Foreground returns the foreground colour and whether it is set.
func (s Style) Foreground() (Color, bool) {
	return s.fg, s.hasFg
}

// Background returns the background colour and whether it is set.
func (s Style) Background() (Color, bool) {
	return s.bg, s.hasBg
}

// Patch combines two styles. Set values in other take precedence.
func (s Style) Patch(other Style) Style {
	result := s
	if other.hasFg {
		result.fg = other.fg
		result.hasFg = true
	}
	if other.hasBg {
		result.bg = other.bg
		result.hasBg = true
	}

	result.AddModifier = result.AddModifier.Without(other.SubModifier).With(other.AddModifier)
	result.SubModifier = result.SubModifier.Without(other.AddModifier).With(other.SubModifier)
	return result
}
