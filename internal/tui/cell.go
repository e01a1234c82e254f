package tui

import "github.com/mattn/go-runewidth"

// Cell is a single grid position's rendered content.
type Cell struct {
	// Symbol is one grapheme cluster. An empty symbol marks the trailing
	// half of a wide glyph.
	Symbol string

	Fg       Color
	Bg       Color
	Modifier Modifier

	// Skip tells backends to leave this position untouched when drawing.
	Skip bool
}

// EmptyCell returns a blank cell with reset colours.
func EmptyCell() Cell {
	return Cell{Symbol: " "}
}

// SetSymbol replaces the symbol.
func (c *Cell) SetSymbol(s string) *Cell {
	c.Symbol = s
	return c
}

// SetChar replaces the symbol with a single rune.
func (c *Cell) SetChar(r rune) *Cell {
	c.Symbol = string(r)
	return c
}

// SetStyle applies a style patch to the cell.
func (c *Cell) SetStyle(s Style) *Cell {
	if fg, ok := s.Foreground(); ok {
		c.Fg = fg
	}
	if bg, ok := s.Background(); ok {
		c.Bg = bg
	}
	c.Modifier = c.Modifier.With(s.AddModifier).Without(s.SubModifier)
	return c
}

// Style returns the cell's colours and modifiers as a complete style.
func (c Cell) Style() Style {
	return NewStyle().Fg(c.Fg).Bg(c.Bg).Add(c.Modifier)
}

// Reset returns the cell to a blank, reset-coloured state.
func (c *Cell) Reset() {
	*c = EmptyCell()
}

// Width returns the display width of the symbol.
func (c Cell) Width() int {
	return runewidth.StringWidth(c.Symbol)
}

// Equals returns true if two cells render identically.
func (c Cell) Equals(other Cell) bool {
	return c.Symbol == other.Symbol &&
		c.Fg == other.Fg &&
		c.Bg == other.Bg &&
		c.Modifier == other.Modifier &&
		c.Skip == other.Skip
}
