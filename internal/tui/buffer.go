package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/dshills/cellbridge/internal/geom"
)

// CellUpdate is one changed cell emitted by Buffer.Diff.
type CellUpdate struct {
	X, Y int
	Cell Cell
}

// Buffer is a rectangular grid of cells that widgets render into.
// Cells are row-major within Area.
type Buffer struct {
	Area    geom.Rect
	Content []Cell
}

// NewBuffer creates a buffer covering area, filled with empty cells.
func NewBuffer(area geom.Rect) *Buffer {
	b := &Buffer{Area: area}
	b.Content = make([]Cell, area.Area())
	b.Reset()
	return b
}

// BufferWithLines creates a buffer sized to fit lines, mainly for tests.
func BufferWithLines(lines ...string) *Buffer {
	width := 0
	for _, l := range lines {
		width = max(width, runewidth.StringWidth(l))
	}
	b := NewBuffer(geom.NewRect(0, 0, width, len(lines)))
	for y, l := range lines {
		b.SetString(0, y, l, NewStyle())
	}
	return b
}

// index converts an absolute position into an offset in Content.
func (b *Buffer) index(x, y int) int {
	return (y-b.Area.Y)*b.Area.Width + (x - b.Area.X)
}

// position converts an offset in Content into an absolute position.
func (b *Buffer) position(i int) (int, int) {
	return b.Area.X + i%b.Area.Width, b.Area.Y + i/b.Area.Width
}

// Cell returns the cell at an absolute position, or nil when outside the area.
func (b *Buffer) Cell(x, y int) *Cell {
	if !b.Area.Contains(geom.NewPosition(x, y)) {
		return nil
	}
	return &b.Content[b.index(x, y)]
}

// Reset clears every cell.
func (b *Buffer) Reset() {
	for i := range b.Content {
		b.Content[i].Reset()
	}
}

// Resize changes the covered area. Cell contents are cleared.
func (b *Buffer) Resize(area geom.Rect) {
	n := area.Area()
	if cap(b.Content) < n {
		b.Content = make([]Cell, n)
	} else {
		b.Content = b.Content[:n]
	}
	b.Area = area
	b.Reset()
}

// SetString writes s starting at (x, y), clipped to the buffer's right edge.
// Each grapheme cluster occupies one cell; wide clusters also reset the cells
// they cover. Returns the position after the last written cell.
func (b *Buffer) SetString(x, y int, s string, style Style) (int, int) {
	return b.SetStringN(x, y, s, b.Area.Right()-x, style)
}

// SetStringN is SetString limited to maxWidth columns.
func (b *Buffer) SetStringN(x, y int, s string, maxWidth int, style Style) (int, int) {
	if y < b.Area.Top() || y >= b.Area.Bottom() {
		return x, y
	}
	limit := min(x+max(maxWidth, 0), b.Area.Right())
	col := x

	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		sym := gr.Str()
		width := runewidth.StringWidth(sym)
		if width == 0 {
			continue
		}
		if col+width > limit {
			break
		}
		if col >= b.Area.Left() {
			c := b.Cell(col, y)
			c.SetSymbol(sym)
			c.SetStyle(style)
			for i := 1; i < width; i++ {
				if trail := b.Cell(col+i, y); trail != nil {
					trail.Reset()
				}
			}
		}
		col += width
	}
	return col, y
}

// SetStyle applies style to every cell in area.
func (b *Buffer) SetStyle(area geom.Rect, style Style) {
	area = b.Area.Intersection(area)
	for y := area.Top(); y < area.Bottom(); y++ {
		for x := area.Left(); x < area.Right(); x++ {
			b.Cell(x, y).SetStyle(style)
		}
	}
}

// Diff returns the updates needed to turn b (the previous frame) into next.
// Both buffers must cover the same area. Cells hidden behind a wide glyph
// are not emitted; cells uncovered by a shrinking glyph are re-emitted.
func (b *Buffer) Diff(next *Buffer) []CellUpdate {
	var updates []CellUpdate

	invalidated := 0
	toSkip := 0
	for i := range next.Content {
		cur := &next.Content[i]
		prev := &b.Content[i]

		if !cur.Skip && (!cur.Equals(*prev) || invalidated > 0) && toSkip == 0 {
			x, y := next.position(i)
			updates = append(updates, CellUpdate{X: x, Y: y, Cell: *cur})
		}

		toSkip = max(cur.Width()-1, 0)
		affected := max(cur.Width(), prev.Width())
		invalidated = max(affected, invalidated) - 1
		invalidated = max(invalidated, 0)
	}
	return updates
}

// Text returns the buffer content as lines of symbols, for tests and dumps.
func (b *Buffer) Text() []string {
	lines := make([]string, 0, b.Area.Height)
	for y := b.Area.Top(); y < b.Area.Bottom(); y++ {
		var sb strings.Builder
		skip := 0
		for x := b.Area.Left(); x < b.Area.Right(); x++ {
			c := b.Cell(x, y)
			if skip > 0 {
				skip--
				continue
			}
			sb.WriteString(c.Symbol)
			skip = max(c.Width()-1, 0)
		}
		lines = append(lines, sb.String())
	}
	return lines
}
