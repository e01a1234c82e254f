// Package geom provides the position and size value types shared by the
// rendering library, the host grid and the adapters between them.
package geom

import "fmt"

// Position is a cell coordinate (0-indexed, column then row).
type Position struct {
	X int
	Y int
}

// NewPosition creates a position.
func NewPosition(x, y int) Position {
	return Position{X: x, Y: y}
}

// Add returns a new position offset by the given delta.
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Before returns true if p comes before other in reading order.
func (p Position) Before(other Position) bool {
	if p.Y != other.Y {
		return p.Y < other.Y
	}
	return p.X < other.X
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Size is a width/height pair in cells or pixels depending on context.
type Size struct {
	Width  int
	Height int
}

// NewSize creates a size.
func NewSize(width, height int) Size {
	return Size{Width: width, Height: height}
}

// Area returns the number of cells covered.
func (s Size) Area() int {
	if s.Width <= 0 || s.Height <= 0 {
		return 0
	}
	return s.Width * s.Height
}

// IsZero returns true if either dimension is zero or negative.
func (s Size) IsZero() bool {
	return s.Width <= 0 || s.Height <= 0
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// WindowSize pairs the character grid dimensions with the pixel dimensions of
// the surface showing it.
type WindowSize struct {
	ColumnsRows Size
	Pixels      Size
}

// Rect is a rectangular region of cells.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// NewRect creates a rectangle.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// RectFromSize returns a rectangle at the origin covering s.
func RectFromSize(s Size) Rect {
	return Rect{Width: s.Width, Height: s.Height}
}

// Left returns the first column (inclusive).
func (r Rect) Left() int { return r.X }

// Right returns the last column (exclusive).
func (r Rect) Right() int { return r.X + max(r.Width, 0) }

// Top returns the first row (inclusive).
func (r Rect) Top() int { return r.Y }

// Bottom returns the last row (exclusive).
func (r Rect) Bottom() int { return r.Y + max(r.Height, 0) }

// Size returns the rectangle dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Area returns the number of cells in the rectangle.
func (r Rect) Area() int {
	return r.Size().Area()
}

// IsEmpty returns true if the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains returns true if pos is within the rectangle.
func (r Rect) Contains(pos Position) bool {
	return pos.X >= r.Left() && pos.X < r.Right() &&
		pos.Y >= r.Top() && pos.Y < r.Bottom()
}

// Intersects returns true if two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.Left() < other.Right() && r.Right() > other.Left() &&
		r.Top() < other.Bottom() && r.Bottom() > other.Top()
}

// Intersection returns the overlapping region of two rectangles.
func (r Rect) Intersection(other Rect) Rect {
	if !r.Intersects(other) {
		return Rect{}
	}
	x := max(r.Left(), other.Left())
	y := max(r.Top(), other.Top())
	return Rect{
		X:      x,
		Y:      y,
		Width:  min(r.Right(), other.Right()) - x,
		Height: min(r.Bottom(), other.Bottom()) - y,
	}
}

// Union returns the smallest rectangle containing both rectangles.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}
	x := min(r.Left(), other.Left())
	y := min(r.Top(), other.Top())
	return Rect{
		X:      x,
		Y:      y,
		Width:  max(r.Right(), other.Right()) - x,
		Height: max(r.Bottom(), other.Bottom()) - y,
	}
}

// Inner returns the rectangle shrunk by margin cells on every side.
// The result never has negative dimensions.
func (r Rect) Inner(margin int) Rect {
	if r.Width < 2*margin || r.Height < 2*margin {
		return Rect{X: r.X + margin, Y: r.Y + margin}
	}
	return Rect{
		X:      r.X + margin,
		Y:      r.Y + margin,
		Width:  r.Width - 2*margin,
		Height: r.Height - 2*margin,
	}
}

// Positions returns every position in the rectangle in reading order.
func (r Rect) Positions() []Position {
	if r.IsEmpty() {
		return nil
	}
	out := make([]Position, 0, r.Area())
	for y := r.Top(); y < r.Bottom(); y++ {
		for x := r.Left(); x < r.Right(); x++ {
			out = append(out, Position{X: x, Y: y})
		}
	}
	return out
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}
