package tui

import "github.com/dshills/cellbridge/internal/geom"

// Direction is the axis a Layout splits along.
type Direction int

const (
	Vertical Direction = iota
	Horizontal
)

// ConstraintKind identifies how a Constraint sizes its segment.
type ConstraintKind int

const (
	ConstraintLength ConstraintKind = iota
	ConstraintMin
	ConstraintPercentage
)

// Constraint sizes one segment of a Layout.
type Constraint struct {
	Kind  ConstraintKind
	Value int
}

// Length is a fixed-size segment.
func Length(n int) Constraint { return Constraint{Kind: ConstraintLength, Value: n} }

// Min is a segment of at least n cells that absorbs leftover space.
func Min(n int) Constraint { return Constraint{Kind: ConstraintMin, Value: n} }

// Percentage is a segment sized relative to the available space.
func Percentage(p int) Constraint { return Constraint{Kind: ConstraintPercentage, Value: p} }

// Layout splits a rectangle into consecutive segments.
type Layout struct {
	Direction   Direction
	Margin      int
	Constraints []Constraint
}

// NewLayout creates a layout along dir.
func NewLayout(dir Direction, constraints ...Constraint) Layout {
	return Layout{Direction: dir, Constraints: constraints}
}

// WithMargin returns a copy of l with the given outer margin.
func (l Layout) WithMargin(m int) Layout {
	l.Margin = m
	return l
}

// Split divides area according to the constraints. Segments that do not fit
// are clipped; leftover space goes to Min segments, the last one taking any
// remainder.
func (l Layout) Split(area geom.Rect) []geom.Rect {
	inner := area.Inner(l.Margin)
	total := inner.Height
	if l.Direction == Horizontal {
		total = inner.Width
	}

	sizes := make([]int, len(l.Constraints))
	used := 0
	var flex []int
	for i, c := range l.Constraints {
		switch c.Kind {
		case ConstraintLength:
			sizes[i] = c.Value
		case ConstraintMin:
			sizes[i] = c.Value
			flex = append(flex, i)
		case ConstraintPercentage:
			sizes[i] = total * c.Value / 100
		}
		sizes[i] = max(sizes[i], 0)
		used += sizes[i]
	}

	if extra := total - used; extra > 0 && len(flex) > 0 {
		share := extra / len(flex)
		for _, i := range flex {
			sizes[i] += share
		}
		sizes[flex[len(flex)-1]] += extra - share*len(flex)
	}

	rects := make([]geom.Rect, len(sizes))
	offset := 0
	for i, size := range sizes {
		size = max(min(size, total-offset), 0)
		if l.Direction == Horizontal {
			rects[i] = geom.NewRect(inner.X+offset, inner.Y, size, inner.Height)
		} else {
			rects[i] = geom.NewRect(inner.X, inner.Y+offset, inner.Width, size)
		}
		offset += size
	}
	return rects
}
