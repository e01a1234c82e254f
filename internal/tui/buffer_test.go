package tui

import (
	"testing"

	"github.com/dshills/cellbridge/internal/geom"
)

func TestNewBufferIsBlank(t *testing.T) {
	b := NewBuffer(geom.NewRect(0, 0, 4, 2))

	if len(b.Content) != 8 {
		t.Fatalf("expected 8 cells, got %d", len(b.Content))
	}
	for i, c := range b.Content {
		if !c.Equals(EmptyCell()) {
			t.Errorf("cell %d = %+v, want empty", i, c)
		}
	}
}

func TestBufferCellOutOfBounds(t *testing.T) {
	b := NewBuffer(geom.NewRect(2, 2, 3, 3))

	if b.Cell(0, 0) != nil {
		t.Error("position before the area should return nil")
	}
	if b.Cell(5, 2) != nil {
		t.Error("right edge is exclusive")
	}
	if b.Cell(4, 4) == nil {
		t.Error("bottom-right corner should be addressable")
	}
}

func TestBufferSetString(t *testing.T) {
	b := NewBuffer(geom.NewRect(0, 0, 10, 1))
	x, y := b.SetString(0, 0, "hello", NewStyle().Fg(ColorYellow))

	if x != 5 || y != 0 {
		t.Errorf("end position = (%d, %d), want (5, 0)", x, y)
	}
	if got := b.Text()[0]; got != "hello     " {
		t.Errorf("Text() = %q", got)
	}
	if b.Cell(0, 0).Fg != ColorYellow {
		t.Error("style should be applied to written cells")
	}
	if b.Cell(5, 0).Fg != ColorReset {
		t.Error("style should not leak past the string")
	}
}

func TestBufferSetStringClips(t *testing.T) {
	b := NewBuffer(geom.NewRect(0, 0, 3, 1))
	b.SetString(0, 0, "abcdef", NewStyle())

	if got := b.Text()[0]; got != "abc" {
		t.Errorf("Text() = %q, want %q", got, "abc")
	}

	b.SetString(0, 5, "zzz", NewStyle())
	if got := b.Text()[0]; got != "abc" {
		t.Error("writing outside the rows must be ignored")
	}
}

func TestBufferSetStringWide(t *testing.T) {
	b := NewBuffer(geom.NewRect(0, 0, 5, 1))
	b.SetString(0, 0, "a世b", NewStyle())

	if got := b.Cell(1, 0).Symbol; got != "世" {
		t.Errorf("cell 1 = %q, want 世", got)
	}
	if got := b.Cell(2, 0).Symbol; got != " " {
		t.Errorf("trailing cell = %q, want a blank", got)
	}
	if got := b.Cell(3, 0).Symbol; got != "b" {
		t.Errorf("cell 3 = %q, want b", got)
	}
	if got := b.Text()[0]; got != "a世b " {
		t.Errorf("Text() = %q", got)
	}
}

func TestBufferSetStringGraphemes(t *testing.T) {
	b := NewBuffer(geom.NewRect(0, 0, 3, 1))
	b.SetString(0, 0, "e\u0301x", NewStyle())

	if got := b.Cell(0, 0).Symbol; got != "e\u0301" {
		t.Errorf("cell 0 = %q, want the combined grapheme", got)
	}
	if got := b.Cell(1, 0).Symbol; got != "x" {
		t.Errorf("cell 1 = %q, want x", got)
	}
}

func TestBufferResize(t *testing.T) {
	b := BufferWithLines("abc", "def")
	b.Resize(geom.NewRect(0, 0, 2, 1))

	if b.Area.Size() != geom.NewSize(2, 1) {
		t.Errorf("area = %v", b.Area)
	}
	if got := b.Text()[0]; got != "  " {
		t.Errorf("resize should clear content, got %q", got)
	}
}

func TestBufferDiff(t *testing.T) {
	prev := NewBuffer(geom.NewRect(0, 0, 3, 1))
	next := NewBuffer(geom.NewRect(0, 0, 3, 1))
	next.SetString(0, 0, "ab", NewStyle())

	updates := prev.Diff(next)
	if len(updates) != 2 {
		t.Fatalf("expected 2 updates, got %d: %+v", len(updates), updates)
	}
	if updates[0].X != 0 || updates[0].Cell.Symbol != "a" {
		t.Errorf("first update = %+v", updates[0])
	}
	if updates[1].X != 1 || updates[1].Cell.Symbol != "b" {
		t.Errorf("second update = %+v", updates[1])
	}

	if got := next.Diff(next); len(got) != 0 {
		t.Errorf("identical buffers should not diff, got %d updates", len(got))
	}
}

func TestBufferDiffHonoursSkip(t *testing.T) {
	prev := NewBuffer(geom.NewRect(0, 0, 2, 1))
	next := NewBuffer(geom.NewRect(0, 0, 2, 1))
	next.SetString(0, 0, "xy", NewStyle())
	next.Cell(0, 0).Skip = true

	updates := prev.Diff(next)
	if len(updates) != 1 || updates[0].X != 1 {
		t.Errorf("expected only the unskipped cell, got %+v", updates)
	}
}

func TestBufferDiffWideGlyph(t *testing.T) {
	prev := NewBuffer(geom.NewRect(0, 0, 3, 1))
	next := NewBuffer(geom.NewRect(0, 0, 3, 1))
	next.SetString(0, 0, "世x", NewStyle())

	updates := prev.Diff(next)
	if len(updates) != 2 {
		t.Fatalf("expected 2 updates, got %+v", updates)
	}
	if updates[0].X != 0 || updates[1].X != 2 {
		t.Errorf("updates at x=%d and x=%d, want 0 and 2", updates[0].X, updates[1].X)
	}
}

func TestBufferDiffShrinkingGlyphInvalidates(t *testing.T) {
	prev := NewBuffer(geom.NewRect(0, 0, 3, 1))
	prev.SetString(0, 0, "世", NewStyle())
	next := NewBuffer(geom.NewRect(0, 0, 3, 1))

	updates := prev.Diff(next)
	if len(updates) != 2 {
		t.Fatalf("expected both covered cells to be redrawn, got %+v", updates)
	}
}
