package tui

import (
	"github.com/dshills/cellbridge/internal/geom"
)

// Backend is the output surface a Terminal draws onto.
// Implementations translate cell updates into whatever the underlying
// display understands.
type Backend interface {
	// Draw writes the given changed cells. Cells with Skip set must be left
	// untouched on the display.
	Draw(updates []CellUpdate) error

	// HideCursor hides the cursor.
	HideCursor() error

	// ShowCursor shows the cursor.
	ShowCursor() error

	// CursorPosition returns the current cursor position.
	CursorPosition() (geom.Position, error)

	// SetCursorPosition moves the cursor.
	SetCursorPosition(pos geom.Position) error

	// Clear clears the whole display.
	Clear() error

	// Size returns the display size in cells.
	Size() (geom.Size, error)

	// WindowSize returns the display size in cells and pixels.
	WindowSize() (geom.WindowSize, error)

	// Flush pushes buffered output to the display.
	Flush() error
}

// TestBackend is an in-memory backend for testing. It keeps a buffer of what
// has been drawn and counts every call.
type TestBackend struct {
	buffer        *Buffer
	cursorVisible bool
	cursor        geom.Position
	pixels        geom.Size

	DrawCalls  int
	ClearCalls int
	FlushCalls int
	Drawn      []CellUpdate
}

// NewTestBackend creates a test backend with the given grid dimensions.
func NewTestBackend(width, height int) *TestBackend {
	return &TestBackend{
		buffer:        NewBuffer(geom.NewRect(0, 0, width, height)),
		cursorVisible: true,
	}
}

func (b *TestBackend) Draw(updates []CellUpdate) error {
	b.DrawCalls++
	for _, u := range updates {
		b.Drawn = append(b.Drawn, u)
		if u.Cell.Skip {
			continue
		}
		if c := b.buffer.Cell(u.X, u.Y); c != nil {
			*c = u.Cell
		}
	}
	return nil
}

func (b *TestBackend) HideCursor() error {
	b.cursorVisible = false
	return nil
}

func (b *TestBackend) ShowCursor() error {
	b.cursorVisible = true
	return nil
}

func (b *TestBackend) CursorPosition() (geom.Position, error) {
	return b.cursor, nil
}

func (b *TestBackend) SetCursorPosition(pos geom.Position) error {
	b.cursor = pos
	return nil
}

func (b *TestBackend) Clear() error {
	b.ClearCalls++
	b.buffer.Reset()
	return nil
}

func (b *TestBackend) Size() (geom.Size, error) {
	return b.buffer.Area.Size(), nil
}

func (b *TestBackend) WindowSize() (geom.WindowSize, error) {
	return geom.WindowSize{ColumnsRows: b.buffer.Area.Size(), Pixels: b.pixels}, nil
}

func (b *TestBackend) Flush() error {
	b.FlushCalls++
	return nil
}

// Buffer returns what has been drawn so far.
func (b *TestBackend) Buffer() *Buffer {
	return b.buffer
}

// CursorVisible reports the cursor visibility for testing.
func (b *TestBackend) CursorVisible() bool {
	return b.cursorVisible
}

// Resize simulates a display resize for testing.
func (b *TestBackend) Resize(width, height int) {
	b.buffer.Resize(geom.NewRect(0, 0, width, height))
}

// SetPixelSize sets the pixel dimensions reported by WindowSize.
func (b *TestBackend) SetPixelSize(width, height int) {
	b.pixels = geom.NewSize(width, height)
}
