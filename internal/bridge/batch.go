package bridge

import (
	"github.com/dshills/cellbridge/internal/geom"
	"github.com/dshills/cellbridge/internal/host"
	"github.com/dshills/cellbridge/internal/tui"
)

// BatchBackend is a tui.Backend that records drawing into a pooled
// host.DrawBatch. It keeps no reference to the host between frames, so a
// tui.Terminal over it can live as long as the application.
//
// Each frame the caller must:
//
//  1. call Update with the frame's host context, so Size reflects the host;
//  2. draw through the terminal;
//  3. submit Batch() to the host render queue.
//
// Before the first Update the backend reports a 0x0 grid. A batch that is
// never submitted is silently not displayed.
type BatchBackend struct {
	colours ColourConverter
	cursor  geom.Position
	batch   *host.DrawBatch
	size    geom.Size
	window  geom.WindowSize
}

var _ tui.Backend = (*BatchBackend)(nil)

// NewBatchBackend creates a backend with a batch from the host pool. A nil
// converter uses DefaultColourConverter.
func NewBatchBackend(colours ColourConverter) *BatchBackend {
	if colours == nil {
		colours = DefaultColourConverter()
	}
	return &BatchBackend{
		colours: colours,
		batch:   host.AcquireBatch(host.DefaultBatchCapacity),
	}
}

// Update caches the grid and pixel size of ctx for this frame.
func (b *BatchBackend) Update(ctx host.Context) {
	w, h := ctx.CharSize()
	pw, ph := ctx.PixelSize()
	b.size = geom.NewSize(w, h)
	b.window = geom.WindowSize{
		ColumnsRows: b.size,
		Pixels:      geom.NewSize(pw, ph),
	}
}

// Batch returns the batch the backend draws into, for submission. It is nil
// after Close.
func (b *BatchBackend) Batch() *host.DrawBatch {
	return b.batch
}

// Close returns the batch to the pool. Drawing or clearing afterwards fails
// with ErrBackendClosed.
func (b *BatchBackend) Close() error {
	if b.batch == nil {
		return nil
	}
	host.ReleaseBatch(b.batch)
	b.batch = nil
	return nil
}

func (b *BatchBackend) Draw(updates []tui.CellUpdate) error {
	if b.batch == nil {
		return ErrBackendClosed
	}
	drawCells(b.colours, updates, func(x, y int, colors host.ColorPair, glyph uint32) {
		b.batch.Set(geom.NewPosition(x, y), colors, glyph)
	})
	return nil
}

// HideCursor is a no-op; the cursor is never painted.
func (b *BatchBackend) HideCursor() error { return nil }

// ShowCursor is a no-op; the cursor is never painted.
func (b *BatchBackend) ShowCursor() error { return nil }

func (b *BatchBackend) CursorPosition() (geom.Position, error) {
	return b.cursor, nil
}

func (b *BatchBackend) SetCursorPosition(pos geom.Position) error {
	b.cursor = pos
	return nil
}

// Clear records a full clear in the batch.
func (b *BatchBackend) Clear() error {
	if b.batch == nil {
		return ErrBackendClosed
	}
	b.batch.Cls()
	return nil
}

// Size returns the grid size cached by the last Update.
func (b *BatchBackend) Size() (geom.Size, error) {
	return b.size, nil
}

// WindowSize returns the sizes cached by the last Update.
func (b *BatchBackend) WindowSize() (geom.WindowSize, error) {
	return b.window, nil
}

// Flush is a no-op; the caller submits the batch.
func (b *BatchBackend) Flush() error { return nil }
