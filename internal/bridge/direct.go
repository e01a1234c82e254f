package bridge

import (
	"github.com/dshills/cellbridge/internal/geom"
	"github.com/dshills/cellbridge/internal/host"
	"github.com/dshills/cellbridge/internal/tui"
)

// BackendManager lives across frames and hands out a DirectBackend for the
// host context of the current frame. It keeps the colour policy and the
// logical cursor position between frames.
//
// At most one DirectBackend per manager is checked out at a time. The
// backend must be released before the host context it wraps goes away,
// normally at the end of the frame; Frame does both.
type BackendManager struct {
	colours ColourConverter
	cursor  geom.Position
	active  *DirectBackend
}

// NewBackendManager creates a manager using colours for every frame. A nil
// converter uses DefaultColourConverter.
func NewBackendManager(colours ColourConverter) *BackendManager {
	if colours == nil {
		colours = DefaultColourConverter()
	}
	return &BackendManager{colours: colours}
}

// Acquire checks out a backend drawing straight onto ctx. It fails with
// ErrBackendInUse while a previously acquired backend is still live.
func (m *BackendManager) Acquire(ctx host.Context) (*DirectBackend, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	if m.active != nil {
		return nil, ErrBackendInUse
	}
	b := &DirectBackend{manager: m, ctx: ctx}
	m.active = b
	return b, nil
}

// Frame acquires a backend for ctx, runs fn with it and releases it, even
// if fn panics.
func (m *BackendManager) Frame(ctx host.Context, fn func(b *DirectBackend) error) error {
	b, err := m.Acquire(ctx)
	if err != nil {
		return err
	}
	defer b.Release()
	return fn(b)
}

// InUse reports whether a backend is currently checked out.
func (m *BackendManager) InUse() bool {
	return m.active != nil
}

// CursorPosition returns the logical cursor position kept between frames.
func (m *BackendManager) CursorPosition() geom.Position {
	return m.cursor
}

// Colours returns the manager's colour policy.
func (m *BackendManager) Colours() ColourConverter {
	return m.colours
}

// DirectBackend is a tui.Backend that writes every drawn cell straight into
// a host context. It is valid only between Acquire and Release.
type DirectBackend struct {
	manager *BackendManager
	ctx     host.Context
}

var _ tui.Backend = (*DirectBackend)(nil)

// Release checks the backend back in. Further calls on it fail with
// ErrBackendReleased. Releasing twice is a no-op.
func (b *DirectBackend) Release() {
	if b.manager == nil {
		return
	}
	if b.manager.active == b {
		b.manager.active = nil
	}
	b.manager = nil
	b.ctx = nil
}

// Released reports whether Release has been called.
func (b *DirectBackend) Released() bool {
	return b.manager == nil
}

func (b *DirectBackend) Draw(updates []tui.CellUpdate) error {
	if b.Released() {
		return ErrBackendReleased
	}
	drawCells(b.manager.colours, updates, func(x, y int, colors host.ColorPair, glyph uint32) {
		b.ctx.Set(x, y, colors.Fg, colors.Bg, glyph)
	})
	return nil
}

// HideCursor is a no-op; the cursor is never painted.
func (b *DirectBackend) HideCursor() error {
	if b.Released() {
		return ErrBackendReleased
	}
	return nil
}

// ShowCursor is a no-op; the cursor is never painted.
func (b *DirectBackend) ShowCursor() error {
	if b.Released() {
		return ErrBackendReleased
	}
	return nil
}

func (b *DirectBackend) CursorPosition() (geom.Position, error) {
	if b.Released() {
		return geom.Position{}, ErrBackendReleased
	}
	return b.manager.cursor, nil
}

func (b *DirectBackend) SetCursorPosition(pos geom.Position) error {
	if b.Released() {
		return ErrBackendReleased
	}
	b.manager.cursor = pos
	return nil
}

func (b *DirectBackend) Clear() error {
	if b.Released() {
		return ErrBackendReleased
	}
	b.ctx.Cls()
	return nil
}

func (b *DirectBackend) Size() (geom.Size, error) {
	if b.Released() {
		return geom.Size{}, ErrBackendReleased
	}
	w, h := b.ctx.CharSize()
	return geom.NewSize(w, h), nil
}

func (b *DirectBackend) WindowSize() (geom.WindowSize, error) {
	if b.Released() {
		return geom.WindowSize{}, ErrBackendReleased
	}
	w, h := b.ctx.CharSize()
	pw, ph := b.ctx.PixelSize()
	return geom.WindowSize{
		ColumnsRows: geom.NewSize(w, h),
		Pixels:      geom.NewSize(pw, ph),
	}, nil
}

// Flush is a no-op; cells are written as they are drawn.
func (b *DirectBackend) Flush() error {
	if b.Released() {
		return ErrBackendReleased
	}
	return nil
}
