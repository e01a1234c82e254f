package tui

import (
	"fmt"

	"github.com/dshills/cellbridge/internal/geom"
)

// Frame is handed to the render callback of Terminal.Draw. Widgets render
// into its buffer; the terminal diffs it against the previous frame.
type Frame struct {
	buffer *Buffer
	area   geom.Rect
	cursor *geom.Position
	count  int
}

// Area returns the full drawable area.
func (f *Frame) Area() geom.Rect {
	return f.area
}

// Buffer returns the buffer being rendered into.
func (f *Frame) Buffer() *Buffer {
	return f.buffer
}

// Count returns the number of frames drawn before this one.
func (f *Frame) Count() int {
	return f.count
}

// RenderWidget renders w into area.
func (f *Frame) RenderWidget(w Widget, area geom.Rect) {
	w.Render(area.Intersection(f.buffer.Area), f.buffer)
}

// SetCursorPosition requests the cursor be shown at pos after this frame.
// Without a call the cursor is hidden.
func (f *Frame) SetCursorPosition(pos geom.Position) {
	f.cursor = &pos
}

// CompletedFrame describes a frame that has been handed to the backend.
type CompletedFrame struct {
	Buffer *Buffer
	Area   geom.Rect
	Count  int
}

// Terminal owns a pair of buffers and draws the difference between
// consecutive frames onto a backend.
type Terminal[B Backend] struct {
	backend         B
	buffers         [2]*Buffer
	current         int
	hiddenCursor    bool
	lastKnownArea   geom.Rect
	lastKnownCursor geom.Position
	frameCount      int
}

// NewTerminal creates a terminal sized to the backend's current size.
func NewTerminal[B Backend](backend B) (*Terminal[B], error) {
	size, err := backend.Size()
	if err != nil {
		return nil, fmt.Errorf("querying backend size: %w", err)
	}
	cursor, err := backend.CursorPosition()
	if err != nil {
		return nil, fmt.Errorf("querying cursor position: %w", err)
	}

	area := geom.RectFromSize(size)
	return &Terminal[B]{
		backend:         backend,
		buffers:         [2]*Buffer{NewBuffer(area), NewBuffer(area)},
		lastKnownArea:   area,
		lastKnownCursor: cursor,
	}, nil
}

// Backend returns the backend. Callers use this to reach variant-specific
// operations such as per-frame updates.
func (t *Terminal[B]) Backend() B {
	return t.backend
}

// CurrentBuffer returns the buffer the next frame renders into.
func (t *Terminal[B]) CurrentBuffer() *Buffer {
	return t.buffers[t.current]
}

// Size returns the backend size.
func (t *Terminal[B]) Size() (geom.Size, error) {
	return t.backend.Size()
}

// Draw renders one frame. render fills the frame buffer; only the cells that
// differ from the previous frame are sent to the backend.
func (t *Terminal[B]) Draw(render func(f *Frame)) (CompletedFrame, error) {
	if err := t.autoresize(); err != nil {
		return CompletedFrame{}, err
	}

	frame := Frame{
		buffer: t.CurrentBuffer(),
		area:   t.lastKnownArea,
		count:  t.frameCount,
	}
	render(&frame)

	if err := t.flush(); err != nil {
		return CompletedFrame{}, err
	}

	if frame.cursor == nil {
		if err := t.HideCursor(); err != nil {
			return CompletedFrame{}, err
		}
	} else {
		if err := t.ShowCursor(); err != nil {
			return CompletedFrame{}, err
		}
		if err := t.SetCursorPosition(*frame.cursor); err != nil {
			return CompletedFrame{}, err
		}
	}

	t.swapBuffers()

	if err := t.backend.Flush(); err != nil {
		return CompletedFrame{}, fmt.Errorf("flushing backend: %w", err)
	}

	completed := CompletedFrame{
		Buffer: t.buffers[1-t.current],
		Area:   t.lastKnownArea,
		Count:  t.frameCount,
	}
	t.frameCount++
	return completed, nil
}

// flush sends the diff between the previous and current buffers.
func (t *Terminal[B]) flush() error {
	previous := t.buffers[1-t.current]
	current := t.buffers[t.current]
	updates := previous.Diff(current)
	if len(updates) == 0 {
		return nil
	}
	if err := t.backend.Draw(updates); err != nil {
		return fmt.Errorf("drawing %d cells: %w", len(updates), err)
	}
	return nil
}

func (t *Terminal[B]) swapBuffers() {
	t.buffers[1-t.current].Reset()
	t.current = 1 - t.current
}

// autoresize resizes the buffers when the backend size changed.
func (t *Terminal[B]) autoresize() error {
	size, err := t.backend.Size()
	if err != nil {
		return fmt.Errorf("querying backend size: %w", err)
	}
	area := geom.RectFromSize(size)
	if area != t.lastKnownArea {
		return t.Resize(area)
	}
	return nil
}

// Resize changes the drawable area and clears the display.
func (t *Terminal[B]) Resize(area geom.Rect) error {
	t.buffers[t.current].Resize(area)
	t.buffers[1-t.current].Resize(area)
	t.lastKnownArea = area
	return t.Clear()
}

// Clear clears the display and forces a full redraw on the next frame.
func (t *Terminal[B]) Clear() error {
	if err := t.backend.Clear(); err != nil {
		return fmt.Errorf("clearing backend: %w", err)
	}
	t.buffers[1-t.current].Reset()
	return nil
}

// HideCursor hides the cursor.
func (t *Terminal[B]) HideCursor() error {
	if err := t.backend.HideCursor(); err != nil {
		return err
	}
	t.hiddenCursor = true
	return nil
}

// ShowCursor shows the cursor.
func (t *Terminal[B]) ShowCursor() error {
	if err := t.backend.ShowCursor(); err != nil {
		return err
	}
	t.hiddenCursor = false
	return nil
}

// CursorPosition returns the backend cursor position.
func (t *Terminal[B]) CursorPosition() (geom.Position, error) {
	return t.backend.CursorPosition()
}

// SetCursorPosition moves the backend cursor.
func (t *Terminal[B]) SetCursorPosition(pos geom.Position) error {
	if err := t.backend.SetCursorPosition(pos); err != nil {
		return err
	}
	t.lastKnownCursor = pos
	return nil
}

// CursorHidden reports whether the last frame hid the cursor.
func (t *Terminal[B]) CursorHidden() bool {
	return t.hiddenCursor
}
