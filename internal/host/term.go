package host

import (
	"time"
)

// GameState is implemented by applications driven by a host driver.
type GameState interface {
	// Tick advances and draws one frame.
	Tick(t *Term)
}

// GameStateFunc adapts a function to GameState.
type GameStateFunc func(t *Term)

func (f GameStateFunc) Tick(t *Term) { f(t) }

// Term is the per-frame host state handed to GameState.Tick. It implements
// Context by drawing directly onto its console.
type Term struct {
	console   *Console
	queue     *Queue
	key       *KeyPress
	frame     int
	frameTime time.Duration
	quitting  bool
}

// NewTerm creates a term drawing onto console. A nil queue gets a fresh one.
func NewTerm(console *Console, queue *Queue) *Term {
	if queue == nil {
		queue = NewQueue()
	}
	return &Term{console: console, queue: queue}
}

func (t *Term) Set(x, y int, fg, bg RGBA, glyph uint32) {
	t.console.Set(x, y, fg, bg, glyph)
}

func (t *Term) Cls() {
	t.console.Cls()
}

func (t *Term) CharSize() (int, int) {
	return t.console.CharSize()
}

func (t *Term) PixelSize() (int, int) {
	return t.console.PixelSize()
}

// Console returns the console the term draws onto.
func (t *Term) Console() *Console {
	return t.console
}

// Queue returns the render queue batches are submitted to.
func (t *Term) Queue() *Queue {
	return t.queue
}

// RenderDrawBuffer applies all submitted batches to the console.
func (t *Term) RenderDrawBuffer() {
	t.queue.Render(t.console)
}

// Key returns the key pressed since the previous frame, if any.
func (t *Term) Key() (KeyPress, bool) {
	if t.key == nil {
		return KeyPress{}, false
	}
	return *t.key, true
}

// Frame returns the number of frames ticked before this one.
func (t *Term) Frame() int {
	return t.frame
}

// FrameTime returns the time elapsed since the previous frame.
func (t *Term) FrameTime() time.Duration {
	return t.frameTime
}

// Quit asks the driver to stop after the current frame.
func (t *Term) Quit() {
	t.quitting = true
}

// Quitting reports whether Quit has been called.
func (t *Term) Quitting() bool {
	return t.quitting
}

// tick runs one frame of state.
func (t *Term) tick(state GameState, key *KeyPress, elapsed time.Duration) {
	t.key = key
	t.frameTime = elapsed
	state.Tick(t)
	t.key = nil
	t.frame++
}
