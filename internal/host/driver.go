package host

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
)

// Options configures a driver.
type Options struct {
	FPS        int // Frames per second; DefaultFPS when zero
	MaxFrames  int // Stop after this many frames; unlimited when zero
	FontWidth  int // Pixel width of a cell, for PixelSize
	FontHeight int // Pixel height of a cell, for PixelSize
}

// Driver defaults.
const (
	DefaultFPS        = 30
	DefaultFontWidth  = 8
	DefaultFontHeight = 8
)

func (o Options) withDefaults() (Options, error) {
	if o.FPS == 0 {
		o.FPS = DefaultFPS
	}
	if o.FPS < 0 {
		return o, ErrInvalidFPS
	}
	if o.FontWidth <= 0 {
		o.FontWidth = DefaultFontWidth
	}
	if o.FontHeight <= 0 {
		o.FontHeight = DefaultFontHeight
	}
	return o, nil
}

// Run owns the event loop: it initializes screen, ticks state at a fixed
// frame rate and presents the console after every frame. Run returns when
// the user presses Esc or Ctrl-C, state calls Term.Quit, or MaxFrames is
// reached. The screen is finalized before Run returns.
func Run(screen tcell.Screen, state GameState, opts Options) error {
	opts, err := opts.withDefaults()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	w, h := screen.Size()
	term := NewTerm(NewConsole(w, h, opts.FontWidth, opts.FontHeight), nil)

	events := make(chan tcell.Event, 32)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(screen, events, done)

	ticker := time.NewTicker(time.Second / time.Duration(opts.FPS))
	defer ticker.Stop()

	var pending *KeyPress
	last := time.Now()
	for {
		select {
		case ev := <-events:
			switch e := ev.(type) {
			case *tcell.EventKey:
				kp := convertKeyEvent(e)
				if isQuitKey(kp) {
					return nil
				}
				pending = &kp
			case *tcell.EventResize:
				w, h := e.Size()
				term.console.Resize(w, h)
				screen.Sync()
			}

		case now := <-ticker.C:
			term.tick(state, pending, now.Sub(last))
			pending = nil
			last = now

			present(screen, term.console)
			if term.Quitting() || (opts.MaxFrames > 0 && term.Frame() >= opts.MaxFrames) {
				return nil
			}
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or done
// is closed.
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// present copies the console onto screen and shows it.
func present(screen tcell.Screen, console *Console) {
	w, h := console.CharSize()
	for y := range h {
		for x := range w {
			tile := console.tiles[y*w+x]
			style := NewColorPair(tile.Fg, tile.Bg).Style()
			screen.SetContent(x, y, GlyphRune(tile.Glyph), nil, style)
		}
	}
	screen.Show()
}

// RunHeadless ticks state frames times against term without a screen,
// stopping early if state calls Quit. Submitted batches are left in the
// queue for the application to render. It returns the number of frames run.
func RunHeadless(term *Term, state GameState, frames int) int {
	n := 0
	for n < frames && !term.Quitting() {
		term.tick(state, nil, 0)
		n++
	}
	return n
}
