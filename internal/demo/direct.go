package demo

import (
	"fmt"

	"github.com/dshills/cellbridge/internal/bridge"
	"github.com/dshills/cellbridge/internal/host"
	"github.com/dshills/cellbridge/internal/tui"
)

// DirectState draws the demo straight onto the host context each tick. A
// new terminal wraps the frame's backend every time, so the whole screen is
// cleared and redrawn.
type DirectState struct {
	reloader
	manager *bridge.BackendManager
	data    *Data
	err     error
}

var _ host.GameState = (*DirectState)(nil)

// NewDirectState creates the direct demo using colours.
func NewDirectState(colours bridge.ColourConverter, seed uint64) *DirectState {
	return &DirectState{
		reloader: newReloader(colours),
		manager:  bridge.NewBackendManager(colours),
		data:     NewData(seed),
	}
}

func (s *DirectState) Tick(t *host.Term) {
	if colours, ok := s.take(); ok {
		if err := s.replaceManager(t, colours); err != nil {
			s.err = err
			t.Quit()
			return
		}
	}

	s.data.Update()
	if err := s.manager.Frame(t, s.draw); err != nil {
		s.err = err
		t.Quit()
	}
}

// replaceManager swaps in a manager for colours, carrying the cursor over.
func (s *DirectState) replaceManager(ctx host.Context, colours bridge.ColourConverter) error {
	cursor := s.manager.CursorPosition()
	s.manager = bridge.NewBackendManager(colours)
	if err := s.manager.Frame(ctx, func(b *bridge.DirectBackend) error {
		return b.SetCursorPosition(cursor)
	}); err != nil {
		return fmt.Errorf("restoring cursor: %w", err)
	}
	return nil
}

func (s *DirectState) draw(b *bridge.DirectBackend) error {
	term, err := tui.NewTerminal(b)
	if err != nil {
		return fmt.Errorf("creating terminal: %w", err)
	}
	if err := term.Clear(); err != nil {
		return err
	}
	if _, err := term.Draw(func(f *tui.Frame) { Render(f, s.data.Values()) }); err != nil {
		return fmt.Errorf("rendering ui: %w", err)
	}
	return nil
}

// Err returns the error that stopped the demo, if any.
func (s *DirectState) Err() error {
	return s.err
}

// Close releases the current colour converter.
func (s *DirectState) Close() {
	s.closeCurrent()
}
