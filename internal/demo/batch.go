package demo

import (
	"fmt"

	"github.com/dshills/cellbridge/internal/bridge"
	"github.com/dshills/cellbridge/internal/host"
	"github.com/dshills/cellbridge/internal/tui"
)

// BatchState keeps one terminal over a BatchBackend for the whole run, so
// only cells that changed since the previous tick are sent to the host.
type BatchState struct {
	reloader
	term *tui.Terminal[*bridge.BatchBackend]
	data *Data
	z    int
	err  error
}

var _ host.GameState = (*BatchState)(nil)

// NewBatchState creates the batched demo using colours. Its batch is
// submitted at depth z.
func NewBatchState(colours bridge.ColourConverter, seed uint64, z int) (*BatchState, error) {
	term, err := tui.NewTerminal(bridge.NewBatchBackend(colours))
	if err != nil {
		return nil, fmt.Errorf("creating terminal: %w", err)
	}
	return &BatchState{
		reloader: newReloader(colours),
		term:     term,
		data:     NewData(seed),
		z:        z,
	}, nil
}

func (s *BatchState) Tick(t *host.Term) {
	if err := s.tick(t); err != nil {
		s.err = err
		t.Quit()
	}
}

func (s *BatchState) tick(t *host.Term) error {
	if colours, ok := s.take(); ok {
		if err := s.replaceBackend(colours); err != nil {
			return err
		}
	}

	s.data.Update()

	backend := s.term.Backend()
	backend.Update(t)
	if _, err := s.term.Draw(func(f *tui.Frame) { Render(f, s.data.Values()) }); err != nil {
		return fmt.Errorf("rendering ui: %w", err)
	}
	if err := backend.Batch().Submit(t.Queue(), s.z); err != nil {
		return fmt.Errorf("submitting batch: %w", err)
	}
	t.RenderDrawBuffer()
	return nil
}

// replaceBackend swaps in a backend using colours. The new terminal starts
// with a clear so every cell is redrawn in the new colours.
func (s *BatchState) replaceBackend(colours bridge.ColourConverter) error {
	old := s.term.Backend()
	cursor, _ := old.CursorPosition()

	backend := bridge.NewBatchBackend(colours)
	_ = backend.SetCursorPosition(cursor)
	term, err := tui.NewTerminal(backend)
	if err != nil {
		_ = backend.Close()
		return fmt.Errorf("creating terminal: %w", err)
	}
	if err := term.Clear(); err != nil {
		_ = backend.Close()
		return err
	}

	_ = old.Close()
	s.term = term
	return nil
}

// Terminal returns the persistent terminal.
func (s *BatchState) Terminal() *tui.Terminal[*bridge.BatchBackend] {
	return s.term
}

// Err returns the error that stopped the demo, if any.
func (s *BatchState) Err() error {
	return s.err
}

// Close returns the batch to the pool and releases the colour converter.
func (s *BatchState) Close() {
	_ = s.term.Backend().Close()
	s.closeCurrent()
}
