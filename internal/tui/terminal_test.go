package tui

import (
	"testing"

	"github.com/dshills/cellbridge/internal/geom"
)

func TestTerminalDrawsChangedCellsOnly(t *testing.T) {
	backend := NewTestBackend(10, 2)
	term, err := NewTerminal(backend)
	if err != nil {
		t.Fatalf("NewTerminal failed: %v", err)
	}

	render := func(f *Frame) {
		f.RenderWidget(NewParagraph("Hello"), f.Area())
	}

	if _, err := term.Draw(render); err != nil {
		t.Fatalf("Draw failed: %v", err)
	}
	if got := backend.Buffer().Text()[0]; got != "Hello     " {
		t.Errorf("first row = %q", got)
	}
	if len(backend.Drawn) != 5 {
		t.Errorf("expected 5 drawn cells, got %d", len(backend.Drawn))
	}

	if _, err := term.Draw(render); err != nil {
		t.Fatalf("second Draw failed: %v", err)
	}
	if backend.DrawCalls != 1 {
		t.Errorf("an unchanged frame should not reach the backend, got %d draw calls", backend.DrawCalls)
	}
	if backend.FlushCalls != 2 {
		t.Errorf("expected a flush per frame, got %d", backend.FlushCalls)
	}
}

func TestTerminalCompletedFrame(t *testing.T) {
	term, err := NewTerminal(NewTestBackend(4, 1))
	if err != nil {
		t.Fatalf("NewTerminal failed: %v", err)
	}

	for i := range 3 {
		frame, err := term.Draw(func(f *Frame) {
			if f.Count() != i {
				t.Errorf("frame count = %d, want %d", f.Count(), i)
			}
			f.Buffer().SetString(0, 0, "ab", NewStyle())
		})
		if err != nil {
			t.Fatalf("Draw failed: %v", err)
		}
		if frame.Count != i {
			t.Errorf("completed frame count = %d, want %d", frame.Count, i)
		}
		if got := frame.Buffer.Text()[0]; got != "ab  " {
			t.Errorf("completed buffer = %q", got)
		}
	}
}

func TestTerminalCursor(t *testing.T) {
	backend := NewTestBackend(10, 5)
	term, err := NewTerminal(backend)
	if err != nil {
		t.Fatalf("NewTerminal failed: %v", err)
	}

	if _, err := term.Draw(func(f *Frame) {}); err != nil {
		t.Fatalf("Draw failed: %v", err)
	}
	if backend.CursorVisible() {
		t.Error("cursor should be hidden when the frame does not place it")
	}
	if !term.CursorHidden() {
		t.Error("terminal should record the hidden cursor")
	}

	if _, err := term.Draw(func(f *Frame) {
		f.SetCursorPosition(geom.NewPosition(3, 4))
	}); err != nil {
		t.Fatalf("Draw failed: %v", err)
	}
	if !backend.CursorVisible() {
		t.Error("cursor should be shown when the frame places it")
	}
	pos, _ := backend.CursorPosition()
	if pos != geom.NewPosition(3, 4) {
		t.Errorf("cursor at %v, want (3, 4)", pos)
	}
}

func TestTerminalAutoresize(t *testing.T) {
	backend := NewTestBackend(10, 2)
	term, err := NewTerminal(backend)
	if err != nil {
		t.Fatalf("NewTerminal failed: %v", err)
	}

	backend.Resize(20, 3)
	frame, err := term.Draw(func(f *Frame) {
		if f.Area() != geom.NewRect(0, 0, 20, 3) {
			t.Errorf("frame area = %v", f.Area())
		}
	})
	if err != nil {
		t.Fatalf("Draw failed: %v", err)
	}
	if backend.ClearCalls != 1 {
		t.Errorf("resize should clear once, got %d", backend.ClearCalls)
	}
	if frame.Area.Size() != geom.NewSize(20, 3) {
		t.Errorf("completed area = %v", frame.Area)
	}
}

func TestTerminalClearForcesRedraw(t *testing.T) {
	backend := NewTestBackend(5, 1)
	term, _ := NewTerminal(backend)

	render := func(f *Frame) { f.Buffer().SetString(0, 0, "x", NewStyle()) }
	term.Draw(render)
	if err := term.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	term.Draw(render)

	if backend.DrawCalls != 2 {
		t.Errorf("clear should force the next frame to redraw, got %d draw calls", backend.DrawCalls)
	}
	if got := backend.Buffer().Text()[0]; got != "x    " {
		t.Errorf("row = %q", got)
	}
}

func TestTerminalBackendAccessor(t *testing.T) {
	backend := NewTestBackend(1, 1)
	term, _ := NewTerminal(backend)

	if term.Backend() != backend {
		t.Error("Backend() should return the typed backend")
	}
}
