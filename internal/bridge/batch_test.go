package bridge

import (
	"errors"
	"testing"

	"github.com/dshills/cellbridge/internal/geom"
	"github.com/dshills/cellbridge/internal/host"
	"github.com/dshills/cellbridge/internal/tui"
)

func TestBatchSizeBeforeUpdate(t *testing.T) {
	b := NewBatchBackend(nil)
	defer b.Close()

	size, err := b.Size()
	if err != nil {
		t.Fatalf("Size failed: %v", err)
	}
	if !size.IsZero() {
		t.Errorf("Size() before Update = %v, want 0x0", size)
	}
	ws, _ := b.WindowSize()
	if ws != (geom.WindowSize{}) {
		t.Errorf("WindowSize() before Update = %+v", ws)
	}

	// Drawing in the degenerate state is allowed.
	if err := b.Clear(); err != nil {
		t.Errorf("Clear before Update failed: %v", err)
	}
	if err := b.Draw([]tui.CellUpdate{{Cell: cell("a", tui.ColorReset, tui.ColorReset)}}); err != nil {
		t.Errorf("Draw before Update failed: %v", err)
	}
}

func TestBatchSizeCachedUntilUpdate(t *testing.T) {
	ctx := newRecordingContext(80, 50)
	b := NewBatchBackend(nil)
	defer b.Close()

	b.Update(ctx)
	wantWS := geom.WindowSize{ColumnsRows: geom.NewSize(80, 50), Pixels: geom.NewSize(640, 800)}
	check := func(stage string, want geom.WindowSize) {
		t.Helper()
		size, _ := b.Size()
		ws, _ := b.WindowSize()
		if size != want.ColumnsRows || ws != want {
			t.Errorf("%s: Size() = %v, WindowSize() = %+v, want %+v", stage, size, ws, want)
		}
	}
	check("after update", wantWS)

	ctx.width, ctx.height, ctx.pixelW, ctx.pixelH = 20, 10, 160, 160
	b.Clear()
	b.Draw([]tui.CellUpdate{{X: 1, Y: 1, Cell: cell("x", tui.ColorRed, tui.ColorReset)}})
	check("after draw and clear", wantWS)

	calls := ctx.charSizeCalls
	b.Size()
	b.WindowSize()
	if ctx.charSizeCalls != calls {
		t.Error("Size should not query the host")
	}

	b.Update(ctx)
	check("after second update", geom.WindowSize{ColumnsRows: geom.NewSize(20, 10), Pixels: geom.NewSize(160, 160)})
}

func TestBatchClearThenDraw(t *testing.T) {
	b := NewBatchBackend(DefaultColourConverter())
	defer b.Close()
	b.Update(newRecordingContext(10, 10))

	if err := b.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if err := b.Draw([]tui.CellUpdate{{X: 2, Y: 3, Cell: cell("#", tui.ColorLightRed, tui.Indexed(9))}}); err != nil {
		t.Fatalf("Draw failed: %v", err)
	}

	cmds := b.Batch().Commands()
	if len(cmds) != 2 {
		t.Fatalf("batch holds %d commands, want 2", len(cmds))
	}
	if cmds[0].Kind != host.CmdCls {
		t.Errorf("first command = %v, want cls", cmds[0].Kind)
	}
	want := host.Command{
		Kind:   host.CmdSet,
		Pos:    geom.NewPosition(2, 3),
		Colors: host.NewColorPair(host.Red, host.Black),
		Glyph:  '#',
	}
	if cmds[1] != want {
		t.Errorf("set command = %+v, want %+v", cmds[1], want)
	}
}

func TestBatchDrawSkipsSkippedCells(t *testing.T) {
	b := NewBatchBackend(nil)
	defer b.Close()

	skipped := cell("x", tui.ColorRed, tui.ColorGreen)
	skipped.Skip = true
	b.Draw([]tui.CellUpdate{{X: 0, Y: 0, Cell: skipped}, {X: 1, Y: 0, Cell: cell("y", tui.ColorReset, tui.ColorReset)}})

	cmds := b.Batch().Commands()
	if len(cmds) != 1 || cmds[0].Pos != geom.NewPosition(1, 0) {
		t.Errorf("commands = %+v, want one set at (1, 0)", cmds)
	}
}

func TestBatchCursorRoundTrip(t *testing.T) {
	b := NewBatchBackend(nil)
	defer b.Close()

	for _, p := range []geom.Position{{X: 0, Y: 0}, {X: 9, Y: 4}, {X: 65535, Y: 65535}} {
		if err := b.SetCursorPosition(p); err != nil {
			t.Fatalf("SetCursorPosition failed: %v", err)
		}
		b.Update(newRecordingContext(5, 5))
		b.Draw([]tui.CellUpdate{{X: 0, Y: 0, Cell: cell("a", tui.ColorReset, tui.ColorReset)}})
		b.Clear()
		got, err := b.CursorPosition()
		if err != nil {
			t.Fatalf("CursorPosition failed: %v", err)
		}
		if got != p {
			t.Errorf("CursorPosition() = %v, want %v", got, p)
		}
	}
	if b.Batch().Len() != 6 {
		t.Errorf("batch has %d commands, want 6", b.Batch().Len())
	}
}

func TestBatchNoOps(t *testing.T) {
	b := NewBatchBackend(nil)
	defer b.Close()

	for name, fn := range map[string]func() error{
		"HideCursor": b.HideCursor,
		"ShowCursor": b.ShowCursor,
		"Flush":      b.Flush,
	} {
		if err := fn(); err != nil {
			t.Errorf("%s failed: %v", name, err)
		}
	}
	if b.Batch().Len() != 0 {
		t.Error("no-op calls should not record commands")
	}
}

func TestBatchClose(t *testing.T) {
	b := NewBatchBackend(nil)
	b.Clear()

	if err := b.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if b.Batch() != nil {
		t.Error("Batch() should be nil after Close")
	}
	if err := b.Close(); err != nil {
		t.Errorf("second Close = %v", err)
	}
	if err := b.Draw(nil); !errors.Is(err, ErrBackendClosed) {
		t.Errorf("Draw after Close = %v, want ErrBackendClosed", err)
	}
	if err := b.Clear(); !errors.Is(err, ErrBackendClosed) {
		t.Errorf("Clear after Close = %v, want ErrBackendClosed", err)
	}

	// The pooled batch comes back empty.
	next := NewBatchBackend(nil)
	defer next.Close()
	if next.Batch().Len() != 0 {
		t.Errorf("new backend batch has %d commands", next.Batch().Len())
	}
}

func TestBatchUnsubmittedFrameIsDropped(t *testing.T) {
	term := host.NewTerm(host.NewConsole(3, 1, 8, 8), nil)
	b := NewBatchBackend(nil)
	defer b.Close()

	b.Update(term)
	b.Draw([]tui.CellUpdate{{X: 0, Y: 0, Cell: cell("q", tui.ColorReset, tui.ColorReset)}})
	term.RenderDrawBuffer()

	if got := term.Console().Text()[0]; got != "   " {
		t.Errorf("console = %q, want it untouched", got)
	}
}
