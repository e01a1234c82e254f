package watcher

import (
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func newTestWatcher(t *testing.T, opts ...Option) *Watcher {
	t.Helper()
	w, err := New(opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { _ = w.Close() })
	return w
}

func collect(w *Watcher) <-chan Event {
	events := make(chan Event, 16)
	w.OnChange(func(e Event) {
		select {
		case events <- e:
		default:
		}
	})
	return events
}

func waitEvent(t *testing.T, events <-chan Event) Event {
	t.Helper()
	select {
	case e := <-events:
		return e
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestNew(t *testing.T) {
	w := newTestWatcher(t)
	if w.debounce != DefaultDebounce {
		t.Errorf("default debounce = %v, want %v", w.debounce, DefaultDebounce)
	}

	w = newTestWatcher(t, WithDebounce(50*time.Millisecond))
	if w.debounce != 50*time.Millisecond {
		t.Errorf("debounce = %v, want 50ms", w.debounce)
	}
}

func TestOperation_String(t *testing.T) {
	tests := []struct {
		op   Operation
		want string
	}{
		{OpWrite, "write"},
		{OpCreate, "create"},
		{OpRemove, "remove"},
		{OpRename, "rename"},
		{Operation(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.op, got, tt.want)
		}
	}
}

func TestWatcher_WatchUnwatch(t *testing.T) {
	tmpDir := t.TempDir()
	a := filepath.Join(tmpDir, "a.toml")
	b := filepath.Join(tmpDir, "b.toml")
	if err := os.WriteFile(a, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	w := newTestWatcher(t)

	if err := w.Watch(a); err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	// Missing files in an existing directory are watched for creation.
	if err := w.Watch(b); err != nil {
		t.Fatalf("Watch(missing) error = %v", err)
	}
	if err := w.Watch(a); err != nil {
		t.Errorf("second Watch() error = %v", err)
	}
	if got := len(w.WatchedFiles()); got != 2 {
		t.Errorf("WatchedFiles() = %d files, want 2", got)
	}
	if w.dirs[tmpDir] != 2 {
		t.Errorf("directory refcount = %d, want 2", w.dirs[tmpDir])
	}

	if err := w.Watch(filepath.Join(tmpDir, "nodir", "c.toml")); err == nil {
		t.Error("Watch() in a missing directory should fail")
	}

	if err := w.Unwatch(a); err != nil {
		t.Errorf("Unwatch() error = %v", err)
	}
	if err := w.Unwatch(b); err != nil {
		t.Errorf("Unwatch() error = %v", err)
	}
	if len(w.WatchedFiles()) != 0 || len(w.dirs) != 0 {
		t.Errorf("after Unwatch: files=%v dirs=%v", w.WatchedFiles(), w.dirs)
	}
}

func TestWatcher_DetectsFileModification(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "cellbridge.toml")
	if err := os.WriteFile(path, []byte("a = 1"), 0644); err != nil {
		t.Fatal(err)
	}

	w := newTestWatcher(t, WithDebounce(0))
	events := collect(w)
	if err := w.Watch(path); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(path, []byte("a = 2"), 0644); err != nil {
		t.Fatal(err)
	}

	e := waitEvent(t, events)
	if e.Path != path {
		t.Errorf("event path = %q, want %q", e.Path, path)
	}
	if e.Op != OpWrite && e.Op != OpCreate {
		t.Errorf("event op = %v, want write", e.Op)
	}
}

func TestWatcher_DetectsFileCreation(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "new.yaml")

	w := newTestWatcher(t, WithDebounce(20*time.Millisecond))
	events := collect(w)
	if err := w.Watch(path); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(path, []byte("host: {}"), 0644); err != nil {
		t.Fatal(err)
	}

	e := waitEvent(t, events)
	if e.Op != OpCreate {
		t.Errorf("event op = %v, want create", e.Op)
	}
}

func TestWatcher_DetectsFileDeletion(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "gone.json")
	if err := os.WriteFile(path, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	w := newTestWatcher(t, WithDebounce(0))
	events := collect(w)
	if err := w.Watch(path); err != nil {
		t.Fatal(err)
	}

	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}

	if e := waitEvent(t, events); e.Op != OpRemove {
		t.Errorf("event op = %v, want remove", e.Op)
	}
}

func TestWatcher_IgnoresSiblings(t *testing.T) {
	tmpDir := t.TempDir()
	watched := filepath.Join(tmpDir, "watched.toml")
	other := filepath.Join(tmpDir, "other.toml")

	w := newTestWatcher(t, WithDebounce(0))
	events := collect(w)
	if err := w.Watch(watched); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(other, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(watched, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if e := waitEvent(t, events); e.Path != watched {
		t.Errorf("first event for %q, want only %q", e.Path, watched)
	}
}

func TestWatcher_Debounce(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "burst.toml")
	if err := os.WriteFile(path, []byte("0"), 0644); err != nil {
		t.Fatal(err)
	}

	var count atomic.Int32
	done := make(chan struct{}, 8)

	w := newTestWatcher(t, WithDebounce(150*time.Millisecond))
	w.OnChange(func(Event) {
		count.Add(1)
		done <- struct{}{}
	})
	if err := w.Watch(path); err != nil {
		t.Fatal(err)
	}

	for i := range 5 {
		if err := os.WriteFile(path, []byte{byte('1' + i)}, 0644); err != nil {
			t.Fatal(err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for debounced event")
	}
	time.Sleep(300 * time.Millisecond)

	if got := count.Load(); got != 1 {
		t.Errorf("handler called %d times, want 1", got)
	}
}

func TestCoalesce(t *testing.T) {
	t0 := time.Now()
	t1 := t0.Add(time.Millisecond)

	tests := []struct {
		name     string
		existing pendingEvent
		next     Operation
		want     Operation
	}{
		{"first", pendingEvent{}, OpWrite, OpWrite},
		{"create then write", pendingEvent{OpCreate, t0}, OpWrite, OpCreate},
		{"write then write", pendingEvent{OpWrite, t0}, OpWrite, OpWrite},
		{"write then remove", pendingEvent{OpWrite, t0}, OpRemove, OpRemove},
		{"create then remove", pendingEvent{OpCreate, t0}, OpRemove, OpRemove},
		{"remove then write", pendingEvent{OpRemove, t0}, OpWrite, OpRemove},
		{"remove then create", pendingEvent{OpRemove, t0}, OpCreate, OpCreate},
		{"write then rename", pendingEvent{OpWrite, t0}, OpRename, OpRename},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := coalesce(tt.existing, Event{Op: tt.next, Time: t1})
			if got.Op != tt.want {
				t.Errorf("op = %v, want %v", got.Op, tt.want)
			}
			if !got.Time.Equal(t1) {
				t.Errorf("time = %v, want latest", got.Time)
			}
		})
	}
}

func TestWatcher_MultipleHandlersAndPanics(t *testing.T) {
	w := newTestWatcher(t)

	var mu sync.Mutex
	var calls []string
	w.OnChange(func(Event) { panic("boom") })
	w.OnChange(func(e Event) {
		mu.Lock()
		calls = append(calls, e.Path)
		mu.Unlock()
	})

	var errs atomic.Int32
	w.OnError(func(error) { panic("boom") })
	w.OnError(func(error) { errs.Add(1) })

	w.emitEvent(Event{Path: "/x.toml", Op: OpWrite})
	w.emitError(os.ErrPermission)

	if len(calls) != 1 || calls[0] != "/x.toml" {
		t.Errorf("calls = %v", calls)
	}
	if errs.Load() != 1 {
		t.Errorf("error handler calls = %d, want 1", errs.Load())
	}
}

func TestWatcher_Close(t *testing.T) {
	w, err := New()
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	if err := w.Watch(filepath.Join(t.TempDir(), "a.toml")); err != ErrClosed {
		t.Errorf("Watch() after Close = %v, want ErrClosed", err)
	}
	if err := w.Unwatch("a.toml"); err != ErrClosed {
		t.Errorf("Unwatch() after Close = %v, want ErrClosed", err)
	}
}
