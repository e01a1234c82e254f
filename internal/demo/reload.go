package demo

import (
	"log"
	"os"
	"sync"

	"github.com/dshills/cellbridge/internal/bridge"
	"github.com/dshills/cellbridge/internal/config"
	"github.com/dshills/cellbridge/internal/config/watcher"
)

// Reloadable accepts a replacement colour converter. closeFn releases the
// converter once it has been replaced; it may be nil.
type Reloadable interface {
	Reload(colours bridge.ColourConverter, closeFn func())
}

type colourUpdate struct {
	colours bridge.ColourConverter
	closeFn func()
}

func (u colourUpdate) close() {
	if u.closeFn != nil {
		u.closeFn()
	}
}

// reloader hands converters from other goroutines to the tick loop. Only
// the newest pending converter is kept.
type reloader struct {
	updates chan colourUpdate
	current colourUpdate
}

func newReloader(colours bridge.ColourConverter) reloader {
	return reloader{
		updates: make(chan colourUpdate, 1),
		current: colourUpdate{colours: colours},
	}
}

// Reload queues colours for the next tick. It is safe to call from any
// goroutine.
func (r *reloader) Reload(colours bridge.ColourConverter, closeFn func()) {
	u := colourUpdate{colours: colours, closeFn: closeFn}
	for {
		select {
		case r.updates <- u:
			return
		default:
		}
		select {
		case stale := <-r.updates:
			stale.close()
		default:
		}
	}
}

// take returns the pending converter, if any, and releases the one it
// replaces. Called on the tick goroutine only.
func (r *reloader) take() (bridge.ColourConverter, bool) {
	select {
	case u := <-r.updates:
		r.current.close()
		r.current = u
		return u.colours, true
	default:
		return nil, false
	}
}

func (r *reloader) closeCurrent() {
	r.current.close()
	r.current = colourUpdate{}
}

// NewLogger returns the logger used for reload reports.
func NewLogger() *log.Logger {
	return log.New(os.Stderr, "cellbridge: ", log.LstdFlags)
}

// WatchColours reloads cfg and hands a fresh converter to target whenever
// the config file or its colour script changes. Reload failures are logged
// and keep the current colours. When a reload names a different script, the
// watch moves to the new file.
func WatchColours(cfg *config.Config, w *watcher.Watcher, target Reloadable, logger *log.Logger) error {
	if logger == nil {
		logger = NewLogger()
	}

	if cfg.Path() != "" {
		if err := w.Watch(cfg.Path()); err != nil {
			return err
		}
	}

	cw := &colourWatch{cfg: cfg, w: w, target: target, logger: logger}
	if err := cw.watchScript(cfg.ScriptPath()); err != nil {
		return err
	}

	w.OnChange(func(e watcher.Event) {
		logger.Printf("%s: %s, reloading colours", e.Path, e.Op)
		cw.reload()
	})
	w.OnError(func(err error) {
		logger.Printf("watching config: %v", err)
	})
	return nil
}

// colourWatch reloads colours for one config. w may be nil, in which case
// the script is not watched.
type colourWatch struct {
	cfg    *config.Config
	w      *watcher.Watcher
	target Reloadable
	logger *log.Logger

	mu     sync.Mutex
	script string
}

// watchScript moves the script watch to path. An empty path only drops the
// current watch.
func (cw *colourWatch) watchScript(path string) error {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	if cw.w == nil || path == cw.script {
		return nil
	}
	if path != "" {
		if err := cw.w.Watch(path); err != nil {
			return err
		}
	}
	if cw.script != "" {
		if err := cw.w.Unwatch(cw.script); err != nil {
			cw.logger.Printf("unwatching %s: %v", cw.script, err)
		}
	}
	cw.script = path
	return nil
}

func (cw *colourWatch) reload() bool {
	if err := cw.cfg.Load(); err != nil {
		cw.logger.Printf("reload failed: %v", err)
		return false
	}
	if err := cw.watchScript(cw.cfg.ScriptPath()); err != nil {
		cw.logger.Printf("watching colour script: %v", err)
	}
	if err := cw.cfg.Validate(); err != nil {
		cw.logger.Printf("reload failed: %v", err)
		return false
	}
	colours, closeFn, err := cw.cfg.Converter()
	if err != nil {
		cw.logger.Printf("reload failed: %v", err)
		return false
	}
	cw.target.Reload(colours, closeFn)
	return true
}
