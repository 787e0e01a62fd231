package configs

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"flexipy-lite/internal/logger"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces bursts of filesystem events from one save
const DefaultDebounce = 150 * time.Millisecond

// Watcher reports changes to configuration files in a directory. The
// callback runs on the watcher goroutine; callers that touch UI state must
// hop back to the UI thread themselves.
type Watcher struct {
	watcher  *fsnotify.Watcher
	onChange func()
	debounce time.Duration
	logger   logger.Logger

	mu       sync.Mutex
	timer    *time.Timer
	closed   bool
	inflight sync.WaitGroup
	done     chan struct{}
}

// NewWatcher starts watching dir. onChange is invoked once per burst of
// events touching *.json files.
func NewWatcher(dir string, debounce time.Duration, log logger.Logger, onChange func()) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w := &Watcher{
		watcher:  fw,
		onChange: onChange,
		debounce: debounce,
		logger:   log,
		done:     make(chan struct{}),
	}

	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	defer close(w.done)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Ext(event.Name) != FileExtension {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}

			w.logger.Debug("ConfigWatcher", "configuration file changed", map[string]interface{}{
				"file": filepath.Base(event.Name),
				"op":   event.Op.String(),
			})
			w.schedule()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("ConfigWatcher", err, nil)
		}
	}
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.fire)
}

func (w *Watcher) fire() {
	w.mu.Lock()
	if w.closed || w.onChange == nil {
		w.mu.Unlock()
		return
	}
	w.inflight.Add(1)
	w.mu.Unlock()

	defer w.inflight.Done()
	w.onChange()
}

// Close stops the watcher and waits for its goroutine and for a callback
// that is already running. onChange is never called after Close returns.
// Safe to call twice.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	err := w.watcher.Close()
	<-w.done
	w.inflight.Wait()
	return err
}
