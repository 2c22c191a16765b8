package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"shapegen/internal/logging"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a config file when it changes on disk and hands the new
// Config to a callback. It watches the file's directory so editors that
// save by rename are still seen.
type Watcher struct {
	mu          sync.RWMutex
	watcher     *fsnotify.Watcher
	path        string
	onChange    func(*Config)
	debounceDur time.Duration
	pendingAt   time.Time // zero when nothing is pending
	stopCh      chan struct{}
	doneCh      chan struct{}
	running     bool
	closeOnce   sync.Once

	stats WatcherStats
}

// WatcherStats tracks watcher activity.
type WatcherStats struct {
	Events        int
	Reloads       int
	Errors        int
	LastReload    time.Time
	LastError     string
	LastEventType string
}

// NewWatcher creates a Watcher for the config file at path.
func NewWatcher(path string, onChange func(*Config)) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		watcher:     fw,
		path:        abs,
		onChange:    onChange,
		debounceDur: 250 * time.Millisecond,
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}, nil
}

// SetDebounce changes how long the file must be quiet before a reload.
// It must be called before Start.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if d > 0 {
		w.debounceDur = d
	}
}

// Start begins watching. This method is non-blocking.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	dir := filepath.Dir(w.path)
	if err := w.watcher.Add(dir); err != nil {
		w.mu.Unlock()
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	w.running = true
	tick := max(w.debounceDur/2, time.Millisecond)
	w.mu.Unlock()

	logging.Config("Watcher: watching %s", w.path)
	go w.run(ctx, tick)
	return nil
}

// Stop stops the watcher and waits for cleanup. It is safe to call more
// than once and without Start.
func (w *Watcher) Stop() {
	w.mu.Lock()
	wasRunning := w.running
	w.running = false
	w.mu.Unlock()

	if wasRunning {
		close(w.stopCh)
		<-w.doneCh
	}

	w.closeOnce.Do(func() {
		if err := w.watcher.Close(); err != nil {
			logging.ConfigError("Watcher: error closing watcher: %v", err)
		}
		logging.Config("Watcher: stopped")
	})
}

// run is the main event loop for the watcher.
func (w *Watcher) run(ctx context.Context, tick time.Duration) {
	defer close(w.doneCh)

	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logging.ConfigError("Watcher error: %v", err)
			w.mu.Lock()
			w.stats.Errors++
			w.stats.LastError = err.Error()
			w.mu.Unlock()

		case <-ticker.C:
			w.processDebounced()
		}
	}
}

// handleEvent records a change to the watched file for later reload.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}

	var eventType string
	switch {
	case event.Op&fsnotify.Create != 0:
		eventType = "create"
	case event.Op&fsnotify.Write != 0:
		eventType = "modify"
	case event.Op&fsnotify.Rename != 0:
		eventType = "rename"
	default:
		return // remove and chmod
	}

	logging.ConfigDebug("Watcher: %s event for %s", eventType, event.Name)

	w.mu.Lock()
	w.stats.Events++
	w.stats.LastEventType = eventType
	w.pendingAt = time.Now()
	w.mu.Unlock()
}

// processDebounced reloads once the file has been quiet for the debounce window.
func (w *Watcher) processDebounced() {
	w.mu.Lock()
	if w.pendingAt.IsZero() || time.Since(w.pendingAt) < w.debounceDur {
		w.mu.Unlock()
		return
	}
	w.pendingAt = time.Time{}
	w.mu.Unlock()

	w.reload()
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err == nil {
		err = cfg.Validate()
	}
	logging.Audit().ConfigReload(w.path, err)

	w.mu.Lock()
	if err != nil {
		w.stats.Errors++
		w.stats.LastError = err.Error()
		w.mu.Unlock()
		logging.ConfigWarn("Watcher: keeping previous config, reload of %s failed: %v", w.path, err)
		return
	}
	w.stats.Reloads++
	w.stats.LastReload = time.Now()
	w.mu.Unlock()

	logging.Config("Watcher: reloaded %s", w.path)
	if w.onChange != nil {
		w.onChange(cfg)
	}
}

// Stats returns the current watcher statistics.
func (w *Watcher) Stats() WatcherStats {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.stats
}

// IsWatching returns true if the watcher is currently running.
func (w *Watcher) IsWatching() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.running
}

// Path returns the absolute path of the watched file.
func (w *Watcher) Path() string {
	return w.path
}
