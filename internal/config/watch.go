package config

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Watcher polls a set of files and reports when any of them is modified.
// It is used to re-run an analysis while a tuning file is being edited.
type Watcher struct {
	interval time.Duration

	mu       sync.Mutex
	paths    []string
	baseline map[string]time.Time
	onChange func(path string)
}

// DefaultWatchInterval replaces a non-positive polling interval.
const DefaultWatchInterval = time.Second

// NewWatcher watches the given paths. Empty paths are ignored; symlinks are
// resolved so that editors replacing the target are noticed.
func NewWatcher(interval time.Duration, paths ...string) *Watcher {
	if interval <= 0 {
		interval = DefaultWatchInterval
	}
	w := &Watcher{
		interval: interval,
		baseline: make(map[string]time.Time, len(paths)),
	}
	for _, p := range paths {
		if p == "" {
			continue
		}
		if real, err := filepath.EvalSymlinks(p); err == nil {
			p = real
		}
		w.paths = append(w.paths, p)
		w.baseline[p] = modTime(p)
	}
	return w
}

// OnChange sets the callback. It runs on the watcher goroutine.
func (w *Watcher) OnChange(fn func(path string)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = fn
}

// Run polls until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for _, p := range w.Check() {
				w.mu.Lock()
				fn := w.onChange
				w.mu.Unlock()
				if fn != nil {
					fn(p)
				}
			}
		}
	}
}

// Check returns the paths modified since the previous check and moves the
// baseline forward. A file that disappears is not reported until it comes
// back.
func (w *Watcher) Check() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	var changed []string
	for _, p := range w.paths {
		mt := modTime(p)
		if mt.IsZero() {
			continue
		}
		if mt.After(w.baseline[p]) {
			w.baseline[p] = mt
			changed = append(changed, p)
		}
	}
	return changed
}

func modTime(path string) time.Time {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}
