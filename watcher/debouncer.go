package watcher

import (
	"sync"
	"time"
)

// Debouncer batches change notifications and emits the set of changed paths
// after a quiet period. Repeated changes to the same path within the window
// collapse into one entry. The document is regenerated wholesale, so the
// kind of change does not matter, only that something changed.
type Debouncer struct {
	interval time.Duration
	paths    map[string]struct{}
	mu       sync.Mutex
	timer    *time.Timer
	output   chan []string
}

// NewDebouncer creates a debouncer with the given quiet interval.
func NewDebouncer(interval time.Duration) *Debouncer {
	return &Debouncer{
		interval: interval,
		paths:    make(map[string]struct{}),
		output:   make(chan []string, 16),
	}
}

// Output returns the channel that receives batches of changed paths.
func (d *Debouncer) Output() <-chan []string {
	return d.output
}

// Add records a changed path and restarts the quiet-period timer.
func (d *Debouncer) Add(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.paths[path] = struct{}{}

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, d.flush)
}

// flush emits the accumulated paths and resets the buffer.
func (d *Debouncer) flush() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if len(d.paths) == 0 {
		return
	}

	batch := make([]string, 0, len(d.paths))
	for path := range d.paths {
		batch = append(batch, path)
	}

	d.paths = make(map[string]struct{})
	d.output <- batch
}
