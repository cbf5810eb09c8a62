package watcher

import (
	"sync"
	"time"
)

// Debouncer delays processing until file activity settles. Rapid events
// for the same path are coalesced so the callback fires once per file.
type Debouncer struct {
	delay    time.Duration
	pending  map[string]*time.Timer
	callback func(path string)
	mu       sync.Mutex
}

// NewDebouncer creates a Debouncer invoking callback for each path once the
// delay has elapsed without further events for that path.
func NewDebouncer(delay time.Duration, callback func(path string)) *Debouncer {
	return &Debouncer{
		delay:    delay,
		pending:  make(map[string]*time.Timer),
		callback: callback,
	}
}

// Add schedules a path for processing after the debounce delay. Adding a
// path that is already pending resets its timer.
func (d *Debouncer) Add(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if timer, exists := d.pending[path]; exists {
		timer.Stop()
	}

	d.pending[path] = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		delete(d.pending, path)
		d.mu.Unlock()

		// Invoke the callback outside the lock to avoid deadlocks.
		if d.callback != nil {
			d.callback(path)
		}
	})
}

// CancelAll cancels every pending path. Used during shutdown so no
// callback fires after the watcher has stopped.
func (d *Debouncer) CancelAll() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for path, timer := range d.pending {
		timer.Stop()
		delete(d.pending, path)
	}
}

// PendingCount returns the number of paths currently pending.
func (d *Debouncer) PendingCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}
