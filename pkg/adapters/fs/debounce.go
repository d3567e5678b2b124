package fs

import (
	"sync"
	"time"
)

// debouncer coalesces bursts of filesystem events into a single callback
// fired one quiet interval after the last trigger. Atomic writes surface as
// several directory events in quick succession; only the settled state matters.
type debouncer struct {
	mu       sync.Mutex
	interval time.Duration
	timer    *time.Timer
	stopped  bool
	wg       sync.WaitGroup
}

func newDebouncer(interval time.Duration) *debouncer {
	return &debouncer{interval: interval}
}

// trigger schedules fn to run after the quiet interval, replacing any
// previously scheduled run.
func (d *debouncer) trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if d.timer != nil && d.timer.Stop() {
		d.wg.Done()
	}
	d.wg.Add(1)
	d.timer = time.AfterFunc(d.interval, func() {
		defer d.wg.Done()
		fn()
	})
}

// stopAndWait rejects further triggers and waits for in-flight callbacks,
// up to the given timeout.
func (d *debouncer) stopAndWait(timeout time.Duration) {
	d.mu.Lock()
	d.stopped = true
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(timeout):
	}
}
