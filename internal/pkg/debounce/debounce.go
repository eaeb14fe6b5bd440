// Package debounce provides a cancellable trailing-edge debouncer.
//
// Each Do supersedes the previous one: only the function passed to the most
// recent Do within the window runs. Stop cancels whatever is pending, so an
// owner being torn down never fires a stale callback.
package debounce

import (
	"sync"
	"time"
)

type Debouncer struct {
	interval time.Duration

	mu    sync.Mutex
	timer *time.Timer
	seq   uint64
}

func New(interval time.Duration) *Debouncer {
	return &Debouncer{interval: interval}
}

// Do schedules fn to run after the debounce interval, cancelling any
// previously scheduled function that has not fired yet.
func (d *Debouncer) Do(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	scheduled := d.seq

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, func() {
		d.mu.Lock()
		stale := scheduled != d.seq
		d.mu.Unlock()
		if stale {
			return
		}
		fn()
	})
}

// Stop cancels the pending invocation, if any.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
