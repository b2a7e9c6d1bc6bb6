package view

import (
	"sync"
	"time"
)

// Debouncer defers an action until triggers have been quiescent for the
// configured interval. Each Trigger cancels the previously scheduled,
// not-yet-fired action, so a burst of triggers collapses into the single
// final one.
type Debouncer struct {
	mu       sync.Mutex
	interval time.Duration
	timer    *time.Timer
}

func NewDebouncer(interval time.Duration) *Debouncer {
	return &Debouncer{interval: interval}
}

// Trigger schedules fn after the quiescent interval, replacing any pending
// schedule. With a non-positive interval fn runs synchronously, which keeps
// headless callers and tests deterministic.
func (d *Debouncer) Trigger(fn func()) {
	if d.interval <= 0 {
		fn()
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, fn)
}

// Stop cancels any pending action.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
