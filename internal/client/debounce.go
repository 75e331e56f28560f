// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package client

import (
	"sync"
	"time"
)

// Debouncer delays a call until its input has been quiet for a fixed delay.
// Each Trigger replaces the pending value and restarts the timer; only a
// timer that is not superseded before it expires calls fn.
type Debouncer struct {
	delay time.Duration
	fn    func(string)

	mu      sync.Mutex
	timer   *time.Timer
	gen     uint64
	pending string
	armed   bool
}

// NewDebouncer returns a Debouncer that calls fn with the last triggered
// value once delay has passed without another Trigger.
func NewDebouncer(delay time.Duration, fn func(string)) *Debouncer {
	return &Debouncer{delay: delay, fn: fn}
}

// Trigger records v and restarts the quiet period.
func (d *Debouncer) Trigger(v string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	gen := d.gen
	d.pending = v
	d.armed = true
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() { d.fire(gen) })
}

// fire runs when a timer expires. A timer that was stopped too late to
// prevent its callback carries a stale generation and does nothing.
func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if gen != d.gen || !d.armed {
		d.mu.Unlock()
		return
	}
	v := d.pending
	d.armed = false
	d.mu.Unlock()

	d.fn(v)
}

// Flush calls fn with the pending value immediately and reports whether
// there was one.
func (d *Debouncer) Flush() bool {
	d.mu.Lock()
	if !d.armed {
		d.mu.Unlock()
		return false
	}
	d.gen++
	d.armed = false
	if d.timer != nil {
		d.timer.Stop()
	}
	v := d.pending
	d.mu.Unlock()

	d.fn(v)
	return true
}

// Stop discards the pending value, if any.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	d.armed = false
	if d.timer != nil {
		d.timer.Stop()
	}
}

// Pending reports whether a value is waiting for its quiet period to end.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.armed
}
