package usecase

import (
	"sync"
	"time"
)

// DefaultDebounceDelay is the quiet period before a text edit is written.
const DefaultDebounceDelay = 500 * time.Millisecond

// Debouncer runs the most recently scheduled function once no new call has
// arrived for the configured delay. A superseded function is dropped.
type Debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending func()
	gen     uint64
}

// NewDebouncer creates a debouncer. A non-positive delay uses DefaultDebounceDelay.
func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounceDelay
	}
	return &Debouncer{delay: delay}
}

// Delay returns the quiet period.
func (d *Debouncer) Delay() time.Duration { return d.delay }

// Schedule replaces any pending function with fn and restarts the timer.
func (d *Debouncer) Schedule(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	gen := d.gen
	d.pending = fn
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() { d.fire(gen) })
}

func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if gen != d.gen || d.pending == nil {
		d.mu.Unlock()
		return
	}
	fn := d.pending
	d.pending = nil
	d.timer = nil
	d.mu.Unlock()

	fn()
}

// Pending reports whether a function is waiting to run.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending != nil
}

// Flush runs the pending function now, on the caller's goroutine.
// It reports whether anything ran.
func (d *Debouncer) Flush() bool {
	d.mu.Lock()
	fn := d.pending
	d.cancelLocked()
	d.mu.Unlock()

	if fn == nil {
		return false
	}
	fn()
	return true
}

// Cancel drops the pending function without running it.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancelLocked()
}

func (d *Debouncer) cancelLocked() {
	d.gen++
	d.pending = nil
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
