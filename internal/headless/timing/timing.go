// Package timing provides the clock and timer primitives used by widgets with
// delayed transitions. Timers never run in the background: a deadline is only
// observed when its owner polls it.
package timing

import (
	"sync"
	"time"
)

// Clock reports the current instant.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock. time.Now carries a monotonic reading, so
// deadlines computed from it are immune to wall-clock adjustments.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock only moves when told to. Tests share one instance between the
// widget under test and the code advancing time.
type ManualClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewManualClock returns a clock frozen at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// Set jumps the clock to t.
func (c *ManualClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

// Timer holds an optional deadline.
type Timer struct {
	deadline time.Time
	armed    bool
}

// Schedule arms the timer to fire d after the clock's current instant,
// replacing any pending deadline.
func (t *Timer) Schedule(clock Clock, d time.Duration) {
	t.deadline = clock.Now().Add(d)
	t.armed = true
}

// FireIfDue reports true once when the deadline has been reached and disarms
// the timer. It returns false until the timer is scheduled again.
func (t *Timer) FireIfDue(clock Clock) bool {
	if !t.armed {
		return false
	}
	if clock.Now().Before(t.deadline) {
		return false
	}
	t.armed = false
	t.deadline = time.Time{}
	return true
}

// Cancel disarms the timer without firing.
func (t *Timer) Cancel() {
	t.armed = false
	t.deadline = time.Time{}
}

// Pending reports whether a deadline is armed.
func (t *Timer) Pending() bool {
	return t.armed
}

// Deadline returns the armed deadline.
func (t *Timer) Deadline() (time.Time, bool) {
	return t.deadline, t.armed
}
