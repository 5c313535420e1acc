package backend

import (
	"context"
	"sync"
	"time"
)

// throttle spaces successive reloads at least interval apart.
type throttle struct {
	interval time.Duration

	mu   sync.Mutex
	next time.Time
}

func newThrottle(interval time.Duration) *throttle {
	if interval <= 0 {
		return &throttle{}
	}
	return &throttle{interval: interval}
}

// wait blocks until the next slot opens. It returns false if ctx ends first.
func (t *throttle) wait(ctx context.Context) bool {
	if t == nil || t.interval <= 0 {
		return ctx.Err() == nil
	}
	t.mu.Lock()
	now := time.Now()
	slot := t.next
	if slot.Before(now) {
		slot = now
	}
	t.next = slot.Add(t.interval)
	t.mu.Unlock()

	delay := time.Until(slot)
	if delay <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
