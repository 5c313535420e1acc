package timing

import (
	"testing"
	"time"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestTimerFiresOnceWhenDue(t *testing.T) {
	clock := NewManualClock(epoch)
	var timer Timer
	timer.Schedule(clock, 100*time.Millisecond)
	if !timer.Pending() {
		t.Fatalf("expected timer pending after schedule")
	}
	clock.Advance(99 * time.Millisecond)
	if timer.FireIfDue(clock) {
		t.Fatalf("expected timer not to fire before deadline")
	}
	clock.Advance(time.Millisecond)
	if !timer.FireIfDue(clock) {
		t.Fatalf("expected timer to fire at deadline")
	}
	if timer.FireIfDue(clock) {
		t.Fatalf("expected timer to fire only once")
	}
	if timer.Pending() {
		t.Fatalf("expected timer disarmed after firing")
	}
}

func TestTimerCancel(t *testing.T) {
	clock := NewManualClock(epoch)
	var timer Timer
	timer.Schedule(clock, 10*time.Millisecond)
	timer.Cancel()
	clock.Advance(time.Second)
	if timer.FireIfDue(clock) {
		t.Fatalf("expected cancelled timer not to fire")
	}
	if _, ok := timer.Deadline(); ok {
		t.Fatalf("expected no deadline after cancel")
	}
}

func TestTimerRescheduleReplacesDeadline(t *testing.T) {
	clock := NewManualClock(epoch)
	var timer Timer
	timer.Schedule(clock, 10*time.Millisecond)
	clock.Advance(5 * time.Millisecond)
	timer.Schedule(clock, 10*time.Millisecond)
	clock.Advance(5 * time.Millisecond)
	if timer.FireIfDue(clock) {
		t.Fatalf("expected rescheduled timer to use the new deadline")
	}
	deadline, ok := timer.Deadline()
	if !ok || !deadline.Equal(epoch.Add(15*time.Millisecond)) {
		t.Fatalf("unexpected deadline %v/%v", deadline, ok)
	}
	clock.Advance(5 * time.Millisecond)
	if !timer.FireIfDue(clock) {
		t.Fatalf("expected timer to fire at the new deadline")
	}
}

func TestZeroDurationIsImmediatelyDue(t *testing.T) {
	clock := NewManualClock(epoch)
	var timer Timer
	timer.Schedule(clock, 0)
	if !timer.FireIfDue(clock) {
		t.Fatalf("expected zero-duration timer to be due immediately")
	}
}

func TestManualClockSet(t *testing.T) {
	clock := NewManualClock(epoch)
	later := epoch.Add(time.Hour)
	clock.Set(later)
	if !clock.Now().Equal(later) {
		t.Fatalf("expected clock at %v, got %v", later, clock.Now())
	}
}

func TestSystemClockMovesForward(t *testing.T) {
	var clock SystemClock
	first := clock.Now()
	second := clock.Now()
	if second.Before(first) {
		t.Fatalf("expected monotonic system clock")
	}
}
