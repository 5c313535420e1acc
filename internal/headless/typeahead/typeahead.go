// Package typeahead accumulates printable keystrokes into a jump-to-item query.
package typeahead

import (
	"time"

	"github.com/atomicstack/headless-ui/internal/headless/timing"
)

// DefaultTimeout is the idle window after which the next keystroke starts a
// fresh query.
const DefaultTimeout = time.Second

// Matcher resolves a query to an item index given the current index and the
// item count. It returns a negative value when nothing matches.
type Matcher func(query string, current, count int) int

// Buffer holds the query typed within the rolling timeout window.
type Buffer struct {
	query   []rune
	last    time.Time
	typed   bool
	timeout time.Duration
	clock   timing.Clock
}

// New returns an empty buffer. A nil clock reads the system clock.
func New(timeout time.Duration, clock timing.Clock) Buffer {
	if clock == nil {
		clock = timing.SystemClock{}
	}
	return Buffer{timeout: timeout, clock: clock}
}

// Push appends ch and returns the accumulated query. The buffer restarts from
// ch when more than the timeout has passed since the previous keystroke.
func (b *Buffer) Push(ch rune) string {
	clock := b.clockOrSystem()
	now := clock.Now()
	if !b.typed || now.Sub(b.last) > b.timeout {
		b.query = b.query[:0]
	}
	b.query = append(b.query, ch)
	b.last = now
	b.typed = true
	return string(b.query)
}

// Reset clears the query.
func (b *Buffer) Reset() {
	b.query = b.query[:0]
	b.typed = false
	b.last = time.Time{}
}

// Query returns the accumulated query without touching the window.
func (b *Buffer) Query() string {
	return string(b.query)
}

// Timeout returns the idle window.
func (b *Buffer) Timeout() time.Duration {
	return b.timeout
}

// SetTimeout changes the idle window and clears any partial query.
func (b *Buffer) SetTimeout(timeout time.Duration) {
	b.timeout = timeout
	b.Reset()
}

// SetClock swaps the time source, typically for a manual clock in tests.
func (b *Buffer) SetClock(clock timing.Clock) {
	b.clock = clock
}

// Clone returns a copy that shares no query storage with b.
func (b Buffer) Clone() Buffer {
	dup := b
	dup.query = append([]rune(nil), b.query...)
	return dup
}

func (b *Buffer) clockOrSystem() timing.Clock {
	if b.clock == nil {
		b.clock = timing.SystemClock{}
	}
	return b.clock
}
