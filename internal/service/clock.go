package service

import (
	"sync"
	"time"
)

// MonotonicClock wraps a time source so that readings never go backwards.
// One clock is shared by every engine instance.
type MonotonicClock struct {
	mu   sync.Mutex
	src  func() time.Time
	last time.Time
}

// NewSystemClock returns a monotonic clock backed by the wall clock.
func NewSystemClock() *MonotonicClock {
	return NewMonotonicClock(time.Now)
}

// NewMonotonicClock returns a clock reading from src.
func NewMonotonicClock(src func() time.Time) *MonotonicClock {
	return &MonotonicClock{src: src}
}

// Now returns the later of the source time and the previous reading, in UTC.
func (c *MonotonicClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.src().UTC()
	if now.Before(c.last) {
		now = c.last
	}
	c.last = now
	return now
}

// ManualClock is a settable time source for tests and simulations.
type ManualClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewManualClock returns a clock frozen at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start.UTC()}
}

// Now returns the time last set or advanced to.
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

// Set jumps the clock to t. Wrap the clock in a MonotonicClock to forbid going back.
func (c *ManualClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t.UTC()
	c.mu.Unlock()
}
