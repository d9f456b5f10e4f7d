package testdoubles

import (
	"sync"
	"time"
)

// ClockStub is a datetool.Clock whose current time is set by the test.
type ClockStub struct {
	mu  sync.Mutex
	now time.Time
}

// NewClockStub creates a ClockStub reporting now.
func NewClockStub(now time.Time) *ClockStub {
	return &ClockStub{now: now}
}

// Now implements datetool.Clock.
func (c *ClockStub) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

// Set moves the clock to now.
func (c *ClockStub) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = now
}

// Advance moves the clock forward by d.
func (c *ClockStub) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}
