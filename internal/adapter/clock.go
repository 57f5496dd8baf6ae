package adapter

import (
	"sync"
	"time"
)

// Clock defines an interface for time operations to enable mocking
//
//go:generate mockgen -source=clock.go -destination=../mocks/clock.go -package=mocks -mock_names=Clock=MockClock
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the standard time package
type RealClock struct{}

// NewClock creates a new real clock implementation
func NewClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now().UTC()
}

// MonotonicClock wraps a clock so that successive readings never go backwards.
// Readings are truncated to whole seconds.
type MonotonicClock struct {
	mu    sync.Mutex
	inner Clock
	last  time.Time
}

// NewMonotonicClock wraps inner
func NewMonotonicClock(inner Clock) *MonotonicClock {
	return &MonotonicClock{inner: inner}
}

func (c *MonotonicClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.inner.Now().Truncate(time.Second)
	if now.Before(c.last) {
		return c.last
	}
	c.last = now
	return now
}
