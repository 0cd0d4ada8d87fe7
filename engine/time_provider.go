package engine

import "time"

// TimeProvider supplies the loop's wall clock.
// Production code uses MonotonicTimeProvider; tests substitute
// MockTimeProvider to drive the accumulator deterministically.
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider reads the real system clock with monotonic readings
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a real-clock provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}
