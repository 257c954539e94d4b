// SPDX-License-Identifier: MIT

package timing

import "time"

// Clock is a monotonic time source. Only differences between two readings
// are meaningful; the origin is arbitrary.
type Clock interface {
	// Now returns the time elapsed since the clock's origin.
	Now() time.Duration
}

// monotonicClock reads the runtime's monotonic clock. time.Since on a
// time.Time that carries a monotonic reading ignores wall-clock steps.
type monotonicClock struct {
	origin time.Time
}

// NewMonotonicClock returns a Clock whose origin is the moment of the call.
func NewMonotonicClock() Clock {
	return monotonicClock{origin: time.Now()}
}

// Now implements Clock.
func (c monotonicClock) Now() time.Duration {
	return time.Since(c.origin)
}
