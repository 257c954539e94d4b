// SPDX-License-Identifier: MIT

// Package timing: functional configuration for Harness.
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values).
package timing

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultThreshold is the minimum interval, in seconds, a sample must span
	// before it is trusted without batching.
	DefaultThreshold = 1e-1

	// DefaultFloor is the smallest single-call estimate, in seconds, used when
	// computing the repeat count. A first sample below it is clamped up.
	DefaultFloor = 1e-9

	// DefaultMaxRepeats caps the batched repeat count. With DefaultThreshold and
	// DefaultFloor the computed count never exceeds it.
	DefaultMaxRepeats uint64 = 1 << 32
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicThresholdInvalid  = "timing: WithThreshold: threshold must be finite and > 0"
	panicFloorInvalid      = "timing: WithFloor: floor must be finite and > 0"
	panicMaxRepeatsInvalid = "timing: WithMaxRepeats: max repeats must be > 0"
	panicClockNil          = "timing: WithClock: clock must be non-nil"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective Harness configuration after applying setters.
type Options struct {
	threshold  float64 // seconds; > 0
	floor      float64 // seconds; > 0
	maxRepeats uint64  // > 0
	clock      Clock   // non-nil
}

// WithThreshold sets the minimum trusted sample length in seconds.
// Panics if threshold is not a finite positive number.
func WithThreshold(threshold float64) Option {
	if math.IsNaN(threshold) || math.IsInf(threshold, 0) || threshold <= 0 {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.threshold = threshold }
}

// WithFloor sets the clamp applied to a first sample before the repeat count
// is derived from it.
func WithFloor(floor float64) Option {
	if math.IsNaN(floor) || math.IsInf(floor, 0) || floor <= 0 {
		panic(panicFloorInvalid)
	}

	return func(o *Options) { o.floor = floor }
}

// WithMaxRepeats caps the batched repeat count.
func WithMaxRepeats(n uint64) Option {
	if n == 0 {
		panic(panicMaxRepeatsInvalid)
	}

	return func(o *Options) { o.maxRepeats = n }
}

// WithClock replaces the monotonic system clock. Intended for tests that need
// deterministic elapsed times.
func WithClock(c Clock) Option {
	if c == nil {
		panic(panicClockNil)
	}

	return func(o *Options) { o.clock = c }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		threshold:  DefaultThreshold,
		floor:      DefaultFloor,
		maxRepeats: DefaultMaxRepeats,
		clock:      NewMonotonicClock(),
	}
}

// gatherOptions applies opts in order over the defaults.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
