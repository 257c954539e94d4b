// SPDX-License-Identifier: MIT

// Package timing measures the wall-clock latency of a zero-argument operation,
// including operations far cheaper than the practical resolution of the clock.
//
// What & Why:
//
//	A single clock read around a sub-microsecond call mostly measures the clock
//	itself plus scheduler jitter. Harness.MeasureStable first times one call; if
//	that call already took at least the threshold (DefaultThreshold, 0.1s) the
//	sample is returned as-is. Otherwise the call is repeated
//	n = ceil(threshold / t0) times inside one timed region, with no clock reads
//	between iterations, and the total is divided by n.
//
// Guarantees:
//
//	Only monotonic readings are used (time.Since on a time.Time carrying the
//	monotonic component), so wall-clock adjustments never skew a sample.
//	A first sample of zero (coarse timers) is clamped to DefaultFloor before
//	the division, so the repeat count is always finite.
//
// Complexity:
//
//	MeasureStable runs op at most 1 + max(1, ceil(threshold/max(t0, floor)))
//	times, capped by WithMaxRepeats.
package timing
