// SPDX-License-Identifier: MIT

package timing

import (
	"errors"
	"fmt"
	"math"
)

// ErrNilOp is returned when a nil Op is passed to a measurement.
var ErrNilOp = errors.New("timing: nil op")

// Operation tags for error wrapping.
const (
	opMeasureOnce = "MeasureOnce"
	opCalibrate   = "Calibrate"
)

// Op is one invocation of the operation under measurement. It may mutate the
// state it captures; repeated calls must stay valid and comparably costed.
type Op func() error

// Sample is a calibrated per-call latency estimate.
type Sample struct {
	// Seconds is the estimated cost of a single call.
	Seconds float64
	// Repeats is the number of calls in the timed region that produced
	// Seconds (1 when the first call already reached the threshold).
	Repeats uint64
}

// Harness measures Ops. The zero value is not usable; build with New.
type Harness struct {
	opts Options
}

// New returns a Harness configured by opts over the package defaults.
func New(opts ...Option) *Harness {
	return &Harness{opts: gatherOptions(opts...)}
}

// Threshold returns the configured minimum trusted sample length in seconds.
func (h *Harness) Threshold() float64 { return h.opts.threshold }

// MeasureOnce runs op exactly once and returns the elapsed monotonic time in
// seconds. An error from op is returned wrapped; the elapsed time is then 0.
func (h *Harness) MeasureOnce(op Op) (float64, error) {
	if op == nil {
		return 0, fmt.Errorf("%s: %w", opMeasureOnce, ErrNilOp)
	}

	start := h.opts.clock.Now()
	err := op()
	elapsed := h.opts.clock.Now() - start
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opMeasureOnce, err)
	}

	return elapsed.Seconds(), nil
}

// MeasureStable returns a calibrated per-call latency estimate of op in
// seconds. See Calibrate.
func (h *Harness) MeasureStable(op Op) (float64, error) {
	s, err := h.Calibrate(op)
	if err != nil {
		return 0, err
	}

	return s.Seconds, nil
}

// Calibrate measures op once and, if that sample is below the threshold,
// re-measures it as one batch of RepeatCount calls.
//
// Implementation:
//   - Stage 1: t0 = MeasureOnce(op).
//   - Stage 2: t0 >= threshold ⇒ Sample{t0, 1}.
//   - Stage 3: n = RepeatCount(t0); run op n times between two clock reads.
//   - Stage 4: Sample{total/n, n}.
//
// Errors:
//   - The first error from op aborts the measurement; no retry.
func (h *Harness) Calibrate(op Op) (Sample, error) {
	t0, err := h.MeasureOnce(op)
	if err != nil {
		return Sample{}, err
	}
	if t0 >= h.opts.threshold {
		return Sample{Seconds: t0, Repeats: 1}, nil
	}

	n := h.RepeatCount(t0)
	start := h.opts.clock.Now()
	for i := uint64(0); i < n; i++ {
		if err = op(); err != nil {
			return Sample{}, fmt.Errorf("%s: call %d of %d: %w", opCalibrate, i+1, n, err)
		}
	}
	total := (h.opts.clock.Now() - start).Seconds()

	return Sample{Seconds: total / float64(n), Repeats: n}, nil
}

// RepeatCount returns ceil(threshold / max(t0, floor)), clamped to
// [1, max repeats]. A zero or denormal t0 therefore never divides by zero.
func (h *Harness) RepeatCount(t0 float64) uint64 {
	if math.IsNaN(t0) || t0 < h.opts.floor {
		t0 = h.opts.floor
	}

	n := math.Ceil(h.opts.threshold / t0)
	switch {
	case n < 1:
		return 1
	case n >= float64(h.opts.maxRepeats):
		return h.opts.maxRepeats
	}

	return uint64(n)
}

// defaultHarness backs the package-level helpers.
var defaultHarness = New()

// MeasureOnce runs op once on the default Harness.
func MeasureOnce(op Op) (float64, error) { return defaultHarness.MeasureOnce(op) }

// MeasureStable measures op on the default Harness.
func MeasureStable(op Op) (float64, error) { return defaultHarness.MeasureStable(op) }
