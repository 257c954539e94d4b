// SPDX-License-Identifier: MIT

// Package bench: functional configuration for Driver.
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants and DefaultSizes),
//   - WithX constructors with strong validation (panic on nonsensical values).
package bench

import (
	"io"
	"os"
	"slices"

	"github.com/katalvlaran/linbench/timing"
	"github.com/rs/zerolog"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWarmup is the number of discarded empty timed calls made before
	// the first case.
	DefaultWarmup = 10

	// DefaultSeed seeds the PCG source behind FillRandom.
	DefaultSeed uint64 = 0x5eed
)

// DefaultSizes is the square matrix dimension list, in output order.
var DefaultSizes = []int{32, 64, 96, 128, 192, 256, 384, 512, 640, 768, 896, 1024}

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicSizesEmpty    = "bench: WithSizes: at least one size is required"
	panicSizeInvalid   = "bench: WithSizes: sizes must be > 0"
	panicWarmupInvalid = "bench: WithWarmup: warmup must be >= 0"
	panicOutputNil     = "bench: WithOutput: writer must be non-nil"
	panicHarnessNil    = "bench: WithHarness: harness must be non-nil"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective Driver configuration after applying setters.
type Options struct {
	sizes   []int           // non-empty, each > 0
	warmup  int             // >= 0
	out     io.Writer       // stdout by default
	logger  zerolog.Logger  // Nop by default
	harness *timing.Harness // non-nil
	seed    uint64
}

// WithSizes replaces the size list. The slice is copied.
// Panics if sizes is empty or contains a non-positive value.
func WithSizes(sizes ...int) Option {
	if len(sizes) == 0 {
		panic(panicSizesEmpty)
	}
	for _, n := range sizes {
		if n <= 0 {
			panic(panicSizeInvalid)
		}
	}
	cp := slices.Clone(sizes)

	return func(o *Options) { o.sizes = cp }
}

// WithWarmup sets the number of empty warm-up calls. Zero disables warm-up.
func WithWarmup(n int) Option {
	if n < 0 {
		panic(panicWarmupInvalid)
	}

	return func(o *Options) { o.warmup = n }
}

// WithOutput redirects the latency report (default os.Stdout).
func WithOutput(w io.Writer) Option {
	if w == nil {
		panic(panicOutputNil)
	}

	return func(o *Options) { o.out = w }
}

// WithLogger sets the diagnostic logger. The report itself never goes through
// the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// WithHarness replaces the measurement harness.
func WithHarness(h *timing.Harness) Option {
	if h == nil {
		panic(panicHarnessNil)
	}

	return func(o *Options) { o.harness = h }
}

// WithSeed sets the seed for random fills. Equal seeds give equal inputs.
func WithSeed(seed uint64) Option {
	return func(o *Options) { o.seed = seed }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		sizes:   slices.Clone(DefaultSizes),
		warmup:  DefaultWarmup,
		out:     os.Stdout,
		logger:  zerolog.Nop(),
		harness: timing.New(),
		seed:    DefaultSeed,
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
