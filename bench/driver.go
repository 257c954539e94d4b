// SPDX-License-Identifier: MIT

package bench

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/google/uuid"
	"github.com/katalvlaran/linbench/report"
	"github.com/katalvlaran/linbench/timing"
	"github.com/rs/zerolog"
)

// ErrNoBuilder is returned when a case row carries a nil Builder.
var ErrNoBuilder = errors.New("bench: case has no builder")

// Result holds the per-call latencies of one case, aligned with Sizes.
type Result struct {
	Case    string
	Sizes   []int
	Seconds []float64
}

// Driver runs suites with a fixed configuration.
type Driver struct {
	opts Options
}

// New returns a Driver configured by opts over the package defaults.
func New(opts ...Option) *Driver {
	return &Driver{opts: gatherOptions(opts...)}
}

// Sizes returns a copy of the configured size list.
func (d *Driver) Sizes() []int { return slices.Clone(d.opts.sizes) }

// noop is the warm-up body.
func noop() error { return nil }

// Run benchmarks every case of s over the configured sizes.
//
// Implementation:
//   - Stage 1: warm-up, the configured number of discarded MeasureOnce(noop).
//     Log events of the run carry the suite name and a fresh run id.
//   - Stage 2: per case, write the header; per size, Build → MeasureStable →
//     write one line. The case block is flushed before the next case starts.
//   - Stage 3: ctx is checked before every size; a cancelled run flushes what
//     was printed and returns ctx.Err() with the partial results.
//
// Errors:
//   - ErrNoBuilder, builder errors, op errors and write errors abort the run,
//     wrapped with the case name and size.
func (d *Driver) Run(ctx context.Context, s Suite) ([]Result, error) {
	log := d.opts.logger.With().Str("suite", s.Name).Str("run", uuid.NewString()).Logger()
	h := d.opts.harness
	p := report.NewPrinter(d.opts.out)
	rnd := rand.New(rand.NewPCG(d.opts.seed, d.opts.seed^0x9e3779b97f4a7c15))

	for i := 0; i < d.opts.warmup; i++ {
		if _, err := h.MeasureOnce(noop); err != nil {
			return nil, fmt.Errorf("bench: warmup: %w", err)
		}
	}
	log.Info().Int("cases", len(s.Cases)).Ints("sizes", d.opts.sizes).Msg("benchmark started")

	results := make([]Result, 0, len(s.Cases))
	for _, c := range s.Cases {
		res, err := d.runCase(ctx, log, p, h, rnd, c)
		if res.Case != "" {
			results = append(results, res)
		}
		if ferr := p.Flush(); ferr != nil && err == nil {
			err = ferr
		}
		if err != nil {
			return results, err
		}
	}
	log.Info().Msg("benchmark finished")

	return results, nil
}

// runCase prints and measures one case row over all sizes.
func (d *Driver) runCase(ctx context.Context, log zerolog.Logger, p *report.Printer, h *timing.Harness, rnd *rand.Rand, c Case) (Result, error) {
	if c.Build == nil {
		return Result{}, fmt.Errorf("%s: %w", c.Name, ErrNoBuilder)
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err := p.Header(c.Name); err != nil {
		return Result{}, err
	}

	res := Result{
		Case:    c.Name,
		Sizes:   make([]int, 0, len(d.opts.sizes)),
		Seconds: make([]float64, 0, len(d.opts.sizes)),
	}
	for _, n := range d.opts.sizes {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		op, err := c.Build(n, c.Fill, rnd)
		if err != nil {
			return res, fmt.Errorf("%s n=%d: build: %w", c.Name, n, err)
		}
		sample, err := h.Calibrate(op)
		if err != nil {
			return res, fmt.Errorf("%s n=%d: %w", c.Name, n, err)
		}
		log.Debug().
			Str("case", c.Name).
			Int("n", n).
			Float64("seconds", sample.Seconds).
			Uint64("repeats", sample.Repeats).
			Msg("measured")
		if err = p.Duration(sample.Seconds); err != nil {
			return res, err
		}
		res.Sizes = append(res.Sizes, n)
		res.Seconds = append(res.Seconds, sample.Seconds)
	}

	return res, nil
}
