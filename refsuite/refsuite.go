// SPDX-License-Identifier: MIT

// Package refsuite benchmarks the pure-Go reference kernels of matrix and
// matrix/ops through the same case table as gonumsuite, so the two outputs
// compare line for line.
package refsuite

import (
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/linbench/bench"
	"github.com/katalvlaran/linbench/matrix"
	"github.com/katalvlaran/linbench/matrix/ops"
	"github.com/katalvlaran/linbench/timing"
)

// Name identifies this backend in logs.
const Name = "reference"

// Input builds one n×n matrix initialized per fill.
// Errors: matrix.ErrInvalidDimensions, ErrUnknownFill.
func Input(n int, fill bench.Fill, rnd *rand.Rand) (*matrix.Dense, error) {
	m, err := matrix.NewSquare(n)
	if err != nil {
		return nil, err
	}
	switch fill {
	case bench.FillZero:
	case bench.FillIdentity:
		if err = m.Identity(); err != nil {
			return nil, err
		}
	case bench.FillRandom:
		m.FillRandom(rnd)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFill, fill)
	}

	return m, nil
}

// inputs builds k independent inputs of the same size and fill.
func inputs(k, n int, fill bench.Fill, rnd *rand.Rand) ([]*matrix.Dense, error) {
	out := make([]*matrix.Dense, k)
	for i := range out {
		m, err := Input(n, fill, rnd)
		if err != nil {
			return nil, err
		}
		out[i] = m
	}

	return out, nil
}

func buildGemm(n int, fill bench.Fill, rnd *rand.Rand) (timing.Op, error) {
	m, err := inputs(3, n, fill, rnd)
	if err != nil {
		return nil, err
	}
	a, b, c := m[0], m[1], m[2]

	return func() error { return matrix.MulAdd(c, a, b) }, nil
}

func buildTrsm(n int, fill bench.Fill, rnd *rand.Rand) (timing.Op, error) {
	m, err := inputs(2, n, fill, rnd)
	if err != nil {
		return nil, err
	}
	l, b := m[0], m[1]

	return func() error { return ops.SolveUnitLowerInPlace(l, b) }, nil
}

// factorizer is any ops workspace.
type factorizer interface {
	Compute(a *matrix.Dense) error
}

// buildFactorization pairs a fresh workspace with one input; the op
// recomputes the factorization of that input.
func buildFactorization[W factorizer](newW func(int) (W, error)) bench.Builder {
	return func(n int, fill bench.Fill, rnd *rand.Rand) (timing.Op, error) {
		a, err := Input(n, fill, rnd)
		if err != nil {
			return nil, err
		}
		w, err := newW(n)
		if err != nil {
			return nil, err
		}

		return func() error { return w.Compute(a) }, nil
	}
}

// Builders returns the reference builder for every operation.
func Builders() bench.Builders {
	return bench.Builders{
		Gemm:         buildGemm,
		Trsm:         buildTrsm,
		Cholesky:     buildFactorization(ops.NewCholesky),
		PartialPivLU: buildFactorization(ops.NewPartialPivLU),
		FullPivLU:    buildFactorization(ops.NewFullPivLU),
		QR:           buildFactorization(ops.NewHouseholderQR),
		ColPivQR:     buildFactorization(ops.NewColPivQR),
		Inverse:      buildFactorization(ops.NewInverter),
	}
}

// Suite returns the full case table on the reference kernels.
func Suite() bench.Suite {
	return bench.Suite{Name: Name, Cases: bench.Cases(Builders())}
}
