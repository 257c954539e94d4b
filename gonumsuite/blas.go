// SPDX-License-Identifier: MIT

package gonumsuite

import (
	"math/rand/v2"

	"github.com/katalvlaran/linbench/bench"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
)

const (
	tagGemm = "gemm"
	tagTrsm = "trsm"
)

// Gemm accumulates C += A·B. C grows on every call; the cost does not
// depend on the values.
type Gemm struct {
	A, B, C blas64.General
}

// NewGemm allocates A, B and C of size n, each filled per fill.
func NewGemm(n int, fill bench.Fill, rnd *rand.Rand) (*Gemm, error) {
	var (
		g   Gemm
		err error
	)
	for _, m := range []*blas64.General{&g.A, &g.B, &g.C} {
		if *m, err = newGeneral(n, fill, rnd); err != nil {
			return nil, suiteErrorf(tagGemm, err)
		}
	}

	return &g, nil
}

// Compute runs one C += A·B.
func (g *Gemm) Compute() error {
	blas64.Gemm(blas.NoTrans, blas.NoTrans, 1, g.A, g.B, 1, g.C)

	return nil
}

// Trsm solves L·X = B in place, L unit lower triangular. Only the strict
// lower part of L is read. Repeated calls keep solving the already-solved
// right-hand side, which costs the same.
type Trsm struct {
	L blas64.Triangular
	B blas64.General
}

// NewTrsm allocates L and B of size n, each filled per fill.
func NewTrsm(n int, fill bench.Fill, rnd *rand.Rand) (*Trsm, error) {
	l, err := newGeneral(n, fill, rnd)
	if err != nil {
		return nil, suiteErrorf(tagTrsm, err)
	}
	b, err := newGeneral(n, fill, rnd)
	if err != nil {
		return nil, suiteErrorf(tagTrsm, err)
	}

	return &Trsm{
		L: blas64.Triangular{Uplo: blas.Lower, Diag: blas.Unit, N: n, Stride: n, Data: l.Data},
		B: b,
	}, nil
}

// Compute runs one B ← L⁻¹·B.
func (t *Trsm) Compute() error {
	blas64.Trsm(blas.Left, blas.NoTrans, 1, t.L, t.B)

	return nil
}
