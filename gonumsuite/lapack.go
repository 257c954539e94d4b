// SPDX-License-Identifier: MIT

package gonumsuite

import (
	"math/rand/v2"

	"github.com/katalvlaran/linbench/bench"
	"github.com/katalvlaran/linbench/matrix"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	lapackgonum "gonum.org/v1/gonum/lapack/gonum"
	"gonum.org/v1/gonum/lapack/lapack64"
)

const (
	tagCholesky = "cholesky"
	tagLU       = "lu"
	tagQR       = "qr"
	tagColPivQR = "col piv qr"
)

// factorization is the copy-then-factor state shared by every LAPACK case:
// Orig is never written, Work is overwritten by Compute.
type factorization struct {
	Orig, Work blas64.General
}

func newFactorization(tag string, n int, fill bench.Fill, rnd *rand.Rand) (factorization, error) {
	orig, err := newGeneral(n, fill, rnd)
	if err != nil {
		return factorization{}, suiteErrorf(tag, err)
	}

	return factorization{Orig: orig, Work: cloneGeneral(orig)}, nil
}

// reset restores Work from Orig.
func (f *factorization) reset() { copy(f.Work.Data, f.Orig.Data) }

// Cholesky recomputes A = UᵀU with lapack64.Potrf. The upper triangle of
// Work holds U after Compute.
type Cholesky struct {
	factorization
}

// NewCholesky allocates a size-n workspace. The input must be symmetric
// positive definite for Compute to succeed; FillIdentity is.
func NewCholesky(n int, fill bench.Fill, rnd *rand.Rand) (*Cholesky, error) {
	f, err := newFactorization(tagCholesky, n, fill, rnd)
	if err != nil {
		return nil, err
	}

	return &Cholesky{factorization: f}, nil
}

// Compute refactors the original input.
// Errors: matrix.ErrNotPositiveDefinite.
func (c *Cholesky) Compute() error {
	c.reset()
	n := c.Work.Rows
	_, ok := lapack64.Potrf(blas64.Symmetric{Uplo: blas.Upper, N: n, Stride: c.Work.Stride, Data: c.Work.Data})
	if !ok {
		return suiteErrorf(tagCholesky, matrix.ErrNotPositiveDefinite)
	}

	return nil
}

// PartialPivLU recomputes P·A = L·U with lapack64.Getrf. A singular input
// is factored anyway; exact singularity is not an error here.
type PartialPivLU struct {
	factorization
	Pivots []int
}

// NewPartialPivLU allocates a size-n workspace.
func NewPartialPivLU(n int, fill bench.Fill, rnd *rand.Rand) (*PartialPivLU, error) {
	f, err := newFactorization(tagLU, n, fill, rnd)
	if err != nil {
		return nil, err
	}

	return &PartialPivLU{factorization: f, Pivots: make([]int, n)}, nil
}

// Compute refactors the original input.
func (lu *PartialPivLU) Compute() error {
	lu.reset()
	lapack64.Getrf(lu.Work, lu.Pivots)

	return nil
}

// QR recomputes A = Q·R with lapack64.Geqrf. Work holds R above the diagonal
// and the Householder vectors below it; Tau holds their scales.
type QR struct {
	factorization
	Tau     []float64
	scratch []float64
}

// NewQR allocates a size-n workspace, sizing the LAPACK scratch with a
// workspace query.
func NewQR(n int, fill bench.Fill, rnd *rand.Rand) (*QR, error) {
	f, err := newFactorization(tagQR, n, fill, rnd)
	if err != nil {
		return nil, err
	}
	q := &QR{factorization: f, Tau: make([]float64, n)}
	query := make([]float64, 1)
	lapack64.Geqrf(q.Work, q.Tau, query, -1)
	q.scratch = make([]float64, max(int(query[0]), n, 1))

	return q, nil
}

// Compute refactors the original input.
func (q *QR) Compute() error {
	q.reset()
	lapack64.Geqrf(q.Work, q.Tau, q.scratch, len(q.scratch))

	return nil
}

// ColPivQR recomputes A·P = Q·R with Dgeqp3 from the gonum LAPACK
// implementation. After Compute, Perm[j] is the original index of column j.
type ColPivQR struct {
	factorization
	Tau     []float64
	Perm    []int
	scratch []float64
	impl    lapackgonum.Implementation
}

// NewColPivQR allocates a size-n workspace. Dgeqp3 needs at least 3n+1
// scratch elements; a workspace query may ask for more.
func NewColPivQR(n int, fill bench.Fill, rnd *rand.Rand) (*ColPivQR, error) {
	f, err := newFactorization(tagColPivQR, n, fill, rnd)
	if err != nil {
		return nil, err
	}
	q := &ColPivQR{factorization: f, Tau: make([]float64, n), Perm: make([]int, n)}
	q.freePivots()
	query := make([]float64, 1)
	q.impl.Dgeqp3(n, n, q.Work.Data, q.Work.Stride, q.Perm, q.Tau, query, -1)
	q.scratch = make([]float64, max(int(query[0]), 3*n+1))

	return q, nil
}

// freePivots marks every column as free to move, which Dgeqp3 reads on entry.
func (q *ColPivQR) freePivots() {
	for j := range q.Perm {
		q.Perm[j] = -1
	}
}

// Compute refactors the original input.
func (q *ColPivQR) Compute() error {
	q.reset()
	q.freePivots()
	n := q.Work.Rows
	q.impl.Dgeqp3(n, n, q.Work.Data, q.Work.Stride, q.Perm, q.Tau, q.scratch, len(q.scratch))

	return nil
}
