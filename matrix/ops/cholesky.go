// SPDX-License-Identifier: MIT

package ops

import (
	"math"

	"github.com/katalvlaran/linbench/matrix"
)

// Cholesky is a reusable LLᵀ factorization workspace for n×n symmetric
// positive definite matrices.
type Cholesky struct {
	n  int
	l  *matrix.Dense
	ok bool
}

// NewCholesky allocates a workspace for n×n inputs.
// Errors: ErrInvalidDimensions when n <= 0.
func NewCholesky(n int) (*Cholesky, error) {
	l, err := newWorkspace(opCholesky, n)
	if err != nil {
		return nil, err
	}

	return &Cholesky{n: n, l: l}, nil
}

// Compute factors a = L·Lᵀ into the workspace, reading only the lower
// triangle of a. a itself is never modified.
//
// Implementation:
//   - Stage 1: copy a into L storage (no allocation).
//   - Stage 2: Cholesky–Banachiewicz, row by row:
//     l(i,j) = (a(i,j) − Σ_{k<j} l(i,k)·l(j,k)) / l(j,j) for j < i,
//     l(i,i) = sqrt(a(i,i) − Σ_{k<i} l(i,k)²).
//   - Stage 3: zero the strict upper triangle.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch (size differs from n).
//   - ErrNotPositiveDefinite when a pivot is ≤ 0; the workspace then holds a
//     partial factor and OK reports false.
//
// Complexity:
//   - Time O(n³/3), Space O(1) beyond the workspace.
func (c *Cholesky) Compute(a *matrix.Dense) error {
	c.ok = false
	if err := matrix.ValidateSquareOfSize(a, c.n); err != nil {
		return opsErrorf(opCholesky, err)
	}
	if err := c.l.CopyFrom(a); err != nil {
		return opsErrorf(opCholesky, err)
	}

	for i := 0; i < c.n; i++ {
		li := c.l.Row(i)
		for j := 0; j <= i; j++ {
			lj := c.l.Row(j)
			s := li[j]
			for k := 0; k < j; k++ {
				s -= li[k] * lj[k]
			}
			if j < i {
				li[j] = s / lj[j]
				continue
			}
			if s <= 0 || math.IsNaN(s) {
				return opsErrorf(opCholesky, matrix.ErrNotPositiveDefinite)
			}
			li[i] = math.Sqrt(s)
		}
		clear(li[i+1:])
	}
	c.ok = true

	return nil
}

// OK reports whether the last Compute succeeded.
func (c *Cholesky) OK() bool { return c.ok }

// L returns the lower-triangular factor storage. The matrix is owned by the
// workspace and overwritten by the next Compute.
func (c *Cholesky) L() *matrix.Dense { return c.l }
