// SPDX-License-Identifier: MIT

package ops

import (
	"math"

	"github.com/katalvlaran/linbench/matrix"
)

// PartialPivLU is a reusable LU factorization workspace with row pivoting:
// P·A = L·U, L unit lower triangular, U upper triangular.
type PartialPivLU struct {
	n        int
	lu       *matrix.Dense
	piv      []int // row k was swapped with row piv[k], applied in order
	singular bool
}

// NewPartialPivLU allocates a workspace for n×n inputs.
func NewPartialPivLU(n int) (*PartialPivLU, error) {
	lu, err := newWorkspace(opPartialPivLU, n)
	if err != nil {
		return nil, err
	}

	return &PartialPivLU{n: n, lu: lu, piv: make([]int, n)}, nil
}

// Compute factors a into the workspace. a is never modified.
//
// Implementation:
//   - Stage 1: copy a into LU storage.
//   - Stage 2: for each column k pick the row p ≥ k with the largest |a(p,k)|,
//     swap rows k and p, then eliminate below the pivot with a rank-1 update
//     of the trailing rows.
//
// Behavior highlights:
//   - An exactly zero pivot column is left as is and marks the factorization
//     Singular; Compute still succeeds (the factors are degenerate).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(2n³/3), Space O(1) beyond the workspace.
func (f *PartialPivLU) Compute(a *matrix.Dense) error {
	if err := matrix.ValidateSquareOfSize(a, f.n); err != nil {
		return opsErrorf(opPartialPivLU, err)
	}
	if err := f.lu.CopyFrom(a); err != nil {
		return opsErrorf(opPartialPivLU, err)
	}

	f.singular = false
	d := f.lu.RawData()
	n := f.n
	for k := 0; k < n; k++ {
		p, best := k, math.Abs(d[k*n+k])
		for i := k + 1; i < n; i++ {
			if v := math.Abs(d[i*n+k]); v > best {
				p, best = i, v
			}
		}
		f.piv[k] = p
		if p != k {
			swapRows(d, n, k, p)
		}
		if best == 0 {
			f.singular = true
			continue
		}
		eliminate(d, n, k)
	}

	return nil
}

// Singular reports whether the last Compute met an exactly zero pivot.
func (f *PartialPivLU) Singular() bool { return f.singular }

// LU returns the packed factor storage owned by the workspace.
func (f *PartialPivLU) LU() *matrix.Dense { return f.lu }

// Pivot returns the row interchanges: row k was swapped with row Pivot()[k],
// for k = 0..n-1 in order.
func (f *PartialPivLU) Pivot() []int { return f.piv }

// Solve overwrites b with X solving A·X = B using the last factorization.
// Errors: ErrDimensionMismatch, ErrSingular.
func (f *PartialPivLU) Solve(b *matrix.Dense) error {
	if err := validateSolve(opPartialPivLU, f.lu, b); err != nil {
		return err
	}
	bd := b.RawData()
	m := b.Cols()
	for k, p := range f.piv {
		if p != k {
			swapRows(bd, m, k, p)
		}
	}
	if err := SolveUnitLowerInPlace(f.lu, b); err != nil {
		return opsErrorf(opPartialPivLU, err)
	}
	if err := SolveUpperInPlace(f.lu, b); err != nil {
		return opsErrorf(opPartialPivLU, err)
	}

	return nil
}

// swapRows exchanges rows i and j of a row-major buffer with row length n.
func swapRows(d []float64, n, i, j int) {
	ri := d[i*n : (i+1)*n]
	rj := d[j*n : (j+1)*n]
	for c := range ri {
		ri[c], rj[c] = rj[c], ri[c]
	}
}

// swapCols exchanges columns i and j of a row-major n-column buffer.
func swapCols(d []float64, n, i, j int) {
	for r := 0; r < len(d); r += n {
		d[r+i], d[r+j] = d[r+j], d[r+i]
	}
}

// eliminate scales column k below a non-zero pivot into multipliers and
// applies the rank-1 update to the trailing (n-k-1)×(n-k-1) block.
func eliminate(d []float64, n, k int) {
	rk := d[k*n : (k+1)*n]
	inv := 1 / rk[k]
	for i := k + 1; i < n; i++ {
		ri := d[i*n : (i+1)*n]
		m := ri[k] * inv
		ri[k] = m
		for j := k + 1; j < n; j++ {
			ri[j] -= m * rk[j]
		}
	}
}
