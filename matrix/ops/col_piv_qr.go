// SPDX-License-Identifier: MIT

package ops

import (
	"math"

	"github.com/katalvlaran/linbench/matrix"
)

// tol3z is sqrt(machine epsilon): below it a downdated column norm is
// recomputed from scratch.
var tol3z = math.Sqrt(0x1p-52)

// ColPivQR is a reusable rank-revealing QR workspace with column pivoting:
// A·P = Q·R, |r(0,0)| ≥ |r(1,1)| ≥ ….
type ColPivQR struct {
	n    int
	qr   *matrix.Dense
	tau  []float64
	work []float64
	vn1  []float64 // partial column norms
	vn2  []float64 // norms at the last exact recomputation
	perm []int
}

// NewColPivQR allocates a workspace for n×n inputs.
func NewColPivQR(n int) (*ColPivQR, error) {
	qr, err := newWorkspace(opColPivQR, n)
	if err != nil {
		return nil, err
	}

	return &ColPivQR{
		n:    n,
		qr:   qr,
		tau:  make([]float64, n),
		work: make([]float64, n),
		vn1:  make([]float64, n),
		vn2:  make([]float64, n),
		perm: make([]int, n),
	}, nil
}

// Compute factors a into the workspace. a is never modified.
//
// Implementation:
//   - Stage 1: copy a, reset the permutation, compute all column norms.
//   - Stage 2: for each k move the column with the largest remaining norm to
//     position k, reduce it with a Householder reflector, apply the reflector
//     to the trailing columns.
//   - Stage 3: downdate the trailing norms; recompute a norm exactly when
//     cancellation makes the downdate unreliable.
//
// Complexity:
//   - Time O(4n³/3), Space O(1) beyond the workspace.
func (f *ColPivQR) Compute(a *matrix.Dense) error {
	if err := matrix.ValidateSquareOfSize(a, f.n); err != nil {
		return opsErrorf(opColPivQR, err)
	}
	if err := f.qr.CopyFrom(a); err != nil {
		return opsErrorf(opColPivQR, err)
	}

	d := f.qr.RawData()
	n := f.n
	for j := 0; j < n; j++ {
		f.perm[j] = j
		f.vn1[j] = colNorm(d, n, j, 0)
		f.vn2[j] = f.vn1[j]
	}

	for k := 0; k < n; k++ {
		p := k
		for j := k + 1; j < n; j++ {
			if f.vn1[j] > f.vn1[p] {
				p = j
			}
		}
		if p != k {
			swapCols(d, n, k, p)
			f.perm[k], f.perm[p] = f.perm[p], f.perm[k]
			f.vn1[k], f.vn1[p] = f.vn1[p], f.vn1[k]
			f.vn2[k], f.vn2[p] = f.vn2[p], f.vn2[k]
		}

		f.tau[k] = makeReflector(d, n, k)
		applyReflector(d, d, n, k, k+1, f.tau[k], f.work)

		for j := k + 1; j < n; j++ {
			if f.vn1[j] == 0 {
				continue
			}
			r := math.Abs(d[k*n+j]) / f.vn1[j]
			t := math.Max(1-r*r, 0)
			ratio := f.vn1[j] / f.vn2[j]
			if t*ratio*ratio <= tol3z {
				f.vn1[j] = colNorm(d, n, j, k+1)
				f.vn2[j] = f.vn1[j]
				continue
			}
			f.vn1[j] *= math.Sqrt(t)
		}
	}

	return nil
}

// colNorm returns the Euclidean norm of column j, rows from..n-1.
func colNorm(d []float64, n, j, from int) float64 {
	var ss float64
	for i := from; i < n; i++ {
		x := d[i*n+j]
		ss += x * x
	}

	return math.Sqrt(ss)
}

// QR returns the packed factor storage owned by the workspace.
func (f *ColPivQR) QR() *matrix.Dense { return f.qr }

// Perm returns the column permutation: column j of A·P is column Perm()[j] of A.
func (f *ColPivQR) Perm() []int { return f.perm }

// R returns a freshly allocated copy of the upper-triangular factor.
func (f *ColPivQR) R() *matrix.Dense {
	r, _ := matrix.NewSquare(f.n)
	upperOf(f.qr.RawData(), r.RawData(), f.n)

	return r
}

// Q returns a freshly allocated explicit orthogonal factor.
func (f *ColPivQR) Q() *matrix.Dense {
	q, _ := matrix.NewSquare(f.n)
	formQ(f.qr.RawData(), f.tau, q.RawData(), f.work, f.n)

	return q
}
