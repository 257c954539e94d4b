// SPDX-License-Identifier: MIT

package ops

import "github.com/katalvlaran/linbench/matrix"

// HouseholderQR is a reusable QR factorization workspace using Householder
// reflections: A = Q·R.
type HouseholderQR struct {
	n    int
	qr   *matrix.Dense
	tau  []float64
	work []float64
}

// NewHouseholderQR allocates a workspace for n×n inputs.
func NewHouseholderQR(n int) (*HouseholderQR, error) {
	qr, err := newWorkspace(opQR, n)
	if err != nil {
		return nil, err
	}

	return &HouseholderQR{n: n, qr: qr, tau: make([]float64, n), work: make([]float64, n)}, nil
}

// Compute factors a into the workspace. a is never modified.
//
// Implementation:
//   - Stage 1: copy a into QR storage.
//   - Stage 2: for k = 0..n-1 build the reflector for column k and apply it
//     to the trailing columns (w = τ·vᵀA, A −= v·w, one pass over rows each).
//
// Complexity:
//   - Time O(4n³/3), Space O(1) beyond the workspace.
func (f *HouseholderQR) Compute(a *matrix.Dense) error {
	if err := matrix.ValidateSquareOfSize(a, f.n); err != nil {
		return opsErrorf(opQR, err)
	}
	if err := f.qr.CopyFrom(a); err != nil {
		return opsErrorf(opQR, err)
	}

	d := f.qr.RawData()
	for k := 0; k < f.n; k++ {
		f.tau[k] = makeReflector(d, f.n, k)
		applyReflector(d, d, f.n, k, k+1, f.tau[k], f.work)
	}

	return nil
}

// QR returns the packed factor storage owned by the workspace.
func (f *HouseholderQR) QR() *matrix.Dense { return f.qr }

// Tau returns the reflector scalars.
func (f *HouseholderQR) Tau() []float64 { return f.tau }

// R returns a freshly allocated copy of the upper-triangular factor.
func (f *HouseholderQR) R() *matrix.Dense {
	r, _ := matrix.NewSquare(f.n)
	upperOf(f.qr.RawData(), r.RawData(), f.n)

	return r
}

// Q returns a freshly allocated explicit orthogonal factor.
func (f *HouseholderQR) Q() *matrix.Dense {
	q, _ := matrix.NewSquare(f.n)
	formQ(f.qr.RawData(), f.tau, q.RawData(), f.work, f.n)

	return q
}
