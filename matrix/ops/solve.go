// SPDX-License-Identifier: MIT

package ops

import "github.com/katalvlaran/linbench/matrix"

// validateSolve checks that t is square and b has t.Rows() rows.
func validateSolve(tag string, t, b *matrix.Dense) error {
	if err := matrix.ValidateSquare(t); err != nil {
		return opsErrorf(tag, err)
	}
	if err := matrix.ValidateNotNil(b); err != nil {
		return opsErrorf(tag, err)
	}
	if b.Rows() != t.Rows() {
		return opsErrorf(tag, matrix.ErrDimensionMismatch)
	}

	return nil
}

// SolveUnitLowerInPlace overwrites b with X solving L·X = B, where L is the
// strictly lower triangle of l with an implicit unit diagonal. The diagonal
// and upper triangle of l are never read.
//
// Implementation:
//   - Forward substitution by rows: row_i(X) = row_i(B) − Σ_{k<i} l(i,k)·row_k(X).
//   - Inner loops stream whole rows of B, which are contiguous.
//
// Behavior highlights:
//   - No allocation; repeated calls keep solving against the previous result,
//     which is still a valid system of the same cost.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (l), ErrDimensionMismatch (b rows).
//
// Complexity:
//   - Time O(n²·m) for b of shape n×m, Space O(1).
func SolveUnitLowerInPlace(l, b *matrix.Dense) error {
	if err := validateSolve(opSolveUnitLower, l, b); err != nil {
		return err
	}

	n := l.Rows()
	ld := l.RawData()
	for i := 1; i < n; i++ {
		bi := b.Row(i)
		for k, lik := range ld[i*n : i*n+i] {
			bk := b.Row(k)
			for j := range bi {
				bi[j] -= lik * bk[j]
			}
		}
	}

	return nil
}

// SolveUpperInPlace overwrites b with X solving U·X = B, where U is the upper
// triangle of u including its diagonal.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch.
//   - ErrSingular when a diagonal entry is exactly zero; b is then partially
//     overwritten.
//
// Complexity:
//   - Time O(n²·m), Space O(1).
func SolveUpperInPlace(u, b *matrix.Dense) error {
	if err := validateSolve(opSolveUpper, u, b); err != nil {
		return err
	}

	n := u.Rows()
	ud := u.RawData()
	for i := n - 1; i >= 0; i-- {
		bi := b.Row(i)
		ui := ud[i*n : (i+1)*n]
		for k := i + 1; k < n; k++ {
			uik := ui[k]
			bk := b.Row(k)
			for j := range bi {
				bi[j] -= uik * bk[j]
			}
		}
		d := ui[i]
		if d == 0 {
			return opsErrorf(opSolveUpper, matrix.ErrSingular)
		}
		inv := 1 / d
		for j := range bi {
			bi[j] *= inv
		}
	}

	return nil
}
