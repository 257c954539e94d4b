// SPDX-License-Identifier: MIT

// Package ops provides in-place dense factorizations and triangular solves for
// matrix.Dense.
//
// Every factorization is a reusable workspace sized once by its constructor:
//
//	f, _ := ops.NewPartialPivLU(n)
//	for ... {
//		_ = f.Compute(a) // copy a into f's storage, factor there; no allocation
//	}
//
// This lets a caller time steady-state recomputation without paying for
// allocation on each call. Factors are stored packed in LAPACK layout (unit L
// below the diagonal, U or R on and above it, Householder vectors below the
// diagonal with the scalar factors in a separate tau slice).
//
// Numeric policy:
//   - LU variants never fail on singular input: a zero pivot column is
//     skipped and reported through Singular / Rank.
//   - Cholesky fails with matrix.ErrNotPositiveDefinite on a non-positive pivot.
//   - Solves fail with matrix.ErrSingular on an exactly zero diagonal.
package ops

import (
	"fmt"

	"github.com/katalvlaran/linbench/matrix"
)

// Operation tags for error wrapping.
const (
	opSolveUnitLower = "SolveUnitLowerInPlace"
	opSolveUpper     = "SolveUpperInPlace"
	opCholesky       = "Cholesky"
	opPartialPivLU   = "PartialPivLU"
	opFullPivLU      = "FullPivLU"
	opQR             = "HouseholderQR"
	opColPivQR       = "ColPivQR"
	opInverse        = "Inverse"
)

// opsErrorf wraps err with an operation tag. Use only when err != nil.
func opsErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// newWorkspace allocates the n×n storage shared by every factorization.
func newWorkspace(tag string, n int) (*matrix.Dense, error) {
	d, err := matrix.NewSquare(n)
	if err != nil {
		return nil, opsErrorf(tag, err)
	}

	return d, nil
}
