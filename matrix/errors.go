// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set shared with matrix/ops.
// Algorithms return these sentinels (optionally wrapped with an operation tag
// via fmt.Errorf("%s: %w", tag, err)) and tests match them with errors.Is.
// Panics are reserved for programmer errors in option constructors.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Mul where a.Cols != b.Rows, or a workspace built for another size.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf value was passed to Set while the
	// matrix validates finite values.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrSingular is returned when an exactly zero pivot makes a solve impossible.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNotPositiveDefinite is returned by Cholesky when a non-positive
	// diagonal appears during factorization.
	ErrNotPositiveDefinite = errors.New("matrix: matrix is not positive definite")
)
