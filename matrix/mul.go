// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opMulAdd = "MulAdd"
	opMul    = "Mul"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MulAdd accumulates C += A·B in place.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(c, a, b).
//   - Stage 2: i→k→j loop: for each a(i,k), axpy row k of B into row i of C.
//     Both inner operands are contiguous rows in row-major storage.
//
// Behavior highlights:
//   - No allocation. A and B are read-only; C must not alias A or B.
//   - Zero a(i,k) entries are not skipped, so cost is independent of values.
//
// Complexity:
//   - Time O(r*k*c), Space O(1).
func MulAdd(c, a, b *Dense) error {
	if err := ValidateMulCompatible(c, a, b); err != nil {
		return matrixErrorf(opMulAdd, err)
	}

	inner := a.c
	for i := 0; i < a.r; i++ {
		ci := c.data[i*c.c : (i+1)*c.c]
		ai := a.data[i*inner : (i+1)*inner]
		for k, aik := range ai {
			bk := b.data[k*b.c : (k+1)*b.c]
			for j, bkj := range bk {
				ci[j] += aik * bkj
			}
		}
	}

	return nil
}

// Mul returns a freshly allocated A·B.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if a.c != b.r {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}
	out, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err = MulAdd(out, a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return out, nil
}

// Transpose returns a freshly allocated transpose of m.
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("Transpose", err)
	}
	out, err := NewDense(m.c, m.r)
	if err != nil {
		return nil, matrixErrorf("Transpose", err)
	}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return out, nil
}
