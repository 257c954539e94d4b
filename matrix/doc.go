// SPDX-License-Identifier: MIT

// Package matrix provides the dense storage used by the in-tree reference
// kernels (see matrix/ops).
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix in one flat slice (offset i*cols + j),
//     with bounds-checked At/Set and direct RawData access for kernels.
//   - Fill helpers (Zero, Identity, FillRandom) matching the input
//     initializations used by the benchmark cases.
//   - MulAdd / Mul: C += A·B with an i→k→j loop order over contiguous rows.
//   - Central validators and sentinel errors shared with matrix/ops.
//
// All kernels are allocation-free on their hot path; allocation happens only in
// constructors, so a benchmark can build its operands once and time the kernel
// alone.
package matrix
