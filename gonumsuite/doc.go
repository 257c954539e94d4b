// SPDX-License-Identifier: MIT

// Package gonumsuite benchmarks the pure-Go gonum backend.
//
// Every case owns a workspace allocated once per size: the inputs, an
// untouched copy of them where the operation is a factorization, and any
// LAPACK scratch space sized by a workspace query. Compute never allocates
// except where gonum itself does (mat.Dense.Inverse).
//
// Layout follows gonum: row-major blas64.General with Stride == Cols.
//
//	case                     kernel
//	gemm                     blas64.Gemm, C += A·B
//	trsm                     blas64.Trsm, left, unit lower
//	triangular inverse       same as trsm
//	cholesky decomposition   lapack64.Potrf
//	lu partial piv           lapack64.Getrf
//	lu full piv              blas64 Iamax/Swap/Scal/Ger
//	qr                       lapack64.Geqrf
//	col piv qr               gonum.Implementation.Dgeqp3
//	inverse                  mat.Dense.Inverse
package gonumsuite
