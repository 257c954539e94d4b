// SPDX-License-Identifier: MIT

// Package linbench measures single-call latencies of dense float64 linear
// algebra over a fixed ladder of square matrix sizes.
//
// Layout:
//
//	timing/      self-calibrating harness: one timed call, or one batch long
//	             enough to beat clock granularity
//	report/      fixed-width "%10.3g" + unit latency lines
//	bench/       case table, driver, environment banner
//	gonumsuite/  cases on gonum BLAS/LAPACK
//	refsuite/    cases on the in-tree reference kernels
//	matrix/      row-major Dense storage; matrix/ops reference factorizations
//	cmd/         linbench (gonum) and linbench-ref (reference)
//
// Each case prints its name followed by one line per size:
//
//	gemm
//	      3.85µs
//	      29.1µs
//	...
package linbench
