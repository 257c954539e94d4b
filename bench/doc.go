// SPDX-License-Identifier: MIT

// Package bench runs an ordered table of dense linear-algebra cases over a
// fixed list of square sizes and prints one latency line per size.
//
// A Suite is plain data: each Case names the operation, the input fill and a
// Builder that allocates the operands for one size and returns a reusable
// timing.Op. Driver.Run walks the table, calibrates each Op with a
// timing.Harness and writes the output through report.Printer:
//
//	gemm
//	       4.1µs
//	      31.2µs
//	...
//
// The same table layout (Cases) is shared by every backend, so outputs of
// different backends line up row for row.
package bench
