// SPDX-License-Identifier: MIT

package gonumsuite

import (
	"math"
	"math/rand/v2"

	"github.com/katalvlaran/linbench/bench"
	"gonum.org/v1/gonum/blas/blas64"
)

const tagFullPivLU = "lu full piv"

// FullPivLU recomputes P·A·Q = L·U with complete pivoting, built from level-1
// and level-2 BLAS. LAPACK's Dgetc2 perturbs tiny pivots, which changes the
// factorization of rank-deficient input; this kernel stops at the first
// exactly-zero pivot and reports the rank instead.
//
// After Compute, RowPiv[k] and ColPiv[k] are the row and column swapped
// with k at step k (LAPACK ipiv convention).
type FullPivLU struct {
	factorization
	RowPiv, ColPiv []int
	rank           int
}

// NewFullPivLU allocates a size-n workspace.
func NewFullPivLU(n int, fill bench.Fill, rnd *rand.Rand) (*FullPivLU, error) {
	f, err := newFactorization(tagFullPivLU, n, fill, rnd)
	if err != nil {
		return nil, err
	}

	return &FullPivLU{factorization: f, RowPiv: make([]int, n), ColPiv: make([]int, n)}, nil
}

// Rank returns the number of non-zero pivots found by the last Compute.
func (lu *FullPivLU) Rank() int { return lu.rank }

// Compute refactors the original input.
//
// Implementation:
//   - Stage 1: restore Work; identity pivots.
//   - Stage 2: per step k, locate the largest |a(i,j)| in the trailing block
//     with one Iamax per row, swap it into (k,k) with a row Swap and a
//     strided column Swap.
//   - Stage 3: Scal the column below the pivot by 1/pivot, then a rank-1 Ger
//     update of the trailing block.
//
// Complexity:
//   - Time O(n³) plus O(n³) pivot search, Space O(1).
func (lu *FullPivLU) Compute() error {
	lu.reset()
	a := lu.Work
	n, s := a.Rows, a.Stride
	for k := range lu.RowPiv {
		lu.RowPiv[k], lu.ColPiv[k] = k, k
	}
	lu.rank = n

	for k := 0; k < n; k++ {
		pr, pc, best := k, k, -1.0
		for i := k; i < n; i++ {
			row := blas64.Vector{N: n - k, Inc: 1, Data: a.Data[i*s+k:]}
			j := blas64.Iamax(row)
			if v := math.Abs(row.Data[j]); v > best {
				pr, pc, best = i, k+j, v
			}
		}
		lu.RowPiv[k], lu.ColPiv[k] = pr, pc
		if best == 0 {
			lu.rank = k
			return nil
		}

		if pr != k {
			blas64.Swap(
				blas64.Vector{N: n, Inc: 1, Data: a.Data[k*s:]},
				blas64.Vector{N: n, Inc: 1, Data: a.Data[pr*s:]},
			)
		}
		if pc != k {
			blas64.Swap(
				blas64.Vector{N: n, Inc: s, Data: a.Data[k:]},
				blas64.Vector{N: n, Inc: s, Data: a.Data[pc:]},
			)
		}

		m := n - k - 1
		if m == 0 {
			break
		}
		col := blas64.Vector{N: m, Inc: s, Data: a.Data[(k+1)*s+k:]}
		blas64.Scal(1/a.Data[k*s+k], col)
		blas64.Ger(-1,
			col,
			blas64.Vector{N: m, Inc: 1, Data: a.Data[k*s+k+1:]},
			blas64.General{Rows: m, Cols: m, Stride: s, Data: a.Data[(k+1)*s+k+1:]},
		)
	}

	return nil
}
