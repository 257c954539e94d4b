// SPDX-License-Identifier: MIT
// Package ops_test contains test helpers
//
// Purpose:
//   - Deterministic fixtures (seeded PCG) and factor reconstruction helpers.
package ops_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/linbench/matrix"
	"github.com/stretchr/testify/require"
)

// tol is the reconstruction tolerance for the small sizes used in tests.
const tol = 1e-9

// testSizes cover 1×1, tiny, odd and blocked-looking sizes.
var testSizes = []int{1, 2, 5, 16, 33}

// randDense returns an n×n matrix with entries in [-1, 1) from seed.
func randDense(t *testing.T, n int, seed uint64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewSquare(n)
	require.NoError(t, err)
	m.FillRandom(rand.New(rand.NewPCG(seed, seed+1)))

	return m
}

// fromRows builds a Dense from literal rows.
func fromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(len(rows), len(rows[0]))
	require.NoError(t, err)
	for i, r := range rows {
		copy(m.Row(i), r)
	}

	return m
}

// mul returns a·b or fails the test.
func mul(t *testing.T, a, b *matrix.Dense) *matrix.Dense {
	t.Helper()
	out, err := matrix.Mul(a, b)
	require.NoError(t, err)

	return out
}

// transpose returns mᵀ or fails the test.
func transpose(t *testing.T, m *matrix.Dense) *matrix.Dense {
	t.Helper()
	out, err := matrix.Transpose(m)
	require.NoError(t, err)

	return out
}

// unpackLU splits packed LU storage into unit-lower L and upper U.
func unpackLU(t *testing.T, lu *matrix.Dense) (l, u *matrix.Dense) {
	t.Helper()
	n := lu.Rows()
	l, _ = matrix.NewSquare(n)
	u, _ = matrix.NewSquare(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := lu.Row(i)[j]
			switch {
			case j < i:
				l.Row(i)[j] = v
			case j == i:
				l.Row(i)[j] = 1
				u.Row(i)[j] = v
			default:
				u.Row(i)[j] = v
			}
		}
	}

	return l, u
}

// swapRowsOf applies the row interchanges piv in order to a copy of a.
func swapRowsOf(a *matrix.Dense, piv []int) *matrix.Dense {
	out := a.Clone().(*matrix.Dense)
	for k, p := range piv {
		rk, rp := out.Row(k), out.Row(p)
		for j := range rk {
			rk[j], rp[j] = rp[j], rk[j]
		}
	}

	return out
}

// swapColsOf applies the column interchanges piv in order to m in place.
func swapColsOf(m *matrix.Dense, piv []int) {
	for k, p := range piv {
		for i := 0; i < m.Rows(); i++ {
			r := m.Row(i)
			r[k], r[p] = r[p], r[k]
		}
	}
}

// identity returns the n×n identity.
func identity(t *testing.T, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewSquare(n)
	require.NoError(t, err)
	require.NoError(t, m.Identity())

	return m
}
