// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/linbench/matrix"
	"github.com/stretchr/testify/require"
)

// naiveMul is the textbook triple loop through At, used as an oracle.
func naiveMul(t *testing.T, a, b *matrix.Dense) *matrix.Dense {
	t.Helper()
	out, err := matrix.NewDense(a.Rows(), b.Cols())
	require.NoError(t, err)
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < b.Cols(); j++ {
			var s float64
			for k := 0; k < a.Cols(); k++ {
				x, _ := a.At(i, k)
				y, _ := b.At(k, j)
				s += x * y
			}
			require.NoError(t, out.Set(i, j, s))
		}
	}

	return out
}

func TestMulMatchesNaive(t *testing.T) {
	rnd := rand.New(rand.NewPCG(3, 5))
	a, _ := matrix.NewDense(5, 7)
	b, _ := matrix.NewDense(7, 4)
	a.FillRandom(rnd)
	b.FillRandom(rnd)

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.True(t, got.AllClose(naiveMul(t, a, b), 1e-12))
}

func TestMulAddAccumulates(t *testing.T) {
	rnd := rand.New(rand.NewPCG(11, 13))
	a, _ := matrix.NewSquare(6)
	b, _ := matrix.NewSquare(6)
	c, _ := matrix.NewSquare(6)
	a.FillRandom(rnd)
	b.FillRandom(rnd)
	c.FillRandom(rnd)
	c0 := c.Clone().(*matrix.Dense)

	require.NoError(t, matrix.MulAdd(c, a, b))
	require.NoError(t, matrix.MulAdd(c, a, b))

	ab := naiveMul(t, a, b)
	for i, v := range c.RawData() {
		require.InDelta(t, c0.RawData()[i]+2*ab.RawData()[i], v, 1e-12)
	}
}

func TestMulAddZeroOperandsKeepZero(t *testing.T) {
	a, _ := matrix.NewSquare(8)
	b, _ := matrix.NewSquare(8)
	c, _ := matrix.NewSquare(8)
	for i := 0; i < 3; i++ {
		require.NoError(t, matrix.MulAdd(c, a, b))
	}
	for _, v := range c.RawData() {
		require.Zero(t, v)
	}
}

func TestMulShapeErrors(t *testing.T) {
	a, _ := matrix.NewDense(2, 3)
	b, _ := matrix.NewDense(2, 3)
	_, err := matrix.Mul(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	c, _ := matrix.NewSquare(2)
	require.ErrorIs(t, matrix.MulAdd(c, a, b), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.MulAdd(nil, a, b), matrix.ErrNilMatrix)
}

func TestTranspose(t *testing.T) {
	a, _ := matrix.NewDense(2, 3)
	_ = a.Set(0, 2, 5)
	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	require.Equal(t, 3, at.Rows())
	v, _ := at.At(2, 0)
	require.Equal(t, 5.0, v)
}
