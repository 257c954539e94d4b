// SPDX-License-Identifier: MIT

package gonumsuite

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/linbench/bench"
	"github.com/katalvlaran/linbench/matrix"
	"gonum.org/v1/gonum/blas/blas64"
)

// ErrUnknownFill is returned for a bench.Fill value this package cannot apply.
var ErrUnknownFill = errors.New("gonumsuite: unknown fill")

// newGeneral allocates an n×n row-major matrix initialized per fill.
func newGeneral(n int, fill bench.Fill, rnd *rand.Rand) (blas64.General, error) {
	if n <= 0 {
		return blas64.General{}, matrix.ErrInvalidDimensions
	}
	g := blas64.General{Rows: n, Cols: n, Stride: n, Data: make([]float64, n*n)}
	switch fill {
	case bench.FillZero:
	case bench.FillIdentity:
		for i := 0; i < n; i++ {
			g.Data[i*n+i] = 1
		}
	case bench.FillRandom:
		for i := range g.Data {
			g.Data[i] = 2*rnd.Float64() - 1
		}
	default:
		return blas64.General{}, fmt.Errorf("%w: %v", ErrUnknownFill, fill)
	}

	return g, nil
}

// cloneGeneral returns a deep copy of g.
func cloneGeneral(g blas64.General) blas64.General {
	cp := g
	cp.Data = make([]float64, len(g.Data))
	copy(cp.Data, g.Data)

	return cp
}

// suiteErrorf wraps err with the case tag.
func suiteErrorf(tag string, err error) error {
	return fmt.Errorf("gonumsuite: %s: %w", tag, err)
}
