// SPDX-License-Identifier: MIT

package gonumsuite

import (
	"errors"
	"math/rand/v2"

	"github.com/katalvlaran/linbench/bench"
	"gonum.org/v1/gonum/mat"
)

const tagInverse = "inverse"

// Inverse recomputes A⁻¹ into a preallocated destination with
// mat.Dense.Inverse. gonum reports ill-conditioning as a mat.Condition
// error while still writing a result; that is not treated as a failure.
type Inverse struct {
	A, Inv *mat.Dense
}

// NewInverse allocates a size-n workspace.
func NewInverse(n int, fill bench.Fill, rnd *rand.Rand) (*Inverse, error) {
	g, err := newGeneral(n, fill, rnd)
	if err != nil {
		return nil, suiteErrorf(tagInverse, err)
	}

	return &Inverse{A: mat.NewDense(n, n, g.Data), Inv: mat.NewDense(n, n, nil)}, nil
}

// Compute writes the inverse of A into Inv. A is not modified.
func (inv *Inverse) Compute() error {
	err := inv.Inv.Inverse(inv.A)
	var cond mat.Condition
	if err != nil && !errors.As(err, &cond) {
		return suiteErrorf(tagInverse, err)
	}

	return nil
}
