// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math/rand/v2"
)

const opIdentity = "Identity"

// Zero sets every element to 0.
func (m *Dense) Zero() {
	clear(m.data)
}

// Identity overwrites m with the identity matrix.
// Errors: ErrNonSquare.
func (m *Dense) Identity() error {
	if m.r != m.c {
		return fmt.Errorf("%s: %w", opIdentity, ErrNonSquare)
	}
	clear(m.data)
	for i := 0; i < m.r; i++ {
		m.data[i*m.c+i] = 1
	}

	return nil
}

// FillRandom overwrites m with values drawn uniformly from [-1, 1).
// The same rnd state always produces the same matrix.
func (m *Dense) FillRandom(rnd *rand.Rand) {
	for i := range m.data {
		m.data[i] = 2*rnd.Float64() - 1
	}
}
