// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/katalvlaran/linbench/timing"
)

// Fill selects how a case initializes its input matrices.
type Fill int

const (
	// FillZero leaves inputs zero-filled.
	FillZero Fill = iota
	// FillIdentity sets the input to the identity.
	FillIdentity
	// FillRandom draws entries uniformly from [-1, 1). Pivoting kernels need
	// non-degenerate input to exercise a realistic pivot search.
	FillRandom
)

// String returns the fill name used in logs.
func (f Fill) String() string {
	switch f {
	case FillZero:
		return "zero"
	case FillIdentity:
		return "identity"
	case FillRandom:
		return "random"
	default:
		return fmt.Sprintf("Fill(%d)", int(f))
	}
}

// Case names in output order.
const (
	CaseGemm              = "gemm"
	CaseTrsm              = "trsm"
	CaseTriangularInverse = "triangular inverse"
	CaseCholesky          = "cholesky decomposition"
	CaseLUPartialPiv      = "lu partial piv"
	CaseLUFullPiv         = "lu full piv"
	CaseQR                = "qr"
	CaseColPivQR          = "col piv qr"
	CaseInverse           = "inverse"
)

// Builder allocates the operands of one case for size n, initializes them
// per fill (random values drawn from rnd) and returns the Op that performs
// the operation once, in place.
type Builder func(n int, fill Fill, rnd *rand.Rand) (timing.Op, error)

// Case is one row of the benchmark table.
type Case struct {
	Name  string
	Fill  Fill
	Build Builder
}

// Builders holds one Builder per operation a backend implements.
type Builders struct {
	Gemm         Builder // C += A·B
	Trsm         Builder // B ← L⁻¹·B, L unit lower
	Cholesky     Builder
	PartialPivLU Builder
	FullPivLU    Builder
	QR           Builder
	ColPivQR     Builder
	Inverse      Builder
}

// Cases lays b out as the ordered table. The triangular inverse row reuses
// the Trsm builder: inverting a unit-lower L is the solve L·X = B.
func Cases(b Builders) []Case {
	return []Case{
		{Name: CaseGemm, Fill: FillZero, Build: b.Gemm},
		{Name: CaseTrsm, Fill: FillZero, Build: b.Trsm},
		{Name: CaseTriangularInverse, Fill: FillZero, Build: b.Trsm},
		{Name: CaseCholesky, Fill: FillIdentity, Build: b.Cholesky},
		{Name: CaseLUPartialPiv, Fill: FillRandom, Build: b.PartialPivLU},
		{Name: CaseLUFullPiv, Fill: FillRandom, Build: b.FullPivLU},
		{Name: CaseQR, Fill: FillRandom, Build: b.QR},
		{Name: CaseColPivQR, Fill: FillRandom, Build: b.ColPivQR},
		{Name: CaseInverse, Fill: FillRandom, Build: b.Inverse},
	}
}

// Suite is a named case table for one backend.
type Suite struct {
	Name  string
	Cases []Case
}

// Only returns a copy of s restricted to the named cases, in table order.
func (s Suite) Only(names ...string) Suite {
	out := Suite{Name: s.Name}
	for _, c := range s.Cases {
		if slices.Contains(names, c.Name) {
			out.Cases = append(out.Cases, c)
		}
	}

	return out
}
