// SPDX-License-Identifier: MIT

package gonumsuite

import (
	"math/rand/v2"

	"github.com/katalvlaran/linbench/bench"
	"github.com/katalvlaran/linbench/timing"
)

// Name identifies this backend in logs.
const Name = "gonum"

// computer is any workspace in this package.
type computer interface {
	Compute() error
}

// builder lifts a workspace constructor into a bench.Builder.
func builder[W computer](newW func(int, bench.Fill, *rand.Rand) (W, error)) bench.Builder {
	return func(n int, fill bench.Fill, rnd *rand.Rand) (timing.Op, error) {
		w, err := newW(n, fill, rnd)
		if err != nil {
			return nil, err
		}

		return w.Compute, nil
	}
}

// Builders returns the gonum builder for every operation.
func Builders() bench.Builders {
	return bench.Builders{
		Gemm:         builder(NewGemm),
		Trsm:         builder(NewTrsm),
		Cholesky:     builder(NewCholesky),
		PartialPivLU: builder(NewPartialPivLU),
		FullPivLU:    builder(NewFullPivLU),
		QR:           builder(NewQR),
		ColPivQR:     builder(NewColPivQR),
		Inverse:      builder(NewInverse),
	}
}

// Suite returns the full case table on the gonum backend.
func Suite() bench.Suite {
	return bench.Suite{Name: Name, Cases: bench.Cases(Builders())}
}
