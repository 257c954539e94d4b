// SPDX-License-Identifier: MIT

// Command linbench-ref is linbench on the pure-Go reference kernels of
// matrix/ops. Its stdout lines up with linbench's for side-by-side diffs.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/katalvlaran/linbench/bench"
	"github.com/katalvlaran/linbench/refsuite"
)

func main() {
	log := bench.NewConsoleLogger(os.Stderr)
	bench.LogEnvironment(log)

	// Interrupt stops the run after the size being measured.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	d := bench.New(bench.WithLogger(log))
	if _, err := d.Run(ctx, refsuite.Suite()); err != nil {
		log.Error().Err(err).Msg("benchmark failed")
		stop()
		os.Exit(1)
	}
}
