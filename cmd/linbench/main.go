// SPDX-License-Identifier: MIT

// Command linbench prints single-call latencies of dense float64 linear
// algebra on the gonum backend, one block per operation and one line per
// matrix size. Diagnostics go to stderr.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/katalvlaran/linbench/bench"
	"github.com/katalvlaran/linbench/gonumsuite"
)

func main() {
	log := bench.NewConsoleLogger(os.Stderr)
	bench.LogEnvironment(log)

	// Interrupt stops the run after the size being measured.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	d := bench.New(bench.WithLogger(log))
	if _, err := d.Run(ctx, gonumsuite.Suite()); err != nil {
		log.Error().Err(err).Msg("benchmark failed")
		stop()
		os.Exit(1)
	}
}
