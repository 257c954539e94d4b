// SPDX-License-Identifier: MIT
package timing_test

import (
	"fmt"
	"time"

	"github.com/katalvlaran/linbench/timing"
)

// stepClock advances by a fixed step on every operation call.
type stepClock struct{ now time.Duration }

func (c *stepClock) Now() time.Duration { return c.now }

// ExampleHarness_Calibrate shows a 2ms operation being batched to reach the
// 0.1s threshold.
func ExampleHarness_Calibrate() {
	clk := &stepClock{}
	h := timing.New(timing.WithClock(clk))

	s, err := h.Calibrate(func() error {
		clk.now += 2 * time.Millisecond
		return nil
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("repeats=%d per-call=%.3fms\n", s.Repeats, s.Seconds*1e3)
	// Output:
	// repeats=50 per-call=2.000ms
}
