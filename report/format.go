// SPDX-License-Identifier: MIT

// Package report renders latency samples as fixed-width text lines.
//
// Each line is the scaled value with 3 significant digits right-aligned in a
// 10-character field, followed by a 2-character unit and a newline:
//
//	       123µs
//	       2.5 s
//
// Lines carry no size label; consumers match them by order against the size
// list that produced them.
package report

import "fmt"

// Unit thresholds in seconds. A value below a threshold is shown in the next
// finer unit.
const (
	nanoThreshold  = 1e-6
	microThreshold = 1e-3
	milliThreshold = 1e0
)

// Unit suffixes, each two display columns wide.
const (
	UnitSeconds = " s"
	UnitMillis  = "ms"
	UnitMicros  = "µs"
	UnitNanos   = "ns"
)

const (
	fieldWidth = 10
	sigDigits  = 3
)

// Scale returns seconds converted to the display unit chosen by magnitude,
// together with that unit's suffix.
func Scale(seconds float64) (float64, string) {
	switch {
	case seconds < nanoThreshold:
		return seconds * 1e9, UnitNanos
	case seconds < microThreshold:
		return seconds * 1e6, UnitMicros
	case seconds < milliThreshold:
		return seconds * 1e3, UnitMillis
	default:
		return seconds, UnitSeconds
	}
}

// FormatDuration returns the display line for seconds, newline included.
func FormatDuration(seconds float64) string {
	v, unit := Scale(seconds)

	return fmt.Sprintf("%*.*g%s\n", fieldWidth, sigDigits, v, unit)
}
