// SPDX-License-Identifier: MIT

package report

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedLine is returned by ParseDuration for a line that does not end
// in a known unit or whose value is not a float.
var ErrMalformedLine = errors.New("report: malformed duration line")

// unitScales maps each suffix to its multiplier back to seconds.
var unitScales = []struct {
	suffix string
	scale  float64
}{
	{UnitNanos, 1e-9},
	{UnitMicros, 1e-6},
	{UnitMillis, 1e-3},
	{UnitSeconds, 1},
}

// ParseDuration converts a line written by FormatDuration back to seconds.
// The trailing newline is optional. Precision is limited to the 3 significant
// digits that were printed.
func ParseDuration(line string) (float64, error) {
	line = strings.TrimRight(line, "\r\n")
	for _, u := range unitScales {
		if !strings.HasSuffix(line, u.suffix) {
			continue
		}
		raw := strings.TrimSpace(strings.TrimSuffix(line, u.suffix))
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %w", ErrMalformedLine, line, err)
		}

		return v * u.scale, nil
	}

	return 0, fmt.Errorf("%w: %q: unknown unit", ErrMalformedLine, line)
}
