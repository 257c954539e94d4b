// SPDX-License-Identifier: MIT

package matrix

// Test bridge (white-box) for the options snapshot.
//
// Purpose:
//   - Expose the effective Options of gatherOptions to matrix_test only.
//   - The file is a _test.go file in package matrix, so it can read private
//     fields but is invisible in production builds.

// OptionsSnapshot is a read-only view of Options for tests.
type OptionsSnapshot struct {
	ValidateNaNInf bool
}

// GatherOptionsSnapshot_TestOnly applies opts over the defaults and returns
// the result.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{ValidateNaNInf: o.validateNaNInf}
}
