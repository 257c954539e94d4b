// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Dense construction.
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - gatherOptions helper (internal).
package matrix

// DefaultValidateNaNInf toggles strict finite-value validation in Set.
// Kernels writing through RawData bypass it.
const DefaultValidateNaNInf = true

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
}

// WithValidateNaNInf enables strict finite-value validation in Set (default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation in Set.
// The flag applies to the matrix being created; Clone preserves it.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// gatherOptions applies user options over the defaults in order.
func gatherOptions(user ...Option) Options {
	o := Options{validateNaNInf: DefaultValidateNaNInf}
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
