// SPDX-License-Identifier: MIT

package refsuite

import "errors"

// ErrUnknownFill is returned for a bench.Fill value Input cannot apply.
var ErrUnknownFill = errors.New("refsuite: unknown fill")
