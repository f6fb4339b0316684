// SPDX-License-Identifier: MIT
// Package: orbitgraph/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only package-level sentinels are exposed.
//   • Callers branch with errors.Is(err, ErrX).
//   • Implementations attach context with %w (see builderErrorf).
//
// Priority when several validations fail:
//   ErrInvalidConfiguration → ErrNeedRandSource → ErrPointCount → ErrConstructFailed.

package builder

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration indicates a node count below 1, a density outside
// [0,1] (or NaN), or a nil point source. Nothing is constructed.
var ErrInvalidConfiguration = errors.New("builder: invalid configuration")

// ErrNeedRandSource indicates a stochastic build (0 < target < max) without an RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrPointCount indicates the point source returned a different number of
// points than requested.
var ErrPointCount = errors.New("builder: point source returned wrong count")

// ErrConstructFailed indicates that sampling exhausted its attempt budget.
// With the sparse/dense split this only happens with a broken RNG.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf prefixes a wrapped error with the method name:
// "<method>: <formatted message>".
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", method, fmt.Errorf(format, args...))
}
