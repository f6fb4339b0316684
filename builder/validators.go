// SPDX-License-Identifier: MIT
// Package: orbitgraph/builder
//
// validators.go — parameter checks and the target-edge computation.

package builder

import (
	"math"

	"github.com/katalvlaran/orbitgraph/core"
)

// Domain bounds.
const (
	MinNodes   = 1
	MinDensity = 0.0
	MaxDensity = 1.0
)

// validateParams rejects n < MinNodes, density outside [MinDensity,MaxDensity] and NaN.
func validateParams(method string, n int, density float64) error {
	if n < MinNodes {
		return builderErrorf(method, "n=%d < min=%d: %w", n, MinNodes, ErrInvalidConfiguration)
	}
	if math.IsNaN(density) || density < MinDensity || density > MaxDensity {
		return builderErrorf(method, "density=%g not in [%.1f,%.1f]: %w",
			density, MinDensity, MaxDensity, ErrInvalidConfiguration)
	}

	return nil
}

// TargetEdges returns round(n(n-1)/2 · density) clamped to n(n-1)/2, and
// whether clamping happened. Inputs are assumed valid.
func TargetEdges(n int, density float64) (target int, clamped bool) {
	maxEdges := core.MaxEdges(n)
	target = int(math.Round(float64(maxEdges) * density))
	if target > maxEdges {
		return maxEdges, true
	}
	if target < 0 {
		return 0, false
	}

	return target, false
}
