// SPDX-License-Identifier: MIT
// Package: orbitgraph/builder
//
// config.go — internal configuration and defaults.
//
// Defaults:
//   • rng      = nil          (deterministic builds only, unless seeded)
//   • origin   = (0, 2, 0)
//   • radius   = 15
//   • attacher = nil          (edges carry nil handles)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/orbitgraph/core"
	"github.com/katalvlaran/orbitgraph/pointcloud"
)

// Default geometry passed to the point source.
const (
	DefaultRadius = 15.0
)

// DefaultOrigin is the cloud center used when WithOrigin is not given.
var DefaultOrigin = pointcloud.Point{X: 0, Y: 2, Z: 0}

// builderConfig aggregates all knobs. Passed by value.
type builderConfig struct {
	rng      *rand.Rand
	origin   pointcloud.Point
	radius   float64
	attacher core.HandleAttacher
}

// newBuilderConfig applies opts over the defaults (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		origin: DefaultOrigin,
		radius: DefaultRadius,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
