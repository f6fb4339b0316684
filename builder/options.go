// SPDX-License-Identifier: MIT
// Package: orbitgraph/builder
//
// options.go — functional options for Build.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors panic on meaningless inputs (nil RNG, nil attacher,
//     negative or non-finite radius). Build itself never panics.
//   • Seeding is explicit: WithSeed or WithRand.

package builder

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/orbitgraph/core"
	"github.com/katalvlaran/orbitgraph/pointcloud"
)

// BuilderOption customizes a Build call.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for edge sampling. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a seeded RNG for edge sampling.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithOrigin sets the center passed to the point source.
func WithOrigin(p pointcloud.Point) BuilderOption {
	return func(c *builderConfig) {
		c.origin = p
	}
}

// WithRadius sets the radius passed to the point source.
// Panics if r is negative, NaN or infinite.
func WithRadius(r float64) BuilderOption {
	if r < 0 || math.IsNaN(r) || math.IsInf(r, 0) {
		panic("builder: WithRadius(r<0 or non-finite)")
	}
	return func(c *builderConfig) {
		c.radius = r
	}
}

// WithAttacher forwards a renderer hook to the constructed graph.
// Panics on nil.
func WithAttacher(a core.HandleAttacher) BuilderOption {
	if a == nil {
		panic("builder: WithAttacher(nil)")
	}
	return func(c *builderConfig) {
		c.attacher = a
	}
}
