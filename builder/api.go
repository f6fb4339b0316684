// SPDX-License-Identifier: MIT
// Package: orbitgraph/builder
//
// api.go — public entry point: Build.
//
// Design contract:
//   - Validate first; no point is generated for invalid parameters.
//   - Points come from the injected PointSource; the builder owns no geometry.
//   - The returned graph is fresh and exclusively owned by the caller.

package builder

import (
	"fmt"

	"github.com/katalvlaran/orbitgraph/core"
	"github.com/katalvlaran/orbitgraph/pointcloud"
)

// MethodBuild is the error-context tag for Build.
const MethodBuild = "Build"

// PointSource supplies node coordinates. *pointcloud.Source implements it.
type PointSource interface {
	Generate(kind pointcloud.Kind, origin pointcloud.Point, radius float64, count int) ([]pointcloud.Point, error)
}

// Result is a constructed graph together with the positions of its nodes.
type Result struct {
	// Graph holds N nodes and exactly TargetEdges edges.
	Graph *core.Graph
	// Points[i] is the position of node i.
	Points []pointcloud.Point
	// TargetEdges is the number of edges placed.
	TargetEdges int
	// Clamped reports whether the requested edge count exceeded N(N-1)/2.
	Clamped bool
}

// Build generates n points of the given kind and connects random distinct
// pairs until round(n(n-1)/2·density) edges exist (clamped to the maximum).
// Edge weights are squared Euclidean distances.
//
// Complexity: O(n²) for the adjacency table; sparse sampling is O(target)
// expected draws, dense sampling O(n²).
func Build(n int, density float64, src PointSource, kind pointcloud.Kind, opts ...BuilderOption) (*Result, error) {
	if err := validateParams(MethodBuild, n, density); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, builderErrorf(MethodBuild, "nil point source: %w", ErrInvalidConfiguration)
	}

	cfg := newBuilderConfig(opts...)
	target, clamped := TargetEdges(n, density)
	maxEdges := core.MaxEdges(n)
	if cfg.rng == nil && target > 0 && target < maxEdges {
		return nil, builderErrorf(MethodBuild, "target=%d of %d: %w", target, maxEdges, ErrNeedRandSource)
	}

	pts, err := src.Generate(kind, cfg.origin, cfg.radius, n)
	if err != nil {
		return nil, builderErrorf(MethodBuild, "Generate(%v): %w", kind, err)
	}
	if len(pts) != n {
		return nil, builderErrorf(MethodBuild, "got %d points, want %d: %w", len(pts), n, ErrPointCount)
	}

	gopts := []core.Option{core.WithEdgeCapacity(target)}
	if cfg.attacher != nil {
		gopts = append(gopts, core.WithAttacher(cfg.attacher))
	}
	g, err := core.New(n, gopts...)
	if err != nil {
		return nil, builderErrorf(MethodBuild, "core.New(%d): %w", n, err)
	}

	if err = placeEdges(g, pts, target, cfg); err != nil {
		g.Teardown()
		return nil, fmt.Errorf("%s: %w", MethodBuild, err)
	}

	return &Result{Graph: g, Points: pts, TargetEdges: target, Clamped: clamped}, nil
}
