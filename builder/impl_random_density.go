// SPDX-License-Identifier: MIT
// Package: orbitgraph/builder
//
// impl_random_density.go — edge placement for Build.
//
// Canonical model:
//   - Uniformly random subset of exactly `target` unordered pairs.
//   - Weight(u,v) = |p_u - p_v|².
//
// Strategy selection:
//   - target == 0          → nothing to do.
//   - target == max        → all pairs, i asc, j asc (no RNG).
//   - target > max/2       → partial Fisher–Yates over the pair list.
//   - otherwise            → rejection sampling of (u,v) draws.
//
// Determinism:
//   - Fixed RNG consumption order per strategy; same seed ⇒ same EdgeIDs.

package builder

import (
	"github.com/katalvlaran/orbitgraph/core"
	"github.com/katalvlaran/orbitgraph/pointcloud"
)

const (
	methodPlaceEdges = "placeEdges"

	// sparseAttemptFactor bounds rejection sampling at factor·target+slack
	// draws; with ≥ half the pairs free this is never reached by a sane RNG.
	sparseAttemptFactor = 64
	sparseAttemptSlack  = 1024
)

// placeEdges adds exactly target edges to the empty graph g.
func placeEdges(g *core.Graph, pts []pointcloud.Point, target int, cfg builderConfig) error {
	n := len(pts)
	maxEdges := core.MaxEdges(n)

	switch {
	case target == 0:
		return nil
	case target == maxEdges:
		return placeComplete(g, pts)
	case 2*target > maxEdges:
		return placeShuffled(g, pts, target, cfg)
	default:
		return placeRejection(g, pts, target, cfg)
	}
}

// addWeighted joins u and v with their squared distance.
func addWeighted(g *core.Graph, pts []pointcloud.Point, u, v int) error {
	w := pts[u].DistanceSquared(pts[v])
	if _, err := g.AddEdge(core.NodeID(u), core.NodeID(v), w); err != nil {
		return builderErrorf(methodPlaceEdges, "AddEdge(%d,%d,w=%g): %w", u, v, w, err)
	}
	return nil
}

// placeComplete adds every pair in (i asc, j asc) order.
func placeComplete(g *core.Graph, pts []pointcloud.Point) error {
	n := len(pts)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if err := addWeighted(g, pts, i, j); err != nil {
				return err
			}
		}
	}

	return nil
}

// placeShuffled enumerates all pairs and keeps a uniformly random prefix of
// length target after a partial Fisher–Yates shuffle.
// Complexity: O(n²) time and space.
func placeShuffled(g *core.Graph, pts []pointcloud.Point, target int, cfg builderConfig) error {
	n := len(pts)
	pairs := make([][2]int32, 0, core.MaxEdges(n))
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			pairs = append(pairs, [2]int32{int32(i), int32(j)})
		}
	}

	rng := cfg.rng
	var k, r int
	for k = 0; k < target; k++ {
		r = k + rng.Intn(len(pairs)-k)
		pairs[k], pairs[r] = pairs[r], pairs[k]
		if err := addWeighted(g, pts, int(pairs[k][0]), int(pairs[k][1])); err != nil {
			return err
		}
	}

	return nil
}

// placeRejection draws (u,v) uniformly until target distinct pairs are joined.
func placeRejection(g *core.Graph, pts []pointcloud.Point, target int, cfg builderConfig) error {
	n := len(pts)
	rng := cfg.rng
	budget := sparseAttemptFactor*target + sparseAttemptSlack

	var u, v, attempts int
	for placed := 0; placed < target; {
		if attempts == budget {
			return builderErrorf(methodPlaceEdges, "placed %d of %d after %d draws: %w",
				placed, target, attempts, ErrConstructFailed)
		}
		attempts++

		u = rng.Intn(n)
		v = rng.Intn(n)
		if u == v || g.HasEdge(core.NodeID(u), core.NodeID(v)) {
			continue
		}
		if err := addWeighted(g, pts, u, v); err != nil {
			return err
		}
		placed++
	}

	return nil
}
