// SPDX-License-Identifier: MIT
// File: methods_adjacent.go
// Role: Adjacency queries over the dense table.
// Determinism:
//   - Neighbors() returns node ids in ascending order.
// AI-HINT (file):
//   - EdgeBetween is the O(1) primitive; algorithms scanning a row should use it
//     instead of materializing Neighbors slices.

package core

import "fmt"

// EdgeBetween returns the EdgeID joining u and v. ok is false when the pair
// is not adjacent, an id is out of range, or the graph does not exist.
func (g *Graph) EdgeBetween(u, v NodeID) (EdgeID, bool) {
	if !g.Exists() || u < 0 || v < 0 || int(u) >= g.n || int(v) >= g.n {
		return NoEdge, false
	}
	id := g.cells[g.cell(u, v)]

	return id, id != NoEdge
}

// HasEdge reports whether u and v are adjacent.
func (g *Graph) HasEdge(u, v NodeID) bool {
	_, ok := g.EdgeBetween(u, v)
	return ok
}

// Weight returns the weight of edge {u,v}. ok is false for non-adjacent pairs,
// which keeps "no edge" distinct from a zero-weight edge.
func (g *Graph) Weight(u, v NodeID) (float64, bool) {
	id, ok := g.EdgeBetween(u, v)
	if !ok {
		return 0, false
	}
	return g.edges[id].Weight, true
}

// Neighbors returns the nodes adjacent to u in ascending order.
// Complexity: O(N).
func (g *Graph) Neighbors(u NodeID) ([]NodeID, error) {
	if !g.Exists() {
		return nil, ErrGraphNotBuilt
	}
	if err := g.checkNode(u); err != nil {
		return nil, fmt.Errorf("Neighbors: %w", err)
	}

	out := make([]NodeID, 0, g.degree[u])
	row := g.cells[int(u)*g.n : int(u+1)*g.n]
	for v, id := range row {
		if id != NoEdge {
			out = append(out, NodeID(v))
		}
	}

	return out, nil
}

// Degree returns the number of edges incident to u.
func (g *Graph) Degree(u NodeID) (int, error) {
	if !g.Exists() {
		return 0, ErrGraphNotBuilt
	}
	if err := g.checkNode(u); err != nil {
		return 0, fmt.Errorf("Degree: %w", err)
	}
	return g.degree[u], nil
}
