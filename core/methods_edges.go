// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge lifecycle & catalog queries: AddEdge, Edge, Edges, Handle.
// Determinism:
//   - EdgeIDs are assigned 0,1,2,... in insertion order.
//   - Edges() returns edges sorted by ID asc.

package core

import (
	"fmt"
	"math"
)

// AddEdge joins u and v with weight w and returns the new EdgeID.
//
// Steps:
//  1. Graph must exist; u, v in range; u != v; w finite and >= 0.
//  2. Reject an already adjacent pair.
//  3. Append the edge record (endpoints normalized to U < V).
//  4. Mirror the id into cells (u,v) and (v,u).
//  5. Ask the attacher (if any) for a handle.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v NodeID, w float64) (EdgeID, error) {
	if !g.Exists() {
		return NoEdge, fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrGraphNotBuilt)
	}
	if err := g.checkNode(u); err != nil {
		return NoEdge, fmt.Errorf("AddEdge: %w", err)
	}
	if err := g.checkNode(v); err != nil {
		return NoEdge, fmt.Errorf("AddEdge: %w", err)
	}
	if u == v {
		return NoEdge, fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrSelfLoop)
	}
	if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return NoEdge, fmt.Errorf("AddEdge(%d,%d,w=%g): %w", u, v, w, ErrBadWeight)
	}
	if g.cells[g.cell(u, v)] != NoEdge {
		return NoEdge, fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrDuplicateEdge)
	}

	if u > v {
		u, v = v, u
	}
	id := EdgeID(len(g.edges))
	g.edges = append(g.edges, Edge{ID: id, U: u, V: v, Weight: w})

	g.cells[g.cell(u, v)] = id
	g.cells[g.cell(v, u)] = id
	g.degree[u]++
	g.degree[v]++

	var h Handle
	if g.attacher != nil {
		h = g.attacher.AttachEdge(id, u, v)
	}
	g.handles = append(g.handles, h)
	g.version++

	return id, nil
}

// Edge returns the edge record for id.
func (g *Graph) Edge(id EdgeID) (Edge, error) {
	if !g.Exists() {
		return Edge{}, ErrGraphNotBuilt
	}
	if id < 0 || int(id) >= len(g.edges) {
		return Edge{}, fmt.Errorf("Edge(%d): %w", id, ErrEdgeNotFound)
	}
	return g.edges[id], nil
}

// Edges returns a copy of all edges in ID order. Empty after Teardown.
func (g *Graph) Edges() []Edge {
	if !g.Exists() {
		return nil
	}
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Handle returns the renderer handle stored for id (nil when no attacher was set).
func (g *Graph) Handle(id EdgeID) (Handle, error) {
	if !g.Exists() {
		return nil, ErrGraphNotBuilt
	}
	if id < 0 || int(id) >= len(g.handles) {
		return nil, fmt.Errorf("Handle(%d): %w", id, ErrEdgeNotFound)
	}
	return g.handles[id], nil
}
