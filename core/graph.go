// SPDX-License-Identifier: MIT
// File: graph.go
// Role: Graph struct, construction, lifecycle (Teardown) and size queries.

package core

import "fmt"

// Graph is a simple undirected weighted graph over a fixed node set.
// See the package documentation for invariants and ownership rules.
type Graph struct {
	n int

	// cells[u*n+v] is the EdgeID joining u and v, or NoEdge.
	cells []EdgeID

	// edges[id] and handles[id] are indexed by EdgeID.
	edges   []Edge
	handles []Handle
	degree  []int

	attacher HandleAttacher

	exists  bool
	version uint64
}

// New returns an edgeless Graph over nodes 0..n-1.
// Complexity: O(n²) time and space for the adjacency table.
func New(n int, opts ...Option) (*Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("New: n=%d: %w", n, ErrInvalidNodeCount)
	}

	g := &Graph{
		n:      n,
		cells:  make([]EdgeID, n*n),
		degree: make([]int, n),
		exists: true,
	}
	for i := range g.cells {
		g.cells[i] = NoEdge
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// Exists reports whether g is built and not torn down. A nil Graph does not exist.
func (g *Graph) Exists() bool {
	return g != nil && g.exists
}

// Order returns the number of nodes, or 0 after Teardown.
func (g *Graph) Order() int {
	if !g.Exists() {
		return 0
	}
	return g.n
}

// Size returns the number of edges, or 0 after Teardown.
func (g *Graph) Size() int {
	if !g.Exists() {
		return 0
	}
	return len(g.edges)
}

// MaxEdges returns N(N-1)/2, the edge count of the complete graph on Order() nodes.
func (g *Graph) MaxEdges() int {
	return MaxEdges(g.Order())
}

// MaxEdges returns n(n-1)/2 for n ≥ 1 and 0 otherwise.
func MaxEdges(n int) int {
	if n < 2 {
		return 0
	}
	return n * (n - 1) / 2
}

// Version changes every time the edge set changes or the graph is torn down.
func (g *Graph) Version() uint64 {
	if g == nil {
		return 0
	}
	return g.version
}

// Teardown releases all edges and handles and marks g as not built.
// Calling Teardown twice, or on a nil Graph, is a no-op.
func (g *Graph) Teardown() {
	if !g.Exists() {
		return
	}

	if rel, ok := g.attacher.(HandleReleaser); ok {
		for i, h := range g.handles {
			rel.ReleaseEdge(EdgeID(i), h)
		}
	}

	g.cells = nil
	g.edges = nil
	g.handles = nil
	g.degree = nil
	g.exists = false
	g.version++
}

// checkNode validates a node id against the current order.
func (g *Graph) checkNode(u NodeID) error {
	if u < 0 || int(u) >= g.n {
		return fmt.Errorf("node %d not in [0,%d): %w", u, g.n, ErrNodeOutOfRange)
	}
	return nil
}

// cell returns the index of (u,v) in the flat table; ids must be valid.
func (g *Graph) cell(u, v NodeID) int {
	return int(u)*g.n + int(v)
}
