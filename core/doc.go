// Package core defines the weighted, undirected graph that every orbitgraph
// algorithm runs on.
//
// A Graph G = (V, E) has a fixed node set V = {0, 1, …, N-1} chosen at
// construction and a growing set of simple undirected edges:
//
//   - no self-loops (u ≠ v)
//   - at most one edge per unordered pair {u, v}
//   - weights are finite and non-negative; a zero-weight edge is still an edge
//
// Storage is a dense N×N adjacency table in row-major order. Each cell holds
// the EdgeID joining the two nodes or NoEdge. The table is kept symmetric:
// cell(u,v) == cell(v,u) for every pair, and the diagonal is always NoEdge.
// Edge records (endpoints and weight) live in a separate slice indexed by
// EdgeID, assigned 0, 1, 2, … in insertion order.
//
// Renderer handles:
//
// The graph never holds visual objects. When an edge is added, an optional
// HandleAttacher is asked for an opaque Handle, which is stored in a side
// table keyed by EdgeID and returned verbatim by Handle(id). On Teardown an
// attacher that also implements HandleReleaser gets every handle back.
//
// Lifecycle and versioning:
//
//	g, _ := core.New(n)          // built, Exists()==true
//	g.AddEdge(u, v, w)           // Version()++
//	g.Teardown()                 // Exists()==false, Version()++
//
// Derived tables (distance and next-hop tables in package apsp) remember the
// Version they were computed against and treat any change as invalidation.
//
// Concurrency:
//
// A Graph is owned by a single goroutine. No method locks; callers must not
// read while another goroutine adds edges or tears the graph down.
//
// Errors:
//
//	ErrInvalidNodeCount - New called with n < 1.
//	ErrNodeOutOfRange   - a NodeID outside [0, N).
//	ErrSelfLoop         - AddEdge(u, u, …).
//	ErrDuplicateEdge    - AddEdge on an already adjacent pair.
//	ErrBadWeight        - NaN, ±Inf or negative weight.
//	ErrEdgeNotFound     - EdgeID outside [0, M).
//	ErrGraphNotBuilt    - any operation on a nil or torn-down graph.
package core
