// SPDX-License-Identifier: MIT
// Package core: identifiers, edge records, renderer hooks and sentinel errors.

package core

import "errors"

// Sentinel errors for graph construction and queries.
var (
	// ErrInvalidNodeCount indicates New was asked for fewer than one node.
	ErrInvalidNodeCount = errors.New("core: node count must be at least 1")

	// ErrNodeOutOfRange indicates a NodeID outside [0, Order()).
	ErrNodeOutOfRange = errors.New("core: node id out of range")

	// ErrSelfLoop indicates an edge from a node to itself.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates a second edge between the same pair.
	ErrDuplicateEdge = errors.New("core: nodes already adjacent")

	// ErrBadWeight indicates a NaN, infinite or negative weight.
	ErrBadWeight = errors.New("core: weight must be finite and non-negative")

	// ErrEdgeNotFound indicates an EdgeID outside [0, Size()).
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrGraphNotBuilt indicates the graph is nil or was torn down.
	ErrGraphNotBuilt = errors.New("core: graph not built")
)

// NodeID identifies a node by its index in [0, N).
type NodeID int

// EdgeID identifies an edge by its insertion index in [0, M).
type EdgeID int

const (
	// NoNode is the "no node" sentinel (e.g. a missing next hop or parent).
	NoNode NodeID = -1

	// NoEdge marks an empty adjacency cell.
	NoEdge EdgeID = -1
)

// Edge is an undirected weighted edge. U < V always holds.
type Edge struct {
	ID     EdgeID
	U, V   NodeID
	Weight float64
}

// Other returns the endpoint of e opposite to n, or NoNode if n is not an
// endpoint.
func (e Edge) Other(n NodeID) NodeID {
	switch n {
	case e.U:
		return e.V
	case e.V:
		return e.U
	default:
		return NoNode
	}
}

// Handle is an opaque renderer object associated with an edge.
// The graph stores it and hands it back; it never inspects it.
type Handle = any

// HandleAttacher is asked for a Handle once per new edge.
type HandleAttacher interface {
	AttachEdge(id EdgeID, u, v NodeID) Handle
}

// HandleReleaser is an optional extension of HandleAttacher. If the attacher
// implements it, Teardown returns every stored handle through ReleaseEdge.
type HandleReleaser interface {
	ReleaseEdge(id EdgeID, h Handle)
}

// Option configures a Graph at construction.
type Option func(*Graph)

// WithAttacher installs the renderer hook consulted on AddEdge.
// Panics on nil.
func WithAttacher(a HandleAttacher) Option {
	if a == nil {
		panic("core: WithAttacher(nil)")
	}
	return func(g *Graph) {
		g.attacher = a
	}
}

// WithEdgeCapacity preallocates room for m edges. Non-positive m is ignored.
func WithEdgeCapacity(m int) Option {
	return func(g *Graph) {
		if m > 0 {
			g.edges = make([]Edge, 0, m)
			g.handles = make([]Handle, 0, m)
		}
	}
}
