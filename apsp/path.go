// SPDX-License-Identifier: MIT
// File: path.go
// Role: path reconstruction from the next-hop table.

package apsp

import (
	"github.com/katalvlaran/orbitgraph/core"
	"github.com/katalvlaran/orbitgraph/playback"
)

// ReconstructPath returns the shortest path from u to v as a playback
// sequence: node u, then one (edge, node) pair per hop, every step Final.
// The number of edges equals the hop count. Their weights sum to
// Distance(u, v) exactly when weights are integer-valued; otherwise a
// left-to-right sum may differ from the table in the last ulp, so compare
// with a relative tolerance (1e-9 is ample).
//
// u == v yields the single node u.
func (e *Engine) ReconstructPath(u, v core.NodeID) (playback.Sequence, error) {
	nodes, err := e.PathNodes(u, v)
	if err != nil {
		return playback.Sequence{}, err
	}

	rec := playback.NewRecorder(2*len(nodes) - 1)
	rec.Node(int(nodes[0]), true)
	var (
		i   int
		eid core.EdgeID
	)
	for i = 1; i < len(nodes); i++ {
		// PathNodes only yields adjacent consecutive nodes
		eid, _ = e.g.EdgeBetween(nodes[i-1], nodes[i])
		rec.Edge(int(eid), true)
		rec.Node(int(nodes[i]), true)
	}

	return rec.Sequence(), nil
}

// PathNodes returns the node ids of the shortest path from u to v,
// endpoints included.
func (e *Engine) PathNodes(u, v core.NodeID) ([]core.NodeID, error) {
	if err := e.check(opReconstruct); err != nil {
		return nil, err
	}
	if !e.inRange(u) || !e.inRange(v) {
		return nil, apspErrorf(opReconstruct, "(%d,%d) n=%d: %w", u, v, e.n, ErrNodeOutOfRange)
	}
	if e.next[int(u)*e.n+int(v)] == core.NoNode {
		return nil, apspErrorf(opReconstruct, "%d→%d: %w", u, v, ErrPathNotFound)
	}

	path := []core.NodeID{u}
	cur := u
	for cur != v {
		// a simple path has at most n-1 hops
		if len(path) > e.n {
			return nil, apspErrorf(opReconstruct, "%d→%d exceeds %d hops: %w", u, v, e.n-1, ErrPathNotFound)
		}
		cur = e.next[int(cur)*e.n+int(v)]
		path = append(path, cur)
	}

	return path, nil
}
