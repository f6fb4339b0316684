// SPDX-License-Identifier: MIT
// File: engine.go
// Role: Floyd–Warshall over the dense edge table with a next-hop table.
// Determinism:
//   - Seeding walks edges in EdgeID order; relaxation runs k → i → j with a
//     strict "<" so ties keep the earlier hop.

package apsp

import (
	"context"
	"math"

	"github.com/katalvlaran/orbitgraph/core"
)

// Engine owns the distance and next-hop tables for one graph.
type Engine struct {
	g *core.Graph

	n       int
	dist    []float64     // row-major n×n, +Inf = no path
	next    []core.NodeID // row-major n×n, NoNode = no path
	version uint64        // graph version the tables belong to
	ready   bool
}

// NewEngine binds an engine to g. Nothing is computed until Compute.
func NewEngine(g *core.Graph) *Engine {
	return &Engine{g: g}
}

// Graph returns the bound graph.
func (e *Engine) Graph() *core.Graph { return e.g }

// Computed reports whether the tables exist and match the current graph.
func (e *Engine) Computed() bool {
	return e.ready && e.g.Exists() && e.g.Version() == e.version
}

// Invalidate drops the tables.
func (e *Engine) Invalidate() {
	e.dist, e.next = nil, nil
	e.ready = false
}

// Compute runs Floyd–Warshall on the bound graph. On error (including
// cancellation) the previous tables are discarded and Computed reports false.
//
// Complexity: Time O(N³), Space O(N²).
func (e *Engine) Compute(ctx context.Context) error {
	e.Invalidate()
	if !e.g.Exists() {
		return apspErrorf(opCompute, "%w", ErrGraphNotBuilt)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	n := e.g.Order()
	dist := make([]float64, n*n)
	next := make([]core.NodeID, n*n)
	seed(e.g, n, dist, next)

	if err := relax(ctx, n, dist, next); err != nil {
		return apspErrorf(opCompute, "n=%d: %w", n, err)
	}

	e.n = n
	e.dist, e.next = dist, next
	e.version = e.g.Version()
	e.ready = true

	return nil
}

// seed fills the initial tables: 0/self on the diagonal, edge weights both
// ways, +Inf/NoNode elsewhere.
func seed(g *core.Graph, n int, dist []float64, next []core.NodeID) {
	inf := math.Inf(1)
	var i int
	for i = range dist {
		dist[i] = inf
		next[i] = core.NoNode
	}
	for i = 0; i < n; i++ {
		dist[i*n+i] = 0
		next[i*n+i] = core.NodeID(i)
	}

	var u, v int
	for _, ed := range g.Edges() {
		u, v = int(ed.U), int(ed.V)
		dist[u*n+v], dist[v*n+u] = ed.Weight, ed.Weight
		next[u*n+v], next[v*n+u] = ed.V, ed.U
	}
}

// relax is the k → i → j closure. A pair is updated only when both legs are
// finite and the sum strictly improves; next[i][j] inherits next[i][k].
func relax(ctx context.Context, n int, dist []float64, next []core.NodeID) error {
	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand float64
		hop          core.NodeID
	)
	for k = 0; k < n; k++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		baseK = k * n

		for i = 0; i < n; i++ {
			baseI = i * n
			ik = dist[baseI+k]
			if math.IsInf(ik, 1) {
				continue
			}
			hop = next[baseI+k]

			for j = 0; j < n; j++ {
				kj = dist[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				cand = ik + kj
				if cand < dist[baseI+j] {
					dist[baseI+j] = cand
					next[baseI+j] = hop
				}
			}
		}
	}

	return nil
}

// Distance returns the shortest distance from u to v, +Inf when v is
// unreachable. ok is false when the tables are not current or an id is out
// of range.
func (e *Engine) Distance(u, v core.NodeID) (float64, bool) {
	if !e.Computed() || !e.inRange(u) || !e.inRange(v) {
		return 0, false
	}
	return e.dist[int(u)*e.n+int(v)], true
}

// NextHop returns the node after u on a shortest path to v. ok is false when
// no such path exists or the tables are not current.
func (e *Engine) NextHop(u, v core.NodeID) (core.NodeID, bool) {
	if !e.Computed() || !e.inRange(u) || !e.inRange(v) {
		return core.NoNode, false
	}
	hop := e.next[int(u)*e.n+int(v)]

	return hop, hop != core.NoNode
}

// Tables is a copy of the engine state for inspection.
type Tables struct {
	Dist [][]float64
	Next [][]core.NodeID
}

// Tables returns copies of the distance and next-hop tables.
func (e *Engine) Tables() (*Tables, error) {
	if err := e.check(opTables); err != nil {
		return nil, err
	}

	t := &Tables{
		Dist: make([][]float64, e.n),
		Next: make([][]core.NodeID, e.n),
	}
	var i int
	for i = 0; i < e.n; i++ {
		t.Dist[i] = append([]float64(nil), e.dist[i*e.n:(i+1)*e.n]...)
		t.Next[i] = append([]core.NodeID(nil), e.next[i*e.n:(i+1)*e.n]...)
	}

	return t, nil
}

func (e *Engine) inRange(u core.NodeID) bool {
	return u >= 0 && int(u) < e.n
}

// check reports why the tables cannot be used. A torn-down graph reports
// both ErrNotComputed and ErrGraphNotBuilt.
func (e *Engine) check(op string) error {
	switch {
	case !e.g.Exists():
		return apspErrorf(op, "%w: %w", ErrNotComputed, ErrGraphNotBuilt)
	case !e.ready:
		return apspErrorf(op, "%w", ErrNotComputed)
	case e.g.Version() != e.version:
		return apspErrorf(op, "graph changed (v%d, tables v%d): %w", e.g.Version(), e.version, ErrNotComputed)
	}

	return nil
}
