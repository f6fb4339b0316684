// File: dfs.go
// Role: explicit-stack depth-first traversal.
//
// The walk is a depth-first search driven by an explicit stack of
// {node, cursor} frames, so depth is bounded by heap rather than the call
// stack. Each frame resumes its row scan at cursor, which makes the neighbor
// order ascending by node id and the whole run deterministic.
//
// Complexity:
//
//   - Time:   O(N²) row scans over the dense table (O(1) per cell).
//   - Memory: O(N) for the stack and per-node metadata, plus the playback.
//
// Errors:
//
//   - ErrGraphNotBuilt        if g is nil or torn down.
//   - ErrStartNodeNotFound    if start is outside [0, N).
//   - ctx.Err()               if the context is done.
//   - any error returned by OnVisit.

package dfs

import (
	"fmt"

	"github.com/katalvlaran/orbitgraph/core"
	"github.com/katalvlaran/orbitgraph/playback"
)

// frame is one stack entry: the node being expanded and the next column of
// its row to inspect.
type frame struct {
	node   core.NodeID
	cursor int
}

// walker encapsulates state during a traversal.
type walker struct {
	graph *core.Graph
	opts  Options
	res   *Result
	rec   *playback.Recorder
	stack []frame
}

// Run performs a depth-first search on g from start and reports which nodes
// were reached together with the playback of the walk.
func Run(g *core.Graph, start core.NodeID, opts ...Option) (*Result, error) {
	// 1. Validate input graph
	if !g.Exists() {
		return nil, fmt.Errorf("dfs: Run: %w", ErrGraphNotBuilt)
	}
	n := g.Order()
	if start < 0 || int(start) >= n {
		return nil, fmt.Errorf("dfs: Run(start=%d, n=%d): %w", start, n, ErrStartNodeNotFound)
	}

	// 2. Apply options
	dopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&dopts)
	}

	// 3. Initialize result
	res := &Result{
		Start:   start,
		Exit:    start,
		Order:   make([]core.NodeID, 0, n),
		Parent:  make([]core.NodeID, n),
		Visited: make([]bool, n),
	}
	var i int
	for i = range res.Parent {
		res.Parent[i] = core.NoNode
	}

	w := &walker{
		graph: g,
		opts:  dopts,
		res:   res,
		rec:   playback.NewRecorder(n + g.Size()),
		stack: make([]frame, 0, n),
	}

	// 4. Traverse
	if err := w.walk(start); err != nil {
		return nil, err
	}

	res.Connected = res.VisitedCount == n
	res.Sequence = w.rec.Sequence()

	return res, nil
}

// discover marks v visited, records it and pushes its frame.
func (w *walker) discover(v, parent core.NodeID) error {
	w.res.Visited[v] = true
	w.res.VisitedCount++
	w.res.Order = append(w.res.Order, v)
	w.res.Parent[v] = parent
	w.res.Exit = v
	w.rec.Node(int(v), true)

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			return fmt.Errorf("dfs: OnVisit(%d): %w", v, err)
		}
	}
	w.stack = append(w.stack, frame{node: v})

	return nil
}

// walk drains the stack. Each iteration advances the top frame's cursor to
// the next adjacent column, recording the edge once. An edge into an
// unvisited node is a tree edge (Final) and descends; any other edge is
// recorded as explored only. A frame whose cursor passed the last column is
// popped.
func (w *walker) walk(start core.NodeID) error {
	if err := w.discover(start, core.NoNode); err != nil {
		return err
	}

	n := w.graph.Order()
	var (
		top  *frame
		u, v core.NodeID
		eid  core.EdgeID
		ok   bool
	)
	for len(w.stack) > 0 {
		if err := w.opts.Ctx.Err(); err != nil {
			return err
		}

		top = &w.stack[len(w.stack)-1]
		u = top.node
		descended := false
		for top.cursor < n {
			v = core.NodeID(top.cursor)
			top.cursor++
			if eid, ok = w.graph.EdgeBetween(u, v); !ok {
				continue
			}
			if w.res.Visited[v] {
				w.rec.Edge(int(eid), false)
				continue
			}
			w.rec.Edge(int(eid), true)
			if err := w.discover(v, u); err != nil {
				return err
			}
			descended = true
			break
		}
		if !descended {
			w.stack = w.stack[:len(w.stack)-1]
		}
	}

	return nil
}
