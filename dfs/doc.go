// Package dfs implements the connectivity traversal over a core.Graph:
// a depth-first search that reports whether one launch reaches every node
// and records the walk as a playback.Sequence.
//
// What:
//
//   - Run(g, start, opts...) explores from start, visiting neighbors in
//     ascending node-id order.
//   - Every discovered node is recorded once with Final=true.
//   - Every edge met during the scan is recorded exactly once. A tree edge
//     (it led into an unvisited node) is Final; an edge to an already
//     visited node is recorded as explored with Final=false.
//   - Result.Connected is VisitedCount == N; Result.Exit is the last node
//     discovered and serves as the default shortest-path destination.
//
// Why:
//
//   - Decide whether all-pairs shortest paths are meaningful for a graph.
//   - Drive an animation of the exploration order, distinguishing tree
//     edges from explored-but-rejected edges.
//
// Determinism:
//
//   - Same graph structure and same start ⇒ identical Order and Sequence.
//
// Options:
//
//   - WithContext(ctx)   allows cancellation; checked once per stack step.
//   - WithOnVisit(fn)    pre-order hook on node discovery; error aborts.
//
// Errors:
//
//   - ErrGraphNotBuilt       graph is nil or torn down (matches core.ErrGraphNotBuilt).
//   - ErrStartNodeNotFound   start outside [0, N).
//   - context errors         traversal canceled.
//   - hook errors            propagated from OnVisit (wrapped).
package dfs
