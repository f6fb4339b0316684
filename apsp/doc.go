// Package apsp computes all-pairs shortest paths over a core.Graph with the
// Floyd–Warshall algorithm and reconstructs concrete paths from a next-hop
// table.
//
// What:
//
//   - Engine.Compute(ctx) fills an N×N distance table and an N×N next-hop
//     table. distance[i][i] = 0, next[i][i] = i; each edge seeds both
//     directions; relaxation keeps next[i][j] = next[i][k], the first hop
//     toward k, which is what makes reconstruction walk real edges.
//   - Engine.ReconstructPath(u, v) walks next[·][v] from u and returns the
//     path as a playback.Sequence: u, then (edge, node) per hop, all Final.
//
// Policy:
//
//   - +Inf (math.Inf(1)) denotes "no path"; it is never collapsed to 0 or a
//     large finite constant.
//   - Loop order is fixed (k → i → j) and only strict improvements are
//     taken, so two runs on the same graph give bit-identical tables.
//   - Tables are bound to the graph version they were computed from. Any
//     structural change (AddEdge, Teardown) makes them stale and queries
//     report ErrNotComputed until Compute runs again.
//
// Complexity:
//
//   - Compute: Time O(N³), Space O(N²). Context is checked between k rounds.
//   - ReconstructPath: O(hops).
//
// Errors:
//
//   - ErrGraphNotBuilt    graph is nil or torn down (matches core.ErrGraphNotBuilt).
//   - ErrNotComputed      tables missing or stale.
//   - ErrPathNotFound     no path joins the pair; an expected outcome on
//     disconnected graphs.
//   - ErrNodeOutOfRange   an endpoint is outside [0, N).
//
// An Engine is not safe for concurrent use.
package apsp
