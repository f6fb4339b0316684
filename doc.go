// Package orbitgraph builds random weighted graphs over 3D point clouds and
// runs the two algorithms a visualizer animates on them: a depth-first
// connectivity traversal and Floyd–Warshall all-pairs shortest paths with
// path reconstruction.
//
// What is orbitgraph?
//
//	A small graph engine with a thin terminal front end:
//		• Point clouds: sphere, sphere surface, galaxy spiral, circle arc, circle
//		• Graph construction: exact edge count for a density, squared-distance weights
//		• Traversal: explicit-stack DFS with connectivity and exit node
//		• Shortest paths: Floyd–Warshall with a next-hop table
//		• Playback: ordered {node|edge, final} steps for a renderer to animate
//
// Packages:
//
//	pointcloud/ — seeded 3D point generators
//	core/       — dense undirected weighted graph with opaque edge handles
//	builder/    — random graph construction at a target density
//	dfs/        — connectivity traversal producing a playback
//	apsp/       — all-pairs shortest paths and path reconstruction
//	playback/   — step sequences and the recorder that deduplicates edges
//	session/    — owned graph lifecycle, metrics, logging, density sweeps
//	config/     — TOML/YAML configuration, validation, presets
//	cmd/        — the orbitgraph CLI
//
// Quick ASCII example:
//
//	    0──1
//	    │  │      dfs from 0: n0 e(0,1) n1 e(1,2) n2 e(2,3) n3 e(0,3)
//	    3──2
//
// A square is connected; the traversal exits at 3 and the shortest path
// 0→3 is whichever of the direct edge or the detour weighs less.
//
//	go install github.com/katalvlaran/orbitgraph/cmd/orbitgraph@latest
package orbitgraph
