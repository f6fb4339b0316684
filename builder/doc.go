// Package builder constructs random weighted graphs embedded in 3D point clouds.
//
// Build asks a PointSource for N points, then connects random pairs of
// distinct nodes until the graph holds exactly
//
//	target = round(N·(N-1)/2 · density)
//
// edges, each weighted by the squared Euclidean distance between its
// endpoints. The target is clamped to N·(N-1)/2, the size of the complete
// graph, so no density can ask for more pairs than exist.
//
// Two sampling strategies keep construction bounded for every density:
//
//   - sparse (target ≤ max/2): draw (u,v) uniformly, reject u==v and pairs
//     already adjacent. At least half of all pairs stay free, so each draw
//     succeeds with probability ≥ ~1/2.
//   - dense (target > max/2): enumerate all pairs and run a partial
//     Fisher–Yates shuffle, taking the first target pairs. The fully dense
//     case (target == max) adds every pair in order and needs no RNG.
//
// Both strategies choose a uniformly random edge subset of the target size.
//
// Determinism:
//
// Given the same seed (WithSeed / WithRand), point source and parameters,
// Build produces the same graph, the same EdgeIDs and the same weights.
//
// Errors:
//
// Invalid parameters (n < 1, density outside [0,1] or NaN, nil source) fail
// with ErrInvalidConfiguration before any point is generated. A source that
// returns the wrong number of points fails with ErrPointCount. Stochastic
// builds without an RNG fail with ErrNeedRandSource.
package builder
