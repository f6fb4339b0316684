// Package pointcloud generates 3D point sets in a handful of shapes.
//
// It is the coordinate source the graph builder consumes: the builder asks
// for N points of a given Kind around an origin and uses squared Euclidean
// distances between them as edge weights.
//
// Kinds:
//
//	sphere          – points scattered inside a sphere (biased toward the center)
//	sphere_surface  – points on the sphere surface
//	galaxy          – a two-armed logarithmic spiral with a diffuse core
//	circle_arc      – points on a horizontal circle
//	circle          – points scattered inside a horizontal disc
//
// Placement is stochastic; the shape is not. A Source seeded with WithSeed
// reproduces the same cloud for the same calls.
package pointcloud
