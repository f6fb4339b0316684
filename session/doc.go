// Package session owns one graph at a time and runs the visualizer flow
// over it: build, connectivity traversal, all-pairs shortest paths and path
// reconstruction from the traversal's incident node to its exit node.
//
// A Session replaces its graph wholesale on Rebuild; the previous graph is
// torn down first and every derived table becomes stale. Each build gets a
// fresh generation id so logs and playbacks can be tied to one graph.
//
// A Session is not safe for concurrent use. Sweep runs many independent
// sessions in parallel and shares only the logger and metrics, both of which
// are safe for concurrent use.
package session
