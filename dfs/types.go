// File: types.go
// Role: options, sentinel errors and the traversal result.

package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/orbitgraph/core"
	"github.com/katalvlaran/orbitgraph/playback"
)

var (
	// ErrGraphNotBuilt is returned for a nil or torn-down graph. It matches
	// core.ErrGraphNotBuilt under errors.Is, so callers may check either.
	ErrGraphNotBuilt = core.ErrGraphNotBuilt

	// ErrStartNodeNotFound indicates the start node is outside [0, N).
	ErrStartNodeNotFound = errors.New("dfs: start node not found")
)

// Option configures a traversal. Use with Run(g, start, opts...).
type Option func(*Options)

// Options holds traversal parameters.
type Options struct {
	// Ctx allows cancellation; checked once per stack frame step.
	// Defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is called when a node is discovered (pre-order).
	// Returning an error aborts the traversal with that error.
	OnVisit func(id core.NodeID) error
}

// DefaultOptions returns Options with a background context and no hooks.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs a pre-order hook.
func WithOnVisit(fn func(id core.NodeID) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// Result captures one traversal.
type Result struct {
	// Start is the node the traversal was launched from.
	Start core.NodeID

	// Exit is the last node discovered.
	Exit core.NodeID

	// Order lists nodes in discovery (pre-order) sequence.
	Order []core.NodeID

	// Parent[v] is the node from which v was discovered; NoNode for the start
	// and for unvisited nodes.
	Parent []core.NodeID

	// Visited[v] reports whether v was reached.
	Visited []bool

	// VisitedCount is the number of reached nodes.
	VisitedCount int

	// Connected is true iff VisitedCount equals the node count.
	Connected bool

	// Sequence is the playback: every discovered node (Final) and every edge
	// met exactly once (Final iff it led to a new node).
	Sequence playback.Sequence
}
