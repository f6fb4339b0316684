package session

import (
	"errors"

	"github.com/katalvlaran/orbitgraph/core"
)

var (
	// ErrGraphNotBuilt aliases core.ErrGraphNotBuilt.
	ErrGraphNotBuilt = core.ErrGraphNotBuilt

	// ErrNotConnected is returned by ShortestPath when the traversal did not
	// reach every node.
	ErrNotConnected = errors.New("session: graph must be connected")

	// ErrSharedAttacher is returned by Sweep when given WithAttacher.
	ErrSharedAttacher = errors.New("session: sweep trials cannot share a handle attacher")
)
