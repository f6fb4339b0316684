package ui

import (
	"fmt"

	"github.com/katalvlaran/orbitgraph/core"
)

// Labels is a core.HandleAttacher that gives every edge a printable
// "u-v" handle. It stands in for the visual object a renderer would attach.
type Labels struct {
	byEdge   map[core.EdgeID]string
	released int
}

// NewLabels returns an empty label table.
func NewLabels() *Labels {
	return &Labels{byEdge: make(map[core.EdgeID]string)}
}

// AttachEdge implements core.HandleAttacher.
func (l *Labels) AttachEdge(id core.EdgeID, u, v core.NodeID) core.Handle {
	label := fmt.Sprintf("%d-%d", u, v)
	l.byEdge[id] = label

	return label
}

// ReleaseEdge implements core.HandleReleaser.
func (l *Labels) ReleaseEdge(id core.EdgeID, _ core.Handle) {
	if _, ok := l.byEdge[id]; ok {
		delete(l.byEdge, id)
		l.released++
	}
}

// Edge returns the label of an attached edge.
func (l *Labels) Edge(id core.EdgeID) (string, bool) {
	s, ok := l.byEdge[id]
	return s, ok
}

// Len is the number of live labels.
func (l *Labels) Len() int { return len(l.byEdge) }

// Released counts labels dropped by graph teardown.
func (l *Labels) Released() int { return l.released }
