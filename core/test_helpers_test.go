// SPDX-License-Identifier: MIT
// Package core_test contains fixtures and assertions shared by core tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orbitgraph/core"
)

// Common weights used across core tests.
const (
	Weight0 = 0.0
	Weight1 = 1.0
	Weight2 = 2.0
	Weight3 = 3.0
	Weight4 = 4.0
)

// recordingAttacher hands out string handles and remembers releases.
type recordingAttacher struct {
	attached []core.EdgeID
	released map[core.EdgeID]core.Handle
}

func newRecordingAttacher() *recordingAttacher {
	return &recordingAttacher{released: make(map[core.EdgeID]core.Handle)}
}

func (a *recordingAttacher) AttachEdge(id core.EdgeID, u, v core.NodeID) core.Handle {
	a.attached = append(a.attached, id)
	return [2]core.NodeID{u, v}
}

func (a *recordingAttacher) ReleaseEdge(id core.EdgeID, h core.Handle) {
	a.released[id] = h
}

// mustGraph builds a graph with the given edges or fails the test.
func mustGraph(t *testing.T, n int, edges [][3]float64, opts ...core.Option) *core.Graph {
	t.Helper()
	g, err := core.New(n, opts...)
	require.NoError(t, err)
	for _, e := range edges {
		_, err = g.AddEdge(core.NodeID(e[0]), core.NodeID(e[1]), e[2])
		require.NoError(t, err)
	}

	return g
}

// requireSymmetric asserts cell(u,v)==cell(v,u) and an empty diagonal.
func requireSymmetric(t *testing.T, g *core.Graph) {
	t.Helper()
	n := g.Order()
	for u := 0; u < n; u++ {
		_, diag := g.EdgeBetween(core.NodeID(u), core.NodeID(u))
		require.False(t, diag, "diagonal cell %d must be empty", u)
		for v := u + 1; v < n; v++ {
			a, okA := g.EdgeBetween(core.NodeID(u), core.NodeID(v))
			b, okB := g.EdgeBetween(core.NodeID(v), core.NodeID(u))
			require.Equal(t, okA, okB)
			require.Equal(t, a, b)
		}
	}
}
