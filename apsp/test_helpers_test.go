package apsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orbitgraph/core"
)

// wedge is {u, v, weight}.
type wedge struct {
	u, v int
	w    float64
}

func mustGraph(t testing.TB, n int, edges ...wedge) *core.Graph {
	t.Helper()
	g, err := core.New(n)
	require.NoError(t, err)
	for _, e := range edges {
		_, err = g.AddEdge(core.NodeID(e.u), core.NodeID(e.v), e.w)
		require.NoError(t, err)
	}

	return g
}

// cycle4 is the square 0-1-2-3-0 with weights 1, 2, 3, 4.
func cycle4(t testing.TB) *core.Graph {
	return mustGraph(t, 4, wedge{0, 1, 1}, wedge{1, 2, 2}, wedge{2, 3, 3}, wedge{3, 0, 4})
}

// twoTriangles is two disjoint unit 3-cliques: {0,1,2} and {3,4,5}.
func twoTriangles(t testing.TB) *core.Graph {
	return mustGraph(t, 6,
		wedge{0, 1, 1}, wedge{0, 2, 1}, wedge{1, 2, 1},
		wedge{3, 4, 1}, wedge{3, 5, 1}, wedge{4, 5, 1},
	)
}
