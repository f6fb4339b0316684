package session_test

import (
	"context"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/orbitgraph/apsp"
	"github.com/katalvlaran/orbitgraph/config"
	"github.com/katalvlaran/orbitgraph/core"
	"github.com/katalvlaran/orbitgraph/internal/ui"
	"github.com/katalvlaran/orbitgraph/session"
)

func graphCfg(nodes int, density float64) config.Graph {
	return config.Graph{Nodes: nodes, Density: density, Geometry: "sphere", Seed: 7}
}

// newObserved returns a session wired to an in-memory log sink.
func newObserved(t *testing.T, cfg config.Graph, opts ...session.Option) (*session.Session, *observer.ObservedLogs) {
	t.Helper()
	zc, logs := observer.New(zapcore.DebugLevel)
	s, err := session.New(cfg, append(opts, session.WithLogger(zap.New(zc)))...)
	require.NoError(t, err)

	return s, logs
}

func TestNew_InvalidConfiguration(t *testing.T) {
	for _, cfg := range []config.Graph{
		graphCfg(0, 0.5),
		graphCfg(5, 1.5),
		graphCfg(5, math.NaN()),
		{Nodes: 5, Density: 0.5, Geometry: "cube"},
		{Nodes: 5, Density: 0.5, Geometry: "sphere", Start: 5},
	} {
		s, err := session.New(cfg)
		assert.Nil(t, s)
		assert.ErrorIs(t, err, config.ErrInvalidConfiguration, "%+v", cfg)
	}
}

func TestRebuild(t *testing.T) {
	reg := prometheus.NewRegistry()
	s, logs := newObserved(t, graphCfg(20, 0.3), session.WithRegisterer(reg))
	ctx := context.Background()

	assert.Nil(t, s.Graph())
	assert.Equal(t, uuid.Nil, s.Generation())

	require.NoError(t, s.Rebuild(ctx))
	first := s.Generation()
	g1 := s.Graph()
	assert.NotEqual(t, uuid.Nil, first)
	assert.Equal(t, 20, g1.Order())
	assert.Equal(t, 57, g1.Size()) // round(190 * 0.3)
	assert.Len(t, s.Points(), 20)

	require.NoError(t, s.Rebuild(ctx))
	assert.NotEqual(t, first, s.Generation())
	assert.False(t, g1.Exists(), "previous graph is torn down")

	m := s.Metrics()
	assert.Equal(t, 2.0, testutil.ToFloat64(m.GraphsBuilt))
	assert.Equal(t, 114.0, testutil.ToFloat64(m.EdgesCreated))
	assert.Equal(t, 2, logs.FilterMessage("graph created").Len())
	assert.Equal(t, 1, logs.FilterMessage("graph destroyed").Len())

	n, err := testutil.GatherAndCount(reg, "orbitgraph_graphs_built_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRebuild_Canceled(t *testing.T) {
	s, err := session.New(graphCfg(5, 0.5))
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, s.Rebuild(ctx), context.Canceled)
	assert.Nil(t, s.Graph())
}

func TestRebuild_DeterministicPerSeed(t *testing.T) {
	a, err := session.New(graphCfg(30, 0.2))
	require.NoError(t, err)
	b, err := session.New(graphCfg(30, 0.2))
	require.NoError(t, err)
	ctx := context.Background()
	require.NoError(t, a.Rebuild(ctx))
	require.NoError(t, b.Rebuild(ctx))

	assert.Equal(t, a.Points(), b.Points())
	assert.Equal(t, a.Graph().Edges(), b.Graph().Edges())
}

func TestRunDFS_NotBuilt(t *testing.T) {
	s, logs := newObserved(t, graphCfg(5, 0.5))
	res, err := s.RunDFS(context.Background())
	assert.Nil(t, res)
	assert.ErrorIs(t, err, session.ErrGraphNotBuilt)
	assert.Equal(t, 1, logs.FilterMessage("graph not built").Len())
}

func TestRunDFS_Complete(t *testing.T) {
	s, logs := newObserved(t, graphCfg(10, 1))
	ctx := context.Background()
	require.NoError(t, s.Rebuild(ctx))

	res, err := s.RunDFS(ctx)
	require.NoError(t, err)
	assert.True(t, res.Connected)
	// a complete graph walks straight down the ids
	assert.Equal(t, core.NodeID(9), res.Exit)
	assert.Equal(t, core.NodeID(0), s.Incident())
	assert.Equal(t, core.NodeID(9), s.Exit())
	assert.Equal(t, res.Sequence, s.Playback())

	assert.Equal(t, 1.0, testutil.ToFloat64(s.Metrics().DFSRuns.WithLabelValues(session.OutcomeConnected)))
	assert.Equal(t, 1, logs.FilterMessage("dfs complete").Len())
	assert.Equal(t, 1, logs.FilterMessage("connected graph").Len())
}

func TestShortestPath_Connected(t *testing.T) {
	s, logs := newObserved(t, graphCfg(12, 1))
	ctx := context.Background()
	require.NoError(t, s.Rebuild(ctx))

	seq, err := s.ShortestPath(ctx)
	require.NoError(t, err)

	nodes := seq.Nodes()
	require.NotEmpty(t, nodes)
	assert.Equal(t, 0, nodes[0])
	assert.Equal(t, 11, nodes[len(nodes)-1])
	assert.Len(t, seq.Edges(), len(nodes)-1)
	assert.Equal(t, seq, s.Playback())

	m := s.Metrics()
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Paths.WithLabelValues(session.OutcomeFound)))
	assert.Equal(t, 1, testutil.CollectAndCount(m.APSPDuration))
	assert.Equal(t, 1, logs.FilterMessage("floyd-warshall completed").Len())
	assert.Equal(t, 1, logs.FilterMessage("path found").Len())

	// tables are reused while the graph is unchanged
	_, err = s.ShortestPath(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessage("floyd-warshall completed").Len())
}

func TestShortestPath_NotConnected(t *testing.T) {
	s, logs := newObserved(t, graphCfg(5, 0))
	ctx := context.Background()
	require.NoError(t, s.Rebuild(ctx))

	seq, err := s.ShortestPath(ctx)
	assert.ErrorIs(t, err, session.ErrNotConnected)
	assert.Zero(t, seq.Len())
	assert.Equal(t, 1, logs.FilterMessage("graph must be connected").Len())
	assert.Equal(t, 1.0, testutil.ToFloat64(s.Metrics().DFSRuns.WithLabelValues(session.OutcomeDisconnected)))
}

func TestShortestPath_SingleNode(t *testing.T) {
	s, err := session.New(graphCfg(1, 0.5))
	require.NoError(t, err)
	ctx := context.Background()
	require.NoError(t, s.Rebuild(ctx))

	seq, err := s.ShortestPath(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, seq.Nodes())
	assert.Empty(t, seq.Edges())
}

func TestShortestPathBetween(t *testing.T) {
	s, logs := newObserved(t, graphCfg(3, 0))
	ctx := context.Background()

	_, err := s.ShortestPathBetween(ctx, 0, 2)
	assert.ErrorIs(t, err, session.ErrGraphNotBuilt)

	require.NoError(t, s.Rebuild(ctx))
	_, err = s.ShortestPathBetween(ctx, 0, 2)
	assert.ErrorIs(t, err, apsp.ErrPathNotFound)
	assert.Equal(t, 1.0, testutil.ToFloat64(s.Metrics().Paths.WithLabelValues(session.OutcomeNotFound)))
	assert.Equal(t, 1, logs.FilterMessage("path not found").Len())

	_, err = s.ShortestPathBetween(ctx, 0, 3)
	assert.ErrorIs(t, err, apsp.ErrNodeOutOfRange)

	seq, err := s.ShortestPathBetween(ctx, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, seq.Nodes())
	assert.Equal(t, core.NodeID(1), s.Incident())
}

func TestTeardownAndResetPath(t *testing.T) {
	labels := ui.NewLabels()
	s, logs := newObserved(t, graphCfg(8, 1), session.WithAttacher(labels))
	ctx := context.Background()
	require.NoError(t, s.Rebuild(ctx))
	assert.Equal(t, 28, labels.Len())

	_, err := s.RunDFS(ctx)
	require.NoError(t, err)
	require.NotZero(t, s.Playback().Len())

	s.ResetPath()
	assert.Zero(t, s.Playback().Len())
	assert.Equal(t, core.NoNode, s.Incident())

	s.Teardown()
	s.Teardown()
	assert.Equal(t, 1, logs.FilterMessage("graph destroyed").Len())
	assert.Zero(t, labels.Len())
	assert.Equal(t, 28, labels.Released())
	assert.Equal(t, uuid.Nil, s.Generation())

	_, err = s.RunDFS(ctx)
	assert.ErrorIs(t, err, session.ErrGraphNotBuilt)
	_, err = s.ShortestPath(ctx)
	assert.ErrorIs(t, err, session.ErrGraphNotBuilt)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { session.WithLogger(nil) })
	assert.Panics(t, func() { session.WithRegisterer(nil) })
	assert.Panics(t, func() { session.WithMetrics(nil) })
	assert.Panics(t, func() { session.WithAttacher(nil) })
	assert.Panics(t, func() { session.WithRand(nil) })
}
