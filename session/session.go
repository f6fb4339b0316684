package session

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/orbitgraph/apsp"
	"github.com/katalvlaran/orbitgraph/builder"
	"github.com/katalvlaran/orbitgraph/config"
	"github.com/katalvlaran/orbitgraph/core"
	"github.com/katalvlaran/orbitgraph/dfs"
	"github.com/katalvlaran/orbitgraph/playback"
	"github.com/katalvlaran/orbitgraph/pointcloud"
)

// Session holds the current graph and everything derived from it.
type Session struct {
	cfg      config.Graph
	kind     pointcloud.Kind
	logger   *zap.Logger
	metrics  *Metrics
	attacher core.HandleAttacher
	rng      *rand.Rand
	src      *pointcloud.Source

	graph      *core.Graph
	points     []pointcloud.Point
	engine     *apsp.Engine
	generation uuid.UUID
	traversal  *dfs.Result
	last       playback.Sequence
	incident   core.NodeID
	exit       core.NodeID
}

// New validates cfg and returns a session with no graph. Call Rebuild to
// build one.
func New(cfg config.Graph, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("session: New: %w", err)
	}
	kind, err := cfg.Kind()
	if err != nil {
		return nil, fmt.Errorf("session: New: %w: %w", config.ErrInvalidConfiguration, err)
	}

	s := &Session{
		cfg:      cfg,
		kind:     kind,
		incident: core.NoNode,
		exit:     core.NoNode,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.metrics == nil {
		s.metrics = NewMetrics(nil)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(cfg.Seed))
	}
	s.src = pointcloud.NewSource(pointcloud.WithRand(s.rng))

	return s, nil
}

// Config returns the graph configuration.
func (s *Session) Config() config.Graph { return s.cfg }

// Metrics returns the collectors this session updates.
func (s *Session) Metrics() *Metrics { return s.metrics }

// Graph returns the current graph, nil before the first Rebuild.
func (s *Session) Graph() *core.Graph { return s.graph }

// Points returns a copy of the node positions.
func (s *Session) Points() []pointcloud.Point {
	return append([]pointcloud.Point(nil), s.points...)
}

// Generation identifies the current graph; uuid.Nil when none is built.
func (s *Session) Generation() uuid.UUID { return s.generation }

// Traversal returns the last connectivity traversal, nil if none.
func (s *Session) Traversal() *dfs.Result { return s.traversal }

// Playback returns the last produced sequence.
func (s *Session) Playback() playback.Sequence { return s.last }

// Incident is the node the last traversal or path started from.
func (s *Session) Incident() core.NodeID { return s.incident }

// Exit is the node the last traversal or path ended at.
func (s *Session) Exit() core.NodeID { return s.exit }

// Distance returns the shortest distance between u and v from the current
// tables. ok is false when no tables are current.
func (s *Session) Distance(u, v core.NodeID) (float64, bool) {
	if s.engine == nil {
		return 0, false
	}
	return s.engine.Distance(u, v)
}

// Rebuild tears down the current graph and builds a new one from the
// configuration.
func (s *Session) Rebuild(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.Teardown()

	bopts := []builder.BuilderOption{builder.WithRand(s.rng)}
	if s.attacher != nil {
		bopts = append(bopts, builder.WithAttacher(s.attacher))
	}
	res, err := builder.Build(s.cfg.Nodes, s.cfg.Density, s.src, s.kind, bopts...)
	if err != nil {
		s.logger.Error("graph build failed", zap.Error(err))
		return fmt.Errorf("session: Rebuild: %w", err)
	}

	s.graph = res.Graph
	s.points = res.Points
	s.engine = apsp.NewEngine(res.Graph)
	s.generation = uuid.New()

	s.metrics.GraphsBuilt.Inc()
	s.metrics.EdgesCreated.Add(float64(res.Graph.Size()))
	s.logger.Info("graph created",
		zap.Stringer("generation", s.generation),
		zap.Int("nodes", res.Graph.Order()),
		zap.Int("edges", res.Graph.Size()),
		zap.Float64("density", s.cfg.Density),
		zap.Stringer("geometry", s.kind),
		zap.Bool("clamped", res.Clamped),
	)

	return nil
}

// Teardown releases the current graph. It is a no-op when none exists.
func (s *Session) Teardown() {
	if !s.graph.Exists() {
		return
	}
	gen := s.generation
	s.graph.Teardown()
	s.engine.Invalidate()
	s.points = nil
	s.traversal = nil
	s.generation = uuid.Nil
	s.ResetPath()
	s.logger.Info("graph destroyed", zap.Stringer("generation", gen))
}

// ResetPath drops the last playback and its endpoints.
func (s *Session) ResetPath() {
	s.last = playback.Sequence{}
	s.incident = core.NoNode
	s.exit = core.NoNode
}

// RunDFS traverses from the configured start node and keeps the result as
// the current playback.
func (s *Session) RunDFS(ctx context.Context) (*dfs.Result, error) {
	if !s.graph.Exists() {
		s.logger.Warn("graph not built")
		return nil, fmt.Errorf("session: RunDFS: %w", ErrGraphNotBuilt)
	}

	res, err := dfs.Run(s.graph, core.NodeID(s.cfg.Start), dfs.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("session: RunDFS: %w", err)
	}

	s.traversal = res
	s.last = res.Sequence
	s.incident = res.Start
	s.exit = res.Exit

	outcome := OutcomeDisconnected
	if res.Connected {
		outcome = OutcomeConnected
	}
	s.metrics.DFSRuns.WithLabelValues(outcome).Inc()
	s.logger.Info("dfs complete",
		zap.Stringer("generation", s.generation),
		zap.Int("visited", res.VisitedCount),
		zap.Int("exit", int(res.Exit)),
		zap.Bool("connected", res.Connected),
	)
	if res.Connected {
		s.logger.Info("connected graph", zap.Stringer("generation", s.generation))
	}

	return res, nil
}

// ShortestPath runs the traversal and, when the graph is connected, the
// shortest path from the incident node to the exit node.
func (s *Session) ShortestPath(ctx context.Context) (playback.Sequence, error) {
	res, err := s.RunDFS(ctx)
	if err != nil {
		return playback.Sequence{}, err
	}
	if !res.Connected {
		s.logger.Warn("graph must be connected",
			zap.Int("visited", res.VisitedCount),
			zap.Int("nodes", s.graph.Order()),
		)
		return playback.Sequence{}, fmt.Errorf("session: ShortestPath: %w", ErrNotConnected)
	}

	return s.path(ctx, res.Start, res.Exit)
}

// ShortestPathBetween reconstructs the shortest path from u to v without a
// connectivity precondition. Unreachable pairs return apsp.ErrPathNotFound.
func (s *Session) ShortestPathBetween(ctx context.Context, u, v core.NodeID) (playback.Sequence, error) {
	if !s.graph.Exists() {
		s.logger.Warn("graph not built")
		return playback.Sequence{}, fmt.Errorf("session: ShortestPathBetween: %w", ErrGraphNotBuilt)
	}

	return s.path(ctx, u, v)
}

// path computes the tables if they are missing or stale and reconstructs
// u→v as the current playback.
func (s *Session) path(ctx context.Context, u, v core.NodeID) (playback.Sequence, error) {
	if !s.engine.Computed() {
		start := time.Now()
		if err := s.engine.Compute(ctx); err != nil {
			return playback.Sequence{}, fmt.Errorf("session: %w", err)
		}
		elapsed := time.Since(start)
		s.metrics.APSPDuration.Observe(elapsed.Seconds())
		s.logger.Info("floyd-warshall completed",
			zap.Stringer("generation", s.generation),
			zap.Int("nodes", s.graph.Order()),
			zap.Duration("elapsed", elapsed),
		)
	}

	seq, err := s.engine.ReconstructPath(u, v)
	switch {
	case errors.Is(err, apsp.ErrPathNotFound):
		s.metrics.Paths.WithLabelValues(OutcomeNotFound).Inc()
		s.logger.Info("path not found", zap.Int("from", int(u)), zap.Int("to", int(v)))
		return playback.Sequence{}, fmt.Errorf("session: %w", err)
	case err != nil:
		return playback.Sequence{}, fmt.Errorf("session: %w", err)
	}

	dist, _ := s.engine.Distance(u, v)
	s.metrics.Paths.WithLabelValues(OutcomeFound).Inc()
	s.logger.Info("path found",
		zap.Int("from", int(u)),
		zap.Int("to", int(v)),
		zap.Int("hops", len(seq.Edges())),
		zap.Float64("distance", dist),
	)

	s.last = seq
	s.incident = u
	s.exit = v

	return seq, nil
}
