package session

import (
	"math/rand"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/katalvlaran/orbitgraph/core"
)

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("session: WithLogger(nil)")
	}
	return func(s *Session) {
		s.logger = l
	}
}

// WithRegisterer registers a fresh metrics set on reg. Panics on nil.
// Registering twice on the same reg panics; share metrics between sessions
// with WithMetrics.
func WithRegisterer(reg prometheus.Registerer) Option {
	if reg == nil {
		panic("session: WithRegisterer(nil)")
	}
	return func(s *Session) {
		s.metrics = NewMetrics(reg)
	}
}

// WithMetrics shares an existing metrics set. Panics on nil.
func WithMetrics(m *Metrics) Option {
	if m == nil {
		panic("session: WithMetrics(nil)")
	}
	return func(s *Session) {
		s.metrics = m
	}
}

// WithAttacher forwards a handle attacher to every built graph. Panics on nil.
func WithAttacher(a core.HandleAttacher) Option {
	if a == nil {
		panic("session: WithAttacher(nil)")
	}
	return func(s *Session) {
		s.attacher = a
	}
}

// WithRand sets the random source for points and edges. Panics on nil.
// Without it the session seeds its own source from the configured seed.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("session: WithRand(nil)")
	}
	return func(s *Session) {
		s.rng = r
	}
}
