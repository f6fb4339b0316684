package session

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "orbitgraph"

// Outcome labels.
const (
	OutcomeConnected    = "connected"
	OutcomeDisconnected = "disconnected"
	OutcomeFound        = "found"
	OutcomeNotFound     = "not_found"
)

// Metrics holds the Prometheus collectors updated by sessions.
type Metrics struct {
	GraphsBuilt  prometheus.Counter
	EdgesCreated prometheus.Counter
	DFSRuns      *prometheus.CounterVec
	APSPDuration prometheus.Histogram
	Paths        *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them on reg.
// A nil reg gets a private registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	m := &Metrics{
		GraphsBuilt: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "graphs_built_total",
			Help:      "Total number of graphs built",
		}),
		EdgesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "edges_created_total",
			Help:      "Total number of edges placed across all builds",
		}),
		DFSRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dfs_runs_total",
			Help:      "Connectivity traversals by outcome",
		}, []string{"outcome"}),
		APSPDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "floyd_warshall_duration_seconds",
			Help:      "Floyd-Warshall computation time in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
		Paths: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "path_reconstructions_total",
			Help:      "Shortest-path reconstructions by outcome",
		}, []string{"outcome"}),
	}
	reg.MustRegister(m.GraphsBuilt, m.EdgesCreated, m.DFSRuns, m.APSPDuration, m.Paths)

	return m
}
