package session

import (
	"context"
	"fmt"
	"math/rand"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/orbitgraph/config"
)

// SweepResult summarizes the trials run at one density.
type SweepResult struct {
	Density   float64
	Trials    int
	Connected int
	Edges     int // summed over trials
}

// Probability is the fraction of trials that produced a connected graph.
func (r SweepResult) Probability() float64 {
	if r.Trials == 0 {
		return 0
	}
	return float64(r.Connected) / float64(r.Trials)
}

// MeanEdges is the average edge count per trial.
func (r SweepResult) MeanEdges() float64 {
	if r.Trials == 0 {
		return 0
	}
	return float64(r.Edges) / float64(r.Trials)
}

type trial struct {
	connected bool
	edges     int
}

// Sweep estimates connectivity probability per density. For every density
// it builds trials independent graphs and runs the traversal on each, at
// most concurrency at a time. Trial t at density index d uses seed
// cfg.Seed + d*trials + t, so results are reproducible whatever the
// scheduling.
//
// opts are resolved once: every trial shares the logger and one metrics set,
// so WithRegisterer registers a single time. WithRand is replaced per trial.
// WithAttacher is rejected with ErrSharedAttacher because trials build
// graphs concurrently.
func Sweep(ctx context.Context, cfg config.Graph, densities []float64, trials, concurrency int, opts ...Option) ([]SweepResult, error) {
	if trials < 1 {
		return nil, fmt.Errorf("session: Sweep: trials=%d: %w", trials, config.ErrInvalidConfiguration)
	}
	if concurrency < 1 {
		concurrency = 4
	}
	for _, d := range densities {
		c := cfg
		c.Density = d
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("session: Sweep: %w", err)
		}
	}

	shared := &Session{}
	for _, opt := range opts {
		opt(shared)
	}
	if shared.attacher != nil {
		return nil, fmt.Errorf("session: Sweep: %w", ErrSharedAttacher)
	}
	if shared.logger == nil {
		shared.logger = zap.NewNop()
	}
	if shared.metrics == nil {
		shared.metrics = NewMetrics(nil)
	}

	outcomes := make([]trial, len(densities)*trials)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for di, density := range densities {
		for t := 0; t < trials; t++ {
			idx := di*trials + t
			c := cfg
			c.Density = density
			c.Seed = cfg.Seed + int64(idx)

			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				s, err := New(c,
					WithLogger(shared.logger),
					WithMetrics(shared.metrics),
					WithRand(rand.New(rand.NewSource(c.Seed))))
				if err != nil {
					return err
				}
				if err = s.Rebuild(gctx); err != nil {
					return err
				}
				defer s.Teardown()

				res, err := s.RunDFS(gctx)
				if err != nil {
					return err
				}
				outcomes[idx] = trial{connected: res.Connected, edges: s.Graph().Size()}

				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("session: Sweep: %w", err)
	}

	results := make([]SweepResult, len(densities))
	for di, density := range densities {
		r := SweepResult{Density: density, Trials: trials}
		for _, o := range outcomes[di*trials : (di+1)*trials] {
			if o.connected {
				r.Connected++
			}
			r.Edges += o.edges
		}
		results[di] = r
	}

	return results, nil
}
