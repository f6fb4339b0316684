package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/orbitgraph/config"
	"github.com/katalvlaran/orbitgraph/internal/logging"
	"github.com/katalvlaran/orbitgraph/internal/ui"
	"github.com/katalvlaran/orbitgraph/session"
)

var version = "0.3.0"

// app carries state shared by every command of one invocation.
type app struct {
	configPath string
	noColor    bool
	quiet      bool
	metrics    bool

	// overrides, applied only when the flag was set
	nodes    int
	density  float64
	geometry string
	seed     int64
	start    int
	delayMS  int
	logLevel string
	logFile  string

	cfg      config.Config
	logger   *zap.Logger
	cleanup  func()
	registry *prometheus.Registry
	sm       *session.Metrics
	labels   *ui.Labels
}

func newRootCmd() *cobra.Command {
	a := &app{cleanup: func() {}}

	root := &cobra.Command{
		Use:   "orbitgraph",
		Short: "orbitgraph: random graphs on point clouds, traversed and replayed",
		Long: ui.Brand.Sprint(ui.Orbit+" orbitgraph") + ": random weighted graphs over 3D point clouds\n" +
			ui.Subtle.Sprint("Build a graph, check connectivity by depth-first search, replay shortest paths"),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.metrics {
				a.dumpMetrics(cmd.OutOrStdout())
			}
			a.cleanup()
		},
	}
	root.SetVersionTemplate("orbitgraph {{ .Version }}\n")

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "config file (.toml, .yaml)")
	pf.IntVarP(&a.nodes, "nodes", "n", config.DefaultNodes, "number of nodes")
	pf.Float64VarP(&a.density, "density", "d", config.DefaultDensity, "fraction of all node pairs joined by an edge")
	pf.StringVarP(&a.geometry, "geometry", "g", config.DefaultGeometry, "point cloud: sphere, sphere_surface, galaxy, circle_arc, circle")
	pf.Int64Var(&a.seed, "seed", config.DefaultSeed, "random seed")
	pf.IntVar(&a.start, "start", 0, "traversal start node")
	pf.IntVar(&a.delayMS, "delay", config.DefaultDelayMS, "playback delay per step in milliseconds")
	pf.StringVar(&a.logLevel, "log-level", config.DefaultLevel, "log level: debug, info, warn, error")
	pf.StringVar(&a.logFile, "log-file", "", "write logs to a rotating file instead of stderr")
	pf.BoolVar(&a.noColor, "no-color", false, "disable colored output")
	pf.BoolVarP(&a.quiet, "quiet", "q", false, "skip playback, print the summary only")
	pf.BoolVar(&a.metrics, "metrics", false, "print collected metrics on exit")

	root.AddCommand(
		buildCmd(a),
		dfsCmd(a),
		pathCmd(a),
		presetCmd(a),
		sweepCmd(a),
	)

	return root
}

// setup loads the config file, applies flag overrides, validates and
// builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	if a.noColor {
		color.NoColor = true
	}

	a.cfg = config.Default()
	if a.configPath != "" {
		cfg, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}

	flags := cmd.Flags()
	if flags.Changed("nodes") {
		a.cfg.Graph.Nodes = a.nodes
	}
	if flags.Changed("density") {
		a.cfg.Graph.Density = a.density
	}
	if flags.Changed("geometry") {
		a.cfg.Graph.Geometry = a.geometry
	}
	if flags.Changed("seed") {
		a.cfg.Graph.Seed = a.seed
	}
	if flags.Changed("start") {
		a.cfg.Graph.Start = a.start
	}
	if flags.Changed("delay") {
		a.cfg.Playback.DelayMS = a.delayMS
	}
	if flags.Changed("log-level") {
		a.cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-file") {
		a.cfg.Log.File = a.logFile
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	logger, cleanup, err := logging.New(a.cfg.Log)
	if err != nil {
		return err
	}
	a.logger, a.cleanup = logger, cleanup
	a.registry = prometheus.NewRegistry()
	a.labels = ui.NewLabels()

	return nil
}

// newSession builds a session for graph configuration g.
func (a *app) newSession(g config.Graph) (*session.Session, error) {
	return session.New(g,
		session.WithLogger(a.logger),
		session.WithMetrics(a.sharedMetrics()),
		session.WithAttacher(a.labels),
	)
}

// sharedMetrics registers one metrics set per invocation.
func (a *app) sharedMetrics() *session.Metrics {
	if a.sm == nil {
		a.sm = session.NewMetrics(a.registry)
	}
	return a.sm
}

// dumpMetrics prints counters and histogram sample counts.
func (a *app) dumpMetrics(w io.Writer) {
	if a.registry == nil {
		return
	}
	families, err := a.registry.Gather()
	if err != nil {
		ui.Bad.Fprintf(w, "  metrics: %v\n", err)
		return
	}

	fmt.Fprintln(w)
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			name := mf.GetName()
			for _, lp := range m.GetLabel() {
				name += fmt.Sprintf("{%s=%q}", lp.GetName(), lp.GetValue())
			}
			switch {
			case m.GetCounter() != nil:
				fmt.Fprintf(w, "  %s %s\n", ui.Subtle.Sprint(name), fmt.Sprint(m.GetCounter().GetValue()))
			case m.GetHistogram() != nil:
				h := m.GetHistogram()
				fmt.Fprintf(w, "  %s count=%d sum=%g\n", ui.Subtle.Sprint(name), h.GetSampleCount(), h.GetSampleSum())
			}
		}
	}
}
