package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/orbitgraph/config"
	"github.com/katalvlaran/orbitgraph/core"
	"github.com/katalvlaran/orbitgraph/internal/ui"
	"github.com/katalvlaran/orbitgraph/session"
)

func buildCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Build a graph and print its summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd.Context(), cmd.OutOrStdout(), a.cfg.Graph, config.ActionBuild, nil)
		},
	}
}

func dfsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dfs",
		Short: "Build a graph and replay its depth-first traversal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd.Context(), cmd.OutOrStdout(), a.cfg.Graph, config.ActionDFS, nil)
		},
	}
}

func pathCmd(a *app) *cobra.Command {
	var from, to int
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Build a graph and replay a shortest path",
		Long: "Without --from/--to the graph must be connected and the path runs from\n" +
			"the traversal start to the last node it discovered.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var req *pathRequest
			if cmd.Flags().Changed("from") || cmd.Flags().Changed("to") {
				req = &pathRequest{from: core.NodeID(from), to: core.NodeID(to)}
			}
			return a.run(cmd.Context(), cmd.OutOrStdout(), a.cfg.Graph, config.ActionPath, req)
		},
	}
	cmd.Flags().IntVar(&from, "from", 0, "path source node")
	cmd.Flags().IntVar(&to, "to", 0, "path destination node")

	return cmd
}

func presetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "preset <name>",
		Short:     "Run one of the demo setups",
		Long:      "Presets: one (dfs on a dense sphere), two (large empty galaxy),\nthree (small circle dfs), four (sparse galaxy shortest path).",
		Args:      cobra.ExactArgs(1),
		ValidArgs: config.PresetNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := config.PresetByName(args[0])
			if err != nil {
				return err
			}
			a.cfg = applyPreset(a.cfg, p, cmd.Flags().Changed("delay"))
			ui.Banner(cmd.OutOrStdout(), "preset "+p.Name)
			return a.run(cmd.Context(), cmd.OutOrStdout(), a.cfg.Graph, p.Action, nil)
		},
	}
}

// applyPreset installs the preset's graph and delay. An explicit --delay wins.
func applyPreset(cfg config.Config, p config.Preset, keepDelay bool) config.Config {
	out := p.Apply(cfg)
	if keepDelay {
		out.Playback = cfg.Playback
	}
	return out
}

func sweepCmd(a *app) *cobra.Command {
	var (
		densities   []float64
		trials      int
		concurrency int
	)
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Estimate connectivity probability across densities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			results, err := session.Sweep(cmd.Context(), a.cfg.Graph, densities, trials, concurrency,
				session.WithLogger(a.logger), session.WithMetrics(a.sharedMetrics()))
			if err != nil {
				return err
			}

			ui.Banner(w, fmt.Sprintf("sweep, %d nodes, %d trials", a.cfg.Graph.Nodes, trials))
			rows := make([][]string, 0, len(results))
			for _, r := range results {
				rows = append(rows, []string{
					strconv.FormatFloat(r.Density, 'g', -1, 64),
					fmt.Sprintf("%d/%d", r.Connected, r.Trials),
					strconv.FormatFloat(r.Probability(), 'f', 2, 64),
					strconv.FormatFloat(r.MeanEdges(), 'f', 1, 64),
				})
			}
			ui.Table(w, []string{"density", "connected", "p", "edges"}, rows)

			return nil
		},
	}
	cmd.Flags().Float64SliceVar(&densities, "densities", []float64{0.01, 0.02, 0.05, 0.1, 0.2}, "densities to try")
	cmd.Flags().IntVar(&trials, "trials", 10, "graphs per density")
	cmd.Flags().IntVar(&concurrency, "concurrency", 4, "parallel trials")

	return cmd
}
