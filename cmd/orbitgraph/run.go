package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/orbitgraph/apsp"
	"github.com/katalvlaran/orbitgraph/config"
	"github.com/katalvlaran/orbitgraph/core"
	"github.com/katalvlaran/orbitgraph/internal/ui"
	"github.com/katalvlaran/orbitgraph/playback"
	"github.com/katalvlaran/orbitgraph/session"
)

// pathRequest selects explicit endpoints; nil means incident→exit.
type pathRequest struct {
	from, to core.NodeID
}

// run builds a graph for g and performs action, printing to w.
func (a *app) run(ctx context.Context, w io.Writer, g config.Graph, action config.Action, req *pathRequest) error {
	s, err := a.newSession(g)
	if err != nil {
		return err
	}
	if err = s.Rebuild(ctx); err != nil {
		return err
	}
	defer s.Teardown()

	a.printGraph(w, s)

	switch action {
	case config.ActionBuild:
		return nil
	case config.ActionDFS:
		res, err := s.RunDFS(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %s %s  visited %s/%s  exit n%d\n",
			ui.StatusIcon(res.Connected), connectedLabel(res.Connected),
			humanize.Comma(int64(res.VisitedCount)), humanize.Comma(int64(g.Nodes)), res.Exit)
		return a.play(ctx, w, s)
	case config.ActionPath:
		var seq playback.Sequence
		if req != nil {
			seq, err = s.ShortestPathBetween(ctx, req.from, req.to)
		} else {
			seq, err = s.ShortestPath(ctx)
		}
		switch {
		case errors.Is(err, session.ErrNotConnected):
			fmt.Fprintf(w, "  %s %s\n", ui.StatusIcon(false), ui.Bad.Sprint("graph must be connected"))
			return err
		case errors.Is(err, apsp.ErrPathNotFound):
			fmt.Fprintf(w, "  %s %s\n", ui.StatusIcon(false), ui.Warn.Sprint("path not found"))
			return err
		case err != nil:
			return err
		}
		dist, _ := s.Distance(s.Incident(), s.Exit())
		fmt.Fprintf(w, "  %s path n%d → n%d  hops %d  distance %.4g\n",
			ui.StatusIcon(true), s.Incident(), s.Exit(), len(seq.Edges()), dist)
		return a.play(ctx, w, s)
	default:
		return fmt.Errorf("unknown action %q", action)
	}
}

func (a *app) printGraph(w io.Writer, s *session.Session) {
	g := s.Graph()
	fmt.Fprintf(w, "  %s  %s nodes, %s of %s edges, %s\n",
		ui.Brand.Sprint("graph"),
		humanize.Comma(int64(g.Order())),
		humanize.Comma(int64(g.Size())),
		humanize.Comma(int64(g.MaxEdges())),
		s.Config().Geometry,
	)
	fmt.Fprintf(w, "  %s\n", ui.Subtle.Sprint("generation "+s.Generation().String()))
}

func (a *app) play(ctx context.Context, w io.Writer, s *session.Session) error {
	if a.quiet {
		return nil
	}
	p := ui.NewPlayer(w, a.cfg.Playback.Delay())
	p.Labels = a.labels
	p.Incident, p.Exit = s.Incident(), s.Exit()
	ui.Legend(w)
	_, err := p.Play(ctx, s.Playback())

	return err
}

func connectedLabel(ok bool) string {
	if ok {
		return ui.Good.Sprint("connected")
	}
	return ui.Bad.Sprint("not connected")
}
