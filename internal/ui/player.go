package ui

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/katalvlaran/orbitgraph/core"
	"github.com/katalvlaran/orbitgraph/playback"
)

// Player writes a playback sequence one step at a time, pausing Delay
// between steps. Nodes print as "n<id>", edges as their label when Labels
// knows them. Incident and Exit nodes get their own styles; other steps are
// styled by their Final flag.
type Player struct {
	W        io.Writer
	Delay    time.Duration
	Labels   *Labels
	Incident core.NodeID
	Exit     core.NodeID
}

// NewPlayer returns a Player without endpoint highlighting.
func NewPlayer(w io.Writer, delay time.Duration) *Player {
	return &Player{W: w, Delay: delay, Incident: core.NoNode, Exit: core.NoNode}
}

// Play writes seq and returns the number of steps shown. It stops early with
// ctx.Err() when ctx is done.
func (p *Player) Play(ctx context.Context, seq playback.Sequence) (int, error) {
	shown := 0
	for i, step := range seq.All() {
		if err := ctx.Err(); err != nil {
			return shown, err
		}
		if i > 0 && p.Delay > 0 {
			select {
			case <-ctx.Done():
				return shown, ctx.Err()
			case <-time.After(p.Delay):
			}
		}

		if i > 0 {
			fmt.Fprint(p.W, " ")
		}
		p.style(step).Fprint(p.W, p.token(step.Ref))
		shown++
	}
	if shown > 0 {
		fmt.Fprintln(p.W)
	}

	return shown, nil
}

func (p *Player) token(ref playback.Ref) string {
	if ref.IsEdge() && p.Labels != nil {
		if s, ok := p.Labels.Edge(core.EdgeID(ref.ID)); ok {
			return s
		}
	}
	return ref.String()
}

func (p *Player) style(step playback.Step) *color.Color {
	if step.Ref.IsNode() {
		switch core.NodeID(step.Ref.ID) {
		case p.Incident:
			return IncidentStyle
		case p.Exit:
			return TerminationStyle
		}
	}
	if step.Final {
		return PathStyle
	}
	return SequenceStyle
}

// Legend prints the style key.
func Legend(w io.Writer) {
	fmt.Fprintf(w, "%s %s %s %s %s\n",
		StdStyle.Sprint("std"),
		SequenceStyle.Sprint("explored"),
		PathStyle.Sprint("path"),
		IncidentStyle.Sprint("incident"),
		TerminationStyle.Sprint("exit"),
	)
}
