package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/orbitgraph/core"
	"github.com/katalvlaran/orbitgraph/dfs"
)

// ExampleRun walks a square with one diagonal and prints the playback.
// Tree edges and nodes are marked with '*'.
func ExampleRun() {
	g, _ := core.New(4)
	_, _ = g.AddEdge(0, 1, 1) // e0
	_, _ = g.AddEdge(1, 2, 1) // e1
	_, _ = g.AddEdge(2, 3, 1) // e2
	_, _ = g.AddEdge(3, 0, 1) // e3
	_, _ = g.AddEdge(0, 2, 1) // e4

	res, err := dfs.Run(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i, step := range res.Sequence.All() {
		mark := ""
		if step.Final {
			mark = "*"
		}
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Print(step.Ref, mark)
	}
	fmt.Println()
	fmt.Println("connected:", res.Connected, "exit:", res.Exit)

	// Output:
	// n0* e0* n1* e1* n2* e4 e2* n3* e3
	// connected: true exit: 3
}
