// Command orbitgraph builds random graphs over 3D point clouds and replays
// their connectivity traversal and shortest paths in the terminal.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/orbitgraph/internal/ui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := runCLI(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// runCLI executes the root command and returns the process exit code.
// Errors are printed to stderr since the root command silences them.
func runCLI(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		ui.Bad.Fprintf(stderr, "%s %v\n", ui.StatusIcon(false), err)
		return 1
	}

	return 0
}
