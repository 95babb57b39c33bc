// SPDX-License-Identifier: MIT

// Command algoviz animates graph traversals in the terminal.
//
//	algoviz run --scenario graph.yaml --algorithm dijkstra
//	algoviz demo --shape wheel -n 7 --algorithm bfs --pacing 250ms
//	algoviz version
//
// SIGINT cancels the active run cooperatively; the command then prints the
// last frame and "cancelled" and exits 0.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
