// bellmanford animates, saves and reports stepwise Bellman-Ford runs.
//
// Usage:
//
//	bellmanford run graph.yaml [more.yaml ...] [--delay=200ms] [--verify] [--save]
//	bellmanford new graph.yaml [--name=demo]
//	bellmanford step <session-id> [-n 5]
//	bellmanford show <session-id> [--query='.distances']
//	bellmanford report <session-id> [--format=table|markdown|json]
//	bellmanford sessions [delete <session-id>]
//	bellmanford check [--graphs=500] [--nodes=8] [--seed=1]
//	bellmanford generate [--topology=random] [--nodes=6] [--weights=uniform|normal] [--seed=1] [-o graph.yaml]
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
