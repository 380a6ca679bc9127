package main

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/bellmanford/bellmanford"
	"github.com/katalvlaran/bellmanford/bfs"
	"github.com/katalvlaran/bellmanford/core"
	"github.com/katalvlaran/bellmanford/dijkstra"
)

var errMismatch = errors.New("verification failed")

// verify checks a terminal state against two oracles: BFS reachability, which
// holds for every graph, and Dijkstra distances where Dijkstra applies.
func verify(g *core.Graph, source int, final bellmanford.State) (string, error) {
	reach, err := bfs.Reachable(g, source)
	if err != nil {
		return "", err
	}
	for v, d := range final.Distances() {
		if d.Reachable() != reach[v] {
			return "", fmt.Errorf("%w: node %d has distance %s but reachable=%t", errMismatch, v, d, reach[v])
		}
	}

	if final.Status() == bellmanford.NegativeCycleDetected {
		return "reachability ok; dijkstra skipped (negative cycle)", nil
	}
	want, err := dijkstra.Dijkstra(g, source)
	if errors.Is(err, dijkstra.ErrNegativeWeight) {
		return "reachability ok; dijkstra skipped (negative weights)", nil
	}
	if err != nil {
		return "", err
	}
	for v, d := range final.Distances() {
		got, ok := d.Value()
		if ok && got != want[v] {
			return "", fmt.Errorf("%w: node %d: bellman-ford %d, dijkstra %s", errMismatch, v, got, oracleString(want[v]))
		}
	}

	return fmt.Sprintf("reachability ok; dijkstra ok (%d nodes match)", len(want)), nil
}

func oracleString(d int64) string {
	if d == dijkstra.Unreachable {
		return "∞"
	}

	return fmt.Sprint(d)
}
