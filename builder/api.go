// SPDX-License-Identifier: MIT
// Package: bellmanford/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Every constructor appends its own block of fresh nodes, so constructors
//     compose into disjoint components; node indices continue where the
//     previous constructor stopped.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic at runtime; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/bellmanford/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Add nodes only through core.Graph.AddNode.
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately.
//
// Errors:
//   - Wraps constructor errors via %w; callers should branch with errors.Is
//     against builder sentinels (ErrTooFewVertices, ErrInvalidProbability, ...)
//     or core.ErrNodeLimit when gopts carry a node cap.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Topology names accepted by ByName.
const (
	TopologyPath     = "path"
	TopologyCycle    = "cycle"
	TopologyStar     = "star"
	TopologyComplete = "complete"
	TopologyGrid     = "grid"
	TopologyRandom   = "random"
)

// Topologies lists every name ByName understands, in display order.
var Topologies = []string{TopologyPath, TopologyCycle, TopologyStar, TopologyComplete, TopologyGrid, TopologyRandom}

// ByName resolves a topology name to a Constructor over n nodes.
// Grid lays n nodes out as a near-square rows×cols block (rows = ⌊√n⌋, at least 1)
// and uses only rows*cols of them; random samples each ordered pair with probability p.
func ByName(name string, n int, p float64) (Constructor, error) {
	switch name {
	case TopologyPath:
		return Path(n), nil
	case TopologyCycle:
		return Cycle(n), nil
	case TopologyStar:
		return Star(n), nil
	case TopologyComplete:
		return Complete(n), nil
	case TopologyGrid:
		rows := 1
		for (rows+1)*(rows+1) <= n {
			rows++
		}
		return Grid(rows, n/rows), nil
	case TopologyRandom:
		return RandomSparse(n, p), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownTopology, name)
}

// addNodes appends n nodes to g and returns the index of the first one.
func addNodes(g *core.Graph, method string, n int) (int, error) {
	first := g.NodeCount()
	for i := 0; i < n; i++ {
		if _, err := g.AddNode(); err != nil {
			return 0, fmt.Errorf("%s: AddNode(#%d): %w", method, i, err)
		}
	}

	return first, nil
}
