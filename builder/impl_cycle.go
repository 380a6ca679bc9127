// SPDX-License-Identifier: MIT
// Package: bellmanford/builder
//
// impl_cycle.go — implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices); n = 2 yields the two-node cycle b ⇄ b+1.
//   • Appends n nodes and emits edges in stable order i → (i+1)%n for i=0..n-1.
//
// Complexity: O(n) nodes + O(n) edges.
//
// With negative weights this is the smallest family that exercises
// negative-cycle detection: the cycle is negative iff its weights sum below 0.

package builder

import (
	"fmt"

	"github.com/katalvlaran/bellmanford/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 2
)

// Cycle returns a Constructor that builds an n-node directed cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		b, err := addNodes(g, methodCycle, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			u, v := b+i, b+(i+1)%n
			w := cfg.weight()
			if err = g.AddEdge(u, v, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w", methodCycle, u, v, w, err)
			}
		}

		return nil
	}
}
