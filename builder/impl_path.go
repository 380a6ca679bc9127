// SPDX-License-Identifier: MIT
// Package: bellmanford/builder
//
// impl_path.go — implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Appends n nodes b..b+n-1 and emits b+i → b+i+1 for i = 0..n-2.
//
// Complexity: O(n) nodes + O(n) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/bellmanford/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a directed simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		b, err := addNodes(g, methodPath, n)
		if err != nil {
			return err
		}
		for i := 0; i < n-1; i++ {
			w := cfg.weight()
			if err = g.AddEdge(b+i, b+i+1, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w", methodPath, b+i, b+i+1, w, err)
			}
		}

		return nil
	}
}
