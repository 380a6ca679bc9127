// SPDX-License-Identifier: MIT
// Package: bellmanford/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - The first appended node b is the hub; b+1..b+n-1 are leaves.
//   - Emits spokes in stable order hub → leaf, then leaf → hub, per leaf.
//
// Complexity: O(n) nodes + O(2n-2) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/bellmanford/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with a hub and n-1 leaves,
// connected in both directions.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		hub, err := addNodes(g, methodStar, n)
		if err != nil {
			return err
		}
		for leaf := hub + 1; leaf < hub+n; leaf++ {
			for _, e := range [2][2]int{{hub, leaf}, {leaf, hub}} {
				w := cfg.weight()
				if err = g.AddEdge(e[0], e[1], w); err != nil {
					return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w", methodStar, e[0], e[1], w, err)
				}
			}
		}

		return nil
	}
}
