// SPDX-License-Identifier: MIT
// Package: bellmanford/builder
//
// impl_grid.go — implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal grid with 4-neighborhood; cell (r,c) is node b + r*cols + c.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • For each cell in row-major order emit Right then Bottom, each followed
//     by its reverse arc.
//
// Complexity: O(rows*cols) nodes + O(4*rows*cols) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/bellmanford/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		b, err := addNodes(g, methodGrid, rows*cols)
		if err != nil {
			return err
		}
		cell := func(r, c int) int { return b + r*cols + c }

		link := func(u, v int) error {
			for _, e := range [2][2]int{{u, v}, {v, u}} {
				w := cfg.weight()
				if err := g.AddEdge(e[0], e[1], w); err != nil {
					return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w", methodGrid, e[0], e[1], w, err)
				}
			}
			return nil
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err = link(cell(r, c), cell(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err = link(cell(r, c), cell(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
