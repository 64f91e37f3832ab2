// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_grid.go: Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal grid with 4-neighborhood over vertices 0..rows·cols-1,
//     vertex r·cols+c at row r, column c (row-major).
//   • For each cell emit Right then Bottom neighbor, each as a pair of arcs
//     (forward first) so the neighborhood is symmetric.
//
// Contract:
//   • rows ≥ 1, cols ≥ 1 and rows·cols ≤ n (else ErrTooFewVertices).
//   • Vertices beyond rows·cols stay isolated.
//
// Complexity: O(rows·cols).

package builder

import (
	"fmt"

	"github.com/katalvlaran/apsp/store"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *store.Graph, cfg builderConfig) error {
		// 1) Validate parameters early.
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		if rows*cols > g.Order() {
			return fmt.Errorf("%s: %dx%d cells exceed n=%d: %w",
				methodGrid, rows, cols, g.Order(), ErrTooFewVertices)
		}

		// 2) Emit Right and Bottom neighbors per cell.
		link := func(u, v int) error {
			if err := addEdge(methodGrid, g, cfg, u, v); err != nil {
				return err
			}

			return addEdge(methodGrid, g, cfg, v, u)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					if err := link(u, u+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(u, u+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
