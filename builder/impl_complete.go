// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_complete.go: Complete: every ordered pair (u,v), u ≠ v.
//
// Complexity: O(n²) edges. Emission order: u asc, then v asc.

package builder

import "github.com/katalvlaran/apsp/store"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 2
)

// Complete returns a Constructor for the complete directed graph.
func Complete() Constructor {
	return func(g *store.Graph, cfg builderConfig) error {
		if err := requireOrder(methodComplete, g, minCompleteNodes); err != nil {
			return err
		}
		n := g.Order()
		for u := 0; u < n; u++ {
			for v := 0; v < n; v++ {
				if u == v {
					continue
				}
				if err := addEdge(methodComplete, g, cfg, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
