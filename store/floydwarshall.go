// SPDX-License-Identifier: MIT
// Package: store
//
// Purpose:
//   - Canonical sequential APSP (Floyd–Warshall) with predecessor maintenance.
//   - Reference oracle for the blocked engine; same relaxation rule, same
//     sentinel arithmetic, deterministic k → i → j loop order.
//
// Contract:
//   - Input must pass ValidateInput (diagonal 0 / NoPredecessor,
//     non-negative weights, no path able to overflow the sentinel).
//   - Unreachable means "no path".

package store

import "fmt"

const opFloydWarshall = "FloydWarshall"

// FloydWarshall computes all-pairs shortest paths in place on g.
// Time O(n³); extra space O(1).
func FloydWarshall(g *Graph) error {
	if err := ValidateInput(g); err != nil {
		return fmt.Errorf("%s: %w", opFloydWarshall, err)
	}
	floydWarshallInPlace(g)

	return nil
}

// floydWarshallInPlace is the unchecked kernel behind FloydWarshall.
func floydWarshallInPlace(g *Graph) {
	n := g.n
	dist, path := g.dist, g.path

	var (
		k, i, j      int
		baseK, baseI int
		ik, cand     float32
		ok           bool
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			baseI = i * n
			ik = dist[baseI+k]
			if ik == Unreachable {
				continue // nothing routes through k from i
			}
			for j = 0; j < n; j++ {
				if cand, ok = Relax(ik, dist[baseK+j], dist[baseI+j]); ok {
					dist[baseI+j] = cand
					path[baseI+j] = path[baseK+j]
				}
			}
		}
	}
}
