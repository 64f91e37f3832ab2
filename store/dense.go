// SPDX-License-Identifier: MIT

package store

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// DistanceDense exports the distance matrix as a gonum *mat.Dense.
// Unreachable cells become +Inf so gonum consumers see the usual convention.
// Complexity: O(n²) time and memory.
func (g *Graph) DistanceDense() *mat.Dense {
	data := make([]float64, len(g.dist))
	for i, d := range g.dist {
		if d == Unreachable {
			data[i] = math.Inf(1)
			continue
		}
		data[i] = float64(d)
	}

	return mat.NewDense(g.n, g.n, data)
}
