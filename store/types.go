// SPDX-License-Identifier: MIT

package store

import "math"

const (
	// Unreachable is the finite distance sentinel for "no known path".
	// Real path weights are always strictly smaller.
	Unreachable float32 = math.MaxFloat32

	// MaxPathWeight bounds the worst-case simple-path weight of an input
	// graph. Below it no relaxation sum can reach Unreachable or overflow.
	MaxPathWeight float32 = math.MaxFloat32 / 2

	// NoPredecessor marks a cell without a predecessor (self pair or unreachable).
	NoPredecessor int32 = -1
)

// Graph is the dense distance/predecessor pair of an n-vertex directed graph.
// Both matrices are stored row-major in flat slices of length n*n.
type Graph struct {
	n    int       // vertex count
	dist []float32 // distances, row-major
	path []int32   // predecessors, row-major
}
