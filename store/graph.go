// SPDX-License-Identifier: MIT
// Package: store
//
// Purpose:
//   - Construction, edge ingestion and accessors for the dense Graph Store.
//
// Contract:
//   - New allocates an edgeless graph: dist = Unreachable off-diagonal, 0 on
//     the diagonal; path = NoPredecessor everywhere.
//   - FromSlices borrows caller storage; nothing is copied.
//   - SetEdge follows the loader rule dist[u][v] = w, path[u][v] = u and
//     ignores self pairs.

package store

import (
	"fmt"
	"math"
)

// New creates an n-vertex graph without edges.
// Complexity: O(n²) time and memory.
func New(n int) (*Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("New(%d): %w", n, ErrBadOrder)
	}

	g := &Graph{
		n:    n,
		dist: make([]float32, n*n),
		path: make([]int32, n*n),
	}
	g.reset()

	return g, nil
}

// FromSlices wraps caller-owned row-major matrices without copying them.
// The caller keeps ownership; solvers write results back into the same slices.
func FromSlices(n int, dist []float32, path []int32) (*Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("FromSlices(%d): %w", n, ErrBadOrder)
	}
	if len(dist) != n*n || len(path) != n*n {
		return nil, fmt.Errorf("FromSlices(%d): len(dist)=%d len(path)=%d: %w",
			n, len(dist), len(path), ErrDimensionMismatch)
	}

	return &Graph{n: n, dist: dist, path: path}, nil
}

// reset restores the edgeless state.
func (g *Graph) reset() {
	var i, j, base int
	for i = 0; i < g.n; i++ {
		base = i * g.n
		for j = 0; j < g.n; j++ {
			g.path[base+j] = NoPredecessor
			if i == j {
				g.dist[base+j] = 0
				continue
			}
			g.dist[base+j] = Unreachable
		}
	}
}

// Order returns the number of vertices.
func (g *Graph) Order() int { return g.n }

// Distances returns the row-major distance matrix backing g.
// The slice aliases g's storage.
func (g *Graph) Distances() []float32 { return g.dist }

// Predecessors returns the row-major predecessor matrix backing g.
// The slice aliases g's storage.
func (g *Graph) Predecessors() []int32 { return g.path }

// checkPair validates both endpoints.
func (g *Graph) checkPair(u, v int) error {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return fmt.Errorf("(%d,%d) with n=%d: %w", u, v, g.n, ErrOutOfRange)
	}

	return nil
}

// SetEdge records a direct edge u→v of weight w.
//
// Self pairs are ignored so the diagonal always stays 0 / NoPredecessor.
// A repeated edge overwrites the previous weight (last write wins).
func (g *Graph) SetEdge(u, v int, w float32) error {
	if err := g.checkPair(u, v); err != nil {
		return fmt.Errorf("SetEdge: %w", err)
	}
	if !ValidWeight(w) {
		return fmt.Errorf("SetEdge(%d,%d,%g): %w", u, v, w, ErrInvalidWeight)
	}
	if u == v {
		return nil
	}

	idx := u*g.n + v
	g.dist[idx] = w
	g.path[idx] = int32(u)

	return nil
}

// ValidWeight reports whether w may be used as an edge weight:
// finite, non-negative and strictly below Unreachable.
func ValidWeight(w float32) bool {
	f := float64(w)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}

	return w >= 0 && w < Unreachable
}

// Distance returns dist[u][v].
func (g *Graph) Distance(u, v int) (float32, error) {
	if err := g.checkPair(u, v); err != nil {
		return 0, fmt.Errorf("Distance: %w", err)
	}

	return g.dist[u*g.n+v], nil
}

// Predecessor returns path[u][v].
func (g *Graph) Predecessor(u, v int) (int32, error) {
	if err := g.checkPair(u, v); err != nil {
		return 0, fmt.Errorf("Predecessor: %w", err)
	}

	return g.path[u*g.n+v], nil
}

// Reachable reports whether a path u→v is known. Out-of-range pairs are unreachable.
func (g *Graph) Reachable(u, v int) bool {
	if g.checkPair(u, v) != nil {
		return false
	}

	return g.dist[u*g.n+v] != Unreachable
}

// Clone returns a deep copy of g.
// Complexity: O(n²).
func (g *Graph) Clone() *Graph {
	dist := make([]float32, len(g.dist))
	path := make([]int32, len(g.path))
	copy(dist, g.dist)
	copy(path, g.path)

	return &Graph{n: g.n, dist: dist, path: path}
}

// Equal reports whether a and b have the same order and bit-identical matrices.
// Two nil graphs are equal.
func Equal(a, b *Graph) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.n != b.n {
		return false
	}
	for i := range a.dist {
		if math.Float32bits(a.dist[i]) != math.Float32bits(b.dist[i]) {
			return false
		}
		if a.path[i] != b.path[i] {
			return false
		}
	}

	return true
}
