// SPDX-License-Identifier: MIT
// Package: store
//
// Purpose:
//   - Single source of truth for Graph sanity checks used by the solvers.
//
// Note:
//   - Each composite validator runs a fixed sequence (nil -> shape -> diagonal
//     -> cells) and stops at the first violation.

package store

import (
	"fmt"
	"math"
)

// validatorErrorf tags an underlying sentinel with the validator name.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Validate checks that g is non-nil, that both matrices hold n*n cells and
// that the diagonal is 0 / NoPredecessor.
// Complexity: O(n).
func Validate(g *Graph) error {
	if g == nil {
		return validatorErrorf("Validate", ErrNilGraph)
	}
	if g.n < 1 {
		return validatorErrorf("Validate", ErrBadOrder)
	}
	if len(g.dist) != g.n*g.n || len(g.path) != g.n*g.n {
		return validatorErrorf("Validate", ErrDimensionMismatch)
	}

	var i, idx int
	for i = 0; i < g.n; i++ {
		idx = i*g.n + i
		if g.dist[idx] != 0 {
			return fmt.Errorf("Validate: dist[%d][%d]=%g: %w", i, i, g.dist[idx], ErrNonZeroDiagonal)
		}
		if g.path[idx] != NoPredecessor {
			return fmt.Errorf("Validate: path[%d][%d]=%d: %w", i, i, g.path[idx], ErrBadPredecessor)
		}
	}

	return nil
}

// ValidateInput runs Validate and then checks every cell: distances must be
// non-negative and not NaN, predecessors must lie in [-1, n).
//
// A simple path leaves every vertex at most once, so the sum of the largest
// finite entry of each row bounds every shortest-path weight. That sum must
// not exceed MaxPathWeight (ErrPathOverflow); otherwise a real path could
// collapse into the Unreachable sentinel.
// Complexity: O(n²).
func ValidateInput(g *Graph) error {
	if err := Validate(g); err != nil {
		return err
	}

	var (
		i, j, base int
		d, rowMax  float32
		p          int32
		bound      float64
	)
	for i = 0; i < g.n; i++ {
		base = i * g.n
		rowMax = 0
		for j = 0; j < g.n; j++ {
			d = g.dist[base+j]
			if d < 0 || math.IsNaN(float64(d)) {
				return fmt.Errorf("ValidateInput: dist[%d][%d]=%g: %w", i, j, d, ErrInvalidWeight)
			}
			p = g.path[base+j]
			if p < NoPredecessor || int(p) >= g.n {
				return fmt.Errorf("ValidateInput: path[%d][%d]=%d: %w", i, j, p, ErrBadPredecessor)
			}
			if d != Unreachable && d > rowMax {
				rowMax = d
			}
		}
		bound += float64(rowMax)
	}
	if bound > float64(MaxPathWeight) {
		return fmt.Errorf("ValidateInput: worst-case path weight %g > %g: %w", bound, MaxPathWeight, ErrPathOverflow)
	}

	return nil
}
