// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_random_dense.go - RandomDense(p) constructor.
//
// Canonical model:
//   - Erdős–Rényi directed generator: include each ordered pair (u,v), u ≠ v,
//     independently with probability p.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//     For p ∈ {0,1} the edge set is fixed and no trial is drawn.
//
// Determinism:
//   - Trial order u asc, then v asc; the weight draw follows its trial.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/apsp/store"
)

const (
	methodRandomDense = "RandomDense"
	minRandomNodes    = 2
	probMin           = 0.0
	probMax           = 1.0
)

// RandomDense returns a Constructor sampling each arc with probability p.
// Complexity: O(n²) trials.
func RandomDense(p float64) Constructor {
	return func(g *store.Graph, cfg builderConfig) error {
		// 1) Validate parameters early (size, probability, rng).
		if err := requireOrder(methodRandomDense, g, minRandomNodes); err != nil {
			return err
		}
		if math.IsNaN(p) || p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomDense, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomDense, ErrNeedRandSource)
		}
		if p == probMin {
			return nil
		}

		// 2) Bernoulli trial per ordered pair.
		n := g.Order()
		for u := 0; u < n; u++ {
			for v := 0; v < n; v++ {
				if u == v {
					continue
				}
				if p < probMax && cfg.rng.Float64() >= p {
					continue
				}
				if err := addEdge(methodRandomDense, g, cfg, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
