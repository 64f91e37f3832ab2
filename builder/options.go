// SPDX-License-Identifier: MIT
// Package: builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/apsp/store"
)

// DefaultEdgeWeight is the weight of every edge when no weight option is set.
const DefaultEdgeWeight float32 = 1

// WeightFn produces an edge weight from an optional RNG.
type WeightFn func(rng *rand.Rand) float32

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// builderConfig is the resolved configuration shared by all constructors.
type builderConfig struct {
	rng      *rand.Rand // nil unless seeded
	weightFn WeightFn
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		weightFn: func(*rand.Rand) float32 { return DefaultEdgeWeight },
	}
	// last-wins
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRand provides an explicit RNG for stochastic constructors and weights.
// Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed attaches a fresh RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) { c.weightFn = fn }
}

// WithConstantWeight gives every edge weight w.
// Panics unless w is a valid store weight.
func WithConstantWeight(w float32) BuilderOption {
	if !store.ValidWeight(w) {
		panic(fmt.Sprintf("builder: WithConstantWeight: invalid weight %g", w))
	}

	return WithWeightFn(func(*rand.Rand) float32 { return w })
}

// WithUniformWeight draws weights uniformly from [lo, hi).
// Without an RNG every edge gets lo. Panics unless 0 ≤ lo ≤ hi are valid weights.
func WithUniformWeight(lo, hi float32) BuilderOption {
	if !store.ValidWeight(lo) || !store.ValidWeight(hi) || hi < lo {
		panic(fmt.Sprintf("builder: WithUniformWeight: require 0 ≤ lo ≤ hi, got lo=%g, hi=%g", lo, hi))
	}
	span := hi - lo

	return WithWeightFn(func(rng *rand.Rand) float32 {
		if rng == nil || span == 0 {
			return lo
		}

		return lo + rng.Float32()*span
	})
}
