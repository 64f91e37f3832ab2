// SPDX-License-Identifier: MIT

package verify

import "math"

// DefaultTolerance is the relative tolerance of distance comparisons.
const DefaultTolerance = 1e-5

// Option configures Result.
type Option func(*Options)

// Options is the resolved configuration.
type Options struct {
	tolerance float64
	oracle    bool
}

// WithTolerance sets the relative tolerance. Panics on negative or NaN values.
func WithTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) {
		panic("verify: WithTolerance: tolerance must be finite and >= 0")
	}

	return func(o *Options) { o.tolerance = tol }
}

// WithOracle enables the per-source Dijkstra comparison, O(n·(n² + E log n)).
func WithOracle() Option {
	return func(o *Options) { o.oracle = true }
}

func gatherOptions(opts ...Option) Options {
	o := Options{tolerance: DefaultTolerance}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
