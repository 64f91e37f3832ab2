// SPDX-License-Identifier: MIT

package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by Dijkstra.
var (
	// ErrSourceOutOfRange indicates a source outside [0, n).
	ErrSourceOutOfRange = errors.New("dijkstra: source vertex out of range")

	// ErrBadMaxDistance indicates a negative or NaN MaxDistance.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates a non-positive InfEdgeThreshold.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures a Dijkstra run.
//
// MaxDistance      – vertices farther than this are left unreached. Default +Inf.
// InfEdgeThreshold – edges with weight ≥ this are impassable. Default +Inf.
type Options struct {
	MaxDistance      float64
	InfEdgeThreshold float64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMaxDistance caps exploration at limit. Panics on negative or NaN values.
func WithMaxDistance(limit float64) Option {
	if limit < 0 || math.IsNaN(limit) {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) { o.MaxDistance = limit }
}

// WithInfEdgeThreshold treats edges with weight ≥ threshold as walls.
// Panics unless threshold > 0.
func WithInfEdgeThreshold(threshold float64) Option {
	if !(threshold > 0) {
		panic(ErrBadInfThreshold.Error())
	}

	return func(o *Options) { o.InfEdgeThreshold = threshold }
}

// DefaultOptions returns an unbounded configuration.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}
