// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with "%s: ...: %w" using the method tag.
//   • Weight violations surface as store.ErrInvalidWeight from SetEdge.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (graph order, rows, cols)
// is below the minimum of the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrNilConstructor indicates a nil Constructor passed to Build.
var ErrNilConstructor = errors.New("builder: nil constructor")
