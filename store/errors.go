// SPDX-License-Identifier: MIT
// Package store: sentinel error set.
// All functions return these sentinels (optionally wrapped with %w context);
// callers and tests match them with errors.Is.

package store

import "errors"

var (
	// ErrNilGraph is returned when a nil *Graph is passed in.
	ErrNilGraph = errors.New("store: graph is nil")

	// ErrBadOrder is returned when the requested vertex count is < 1.
	ErrBadOrder = errors.New("store: vertex count must be > 0")

	// ErrDimensionMismatch signals that a backing slice does not hold n*n elements.
	ErrDimensionMismatch = errors.New("store: dimension mismatch")

	// ErrOutOfRange indicates a vertex index outside [0, n).
	ErrOutOfRange = errors.New("store: vertex index out of range")

	// ErrInvalidWeight signals a NaN, infinite, negative or sentinel-sized weight.
	ErrInvalidWeight = errors.New("store: invalid edge weight")

	// ErrPathOverflow signals edge weights whose worst-case simple path
	// exceeds MaxPathWeight.
	ErrPathOverflow = errors.New("store: path weights may overflow the sentinel")

	// ErrNonZeroDiagonal signals dist[i][i] != 0.
	ErrNonZeroDiagonal = errors.New("store: diagonal distance not zero")

	// ErrBadPredecessor signals a predecessor entry outside [-1, n) or a
	// diagonal predecessor other than NoPredecessor.
	ErrBadPredecessor = errors.New("store: invalid predecessor entry")

	// ErrNoRoute is returned by Route when the target is unreachable.
	ErrNoRoute = errors.New("store: no route between vertices")

	// ErrBrokenRoute is returned by Route when the predecessor chain does not
	// lead back to the source within n steps.
	ErrBrokenRoute = errors.New("store: predecessor chain is broken")
)
