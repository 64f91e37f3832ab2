// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/apsp/store"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartOutOfRange is returned when the start vertex is not in [0,n).
	ErrStartOutOfRange = errors.New("bfs: start vertex out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when BFS
// is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation.
	Ctx context.Context

	// OnVisit is called when visiting a vertex. A non-nil error aborts
	// the search and is returned wrapped.
	OnVisit func(v, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	FilterNeighbor func(u, v int) bool

	err error
}

// DefaultOptions returns Options with a background context, no depth limit,
// no filtering and a no-op OnVisit.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnVisit:        func(int, int) error { return nil },
		FilterNeighbor: func(int, int) bool { return true },
	}
}

// WithContext sets a custom context for cancellation. Nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback run on every visit.
func WithOnVisit(fn func(v, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at depth d.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips the edge u→v when fn returns false.
func WithFilterNeighbor(fn func(u, v int) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a traversal.
type Result struct {
	Start  int
	Order  []int
	Depth  []int
	Parent []int32
}

// Reached reports whether v was visited.
func (r *Result) Reached(v int) bool {
	return v >= 0 && v < len(r.Depth) && r.Depth[v] >= 0
}

// PathTo reconstructs the fewest-hop path from the start vertex to dest.
func (r *Result) PathTo(dest int) ([]int, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("bfs: vertex %d not reached: %w", dest, store.ErrNoRoute)
	}
	path := make([]int, r.Depth[dest]+1)
	for cur, i := dest, len(path)-1; i >= 0; i-- {
		path[i] = cur
		cur = int(r.Parent[cur])
	}

	return path, nil
}
