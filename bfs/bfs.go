// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/apsp/store"
)

// walker encapsulates mutable BFS state.
type walker struct {
	n     int
	dist  []float32
	opts  Options
	ctx   context.Context
	queue []int
	res   *Result
}

// BFS runs breadth-first search on g from start.
// Returns store.ErrNilGraph, ErrStartOutOfRange, ErrOptionViolation,
// a context error, or a wrapped OnVisit error. On error the partial Result
// is returned alongside.
func BFS(g *store.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, fmt.Errorf("bfs: %w", store.ErrNilGraph)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	n := g.Order()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStartOutOfRange, start, n)
	}

	w := &walker{
		n:     n,
		dist:  g.Distances(),
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]int, 0, n),
		res: &Result{
			Start:  start,
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int32, n),
		},
	}
	for v := range w.res.Depth {
		w.res.Depth[v] = -1
		w.res.Parent[v] = store.NoPredecessor
	}
	w.enqueue(start, 0, store.NoPredecessor)

	return w.res, w.loop()
}

func (w *walker) enqueue(v, depth int, parent int32) {
	w.res.Depth[v] = depth
	w.res.Parent[v] = parent
	w.queue = append(w.queue, v)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	var u, depth int
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		u, w.queue = w.queue[0], w.queue[1:]
		depth = w.res.Depth[u]
		w.res.Order = append(w.res.Order, u)
		if err := w.opts.OnVisit(u, depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", u, err)
		}
		if w.opts.MaxDepth > 0 && depth+1 > w.opts.MaxDepth {
			continue
		}
		w.expand(u, depth+1)
	}

	return nil
}

// expand enqueues every unseen neighbour of u that passes the filter.
func (w *walker) expand(u, next int) {
	row := w.dist[u*w.n : (u+1)*w.n]
	for v, d := range row {
		if v == u || d == store.Unreachable || w.res.Depth[v] >= 0 {
			continue
		}
		if !w.opts.FilterNeighbor(u, v) {
			continue
		}
		w.enqueue(v, next, int32(u))
	}
}
