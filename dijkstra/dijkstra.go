// SPDX-License-Identifier: MIT

package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/apsp/store"
)

// Dijkstra computes shortest distances from src to every vertex of g.
//
// Returns:
//
//   - dist: dist[v] = minimum distance from src, math.Inf(1) if unreachable.
//   - prev: prev[v] = predecessor of v on one shortest path, or
//     store.NoPredecessor for src and unreachable vertices.
//
// Preconditions (checked in order):
//  1. g passes store.ValidateInput.
//  2. 0 ≤ src < n (ErrSourceOutOfRange).
//
// Ties keep the first predecessor found (strict improvement only).
func Dijkstra(g *store.Graph, src int, opts ...Option) ([]float64, []int32, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := store.ValidateInput(g); err != nil {
		return nil, nil, fmt.Errorf("dijkstra: %w", err)
	}
	n := g.Order()
	if src < 0 || src >= n {
		return nil, nil, fmt.Errorf("%w: %d not in [0,%d)", ErrSourceOutOfRange, src, n)
	}

	r := &runner{
		n:       n,
		weights: g.Distances(),
		options: cfg,
		dist:    make([]float64, n),
		prev:    make([]int32, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	r.init(src)
	r.process()

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	n       int
	weights []float32 // row-major input distances (direct edges)
	options Options
	dist    []float64
	prev    []int32
	visited []bool
	pq      nodePQ
}

func (r *runner) init(src int) {
	for v := range r.dist {
		r.dist[v] = math.Inf(1)
		r.prev[v] = store.NoPredecessor
	}
	r.dist[src] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: src, dist: 0})
}

// process pops vertices in distance order until the heap is empty or the
// next distance exceeds MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.id] = true
		r.relax(item.id)
	}
}

// relax scans row u for outgoing edges.
func (r *runner) relax(u int) {
	var (
		v       int
		w       float32
		newDist float64
	)
	row := r.weights[u*r.n : (u+1)*r.n]
	for v, w = range row {
		if v == u || w == store.Unreachable || r.visited[v] {
			continue
		}
		if float64(w) >= r.options.InfEdgeThreshold {
			continue
		}
		newDist = r.dist[u] + float64(w)
		if newDist > r.options.MaxDistance || newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = int32(u)
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}
}

// nodeItem is a heap entry; stale entries are skipped on pop.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
