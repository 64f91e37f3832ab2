// SPDX-License-Identifier: MIT

package verify

import (
	"fmt"
	"math"

	"github.com/katalvlaran/apsp/bfs"
	"github.com/katalvlaran/apsp/dijkstra"
	"github.com/katalvlaran/apsp/store"
)

// Result checks result against the input graph it was solved from.
// It returns nil, a *Violation, or a wrapped store validation error.
func Result(input, result *store.Graph, opts ...Option) error {
	o := gatherOptions(opts...)

	if err := store.ValidateInput(input); err != nil {
		return fmt.Errorf("verify: input: %w", err)
	}
	if result == nil {
		return fmt.Errorf("verify: result: %w", store.ErrNilGraph)
	}
	if result.Order() != input.Order() {
		return fmt.Errorf("verify: order %d vs %d: %w", result.Order(), input.Order(), store.ErrDimensionMismatch)
	}

	c := checker{n: input.Order(), tol: o.tolerance, input: input, result: result}
	for _, step := range []func() error{c.diagonal, c.sentinel, c.reachability, c.triangle, c.routes} {
		if err := step(); err != nil {
			return err
		}
	}
	if o.oracle {
		return c.oracle()
	}

	return nil
}

type checker struct {
	n             int
	tol           float64
	input, result *store.Graph
}

// close reports |a-b| ≤ tol·max(1,|a|,|b|).
func (c checker) close(a, b float64) bool {
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))

	return math.Abs(a-b) <= c.tol*scale
}

func (c checker) diagonal() error {
	dist, path := c.result.Distances(), c.result.Predecessors()
	for i := 0; i < c.n; i++ {
		if d, p := dist[i*c.n+i], path[i*c.n+i]; d != 0 || p != store.NoPredecessor {
			return violation(KindDiagonal, i, i, -1, "dist=%g path=%d", d, p)
		}
	}

	return nil
}

func (c checker) sentinel() error {
	in := c.input.Distances()
	dist, path := c.result.Distances(), c.result.Predecessors()
	var i, j, idx int
	for i = 0; i < c.n; i++ {
		for j = 0; j < c.n; j++ {
			if i == j {
				continue
			}
			idx = i*c.n + j
			if (dist[idx] == store.Unreachable) != (path[idx] == store.NoPredecessor) {
				return violation(KindSentinel, i, j, -1, "dist=%g path=%d", dist[idx], path[idx])
			}
			if path[idx] < store.NoPredecessor || int(path[idx]) >= c.n {
				return violation(KindSentinel, i, j, -1, "predecessor %d out of range", path[idx])
			}
			if in[idx] != store.Unreachable && !(float64(dist[idx]) <= float64(in[idx]) || c.close(float64(dist[idx]), float64(in[idx]))) {
				return violation(KindSentinel, i, j, -1, "result %g exceeds direct edge %g", dist[idx], in[idx])
			}
		}
	}

	return nil
}

// reachability compares every result row with a BFS over the input edges.
func (c checker) reachability() error {
	for src := 0; src < c.n; src++ {
		res, err := bfs.BFS(c.input, src)
		if err != nil {
			return fmt.Errorf("verify: reachability: %w", err)
		}
		for v := 0; v < c.n; v++ {
			if got, want := c.result.Reachable(src, v), res.Reached(v); got != want {
				return violation(KindReach, src, v, -1, "reachable=%t, input says %t", got, want)
			}
		}
	}

	return nil
}

func (c checker) triangle() error {
	dist := c.result.Distances()
	var (
		i, k, j int
		ik, kj  float32
		ij, via float64
	)
	for i = 0; i < c.n; i++ {
		for k = 0; k < c.n; k++ {
			if ik = dist[i*c.n+k]; ik == store.Unreachable {
				continue
			}
			for j = 0; j < c.n; j++ {
				if kj = dist[k*c.n+j]; kj == store.Unreachable {
					continue
				}
				ij, via = float64(dist[i*c.n+j]), float64(ik)+float64(kj)
				if dist[i*c.n+j] == store.Unreachable || (ij > via && !c.close(ij, via)) {
					return violation(KindTriangle, i, j, k, "%g > %g + %g", dist[i*c.n+j], ik, kj)
				}
			}
		}
	}

	return nil
}

func (c checker) routes() error {
	in := c.input.Distances()
	for i := 0; i < c.n; i++ {
		for j := 0; j < c.n; j++ {
			if i == j || !c.result.Reachable(i, j) {
				continue
			}
			route, err := c.result.Route(i, j)
			if err != nil {
				return violation(KindRoute, i, j, -1, "%v", err)
			}
			var sum float64
			for s := 0; s+1 < len(route); s++ {
				w := in[route[s]*c.n+route[s+1]]
				if w == store.Unreachable {
					return violation(KindRoute, i, j, -1, "step %d→%d is not an edge", route[s], route[s+1])
				}
				sum += float64(w)
			}
			if d, _ := c.result.Distance(i, j); !c.close(sum, float64(d)) {
				return violation(KindRoute, i, j, -1, "route weight %g, distance %g", sum, d)
			}
		}
	}

	return nil
}

func (c checker) oracle() error {
	for src := 0; src < c.n; src++ {
		want, _, err := dijkstra.Dijkstra(c.input, src)
		if err != nil {
			return fmt.Errorf("verify: oracle: %w", err)
		}
		for v, w := range want {
			got, _ := c.result.Distance(src, v)
			if math.IsInf(w, 1) {
				if got != store.Unreachable {
					return violation(KindOracle, src, v, -1, "got %g, want unreachable", got)
				}
				continue
			}
			if got == store.Unreachable || !c.close(float64(got), w) {
				return violation(KindOracle, src, v, -1, "got %g, want %g", got, w)
			}
		}
	}

	return nil
}
