// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go - the public orchestrator.
//
// Design contract:
//   - One orchestrator: Build(n, opts, cons...). Allocates g, resolves cfg,
//     runs cons in order.
//   - Topology constructors live in impl_*.go.

package builder

import (
	"fmt"

	"github.com/katalvlaran/apsp/store"
)

// Constructor adds edges to g using the resolved configuration. It must
// validate its parameters before the first write.
type Constructor func(g *store.Graph, cfg builderConfig) error

// Build allocates an n-vertex graph and applies every constructor in order.
// Any error is wrapped as "Build: %w" and returned immediately.
//
// Complexity: O(n²) allocation plus the cost of each constructor.
func Build(n int, opts []BuilderOption, cons ...Constructor) (*store.Graph, error) {
	g, err := store.New(n)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	cfg := newBuilderConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: constructor %d: %w", i, ErrNilConstructor)
		}
		if err = fn(g, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return g, nil
}

// addEdge draws a weight and writes u→v.
func addEdge(method string, g *store.Graph, cfg builderConfig, u, v int) error {
	w := cfg.weightFn(cfg.rng)
	if err := g.SetEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: SetEdge(%d→%d, w=%g): %w", method, u, v, w, err)
	}

	return nil
}

// requireOrder rejects graphs with fewer than least vertices.
func requireOrder(method string, g *store.Graph, least int) error {
	if g.Order() < least {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, g.Order(), least, ErrTooFewVertices)
	}

	return nil
}
