// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_chain.go: Chain and Cycle.
//
// Contract:
//   • Chain: edges i→i+1 for i∈[0,n-2]; n ≥ 2.
//   • Cycle: Chain plus n-1→0; n ≥ 3.
//   • Edge order is i ascending, so weight draws are deterministic per seed.

package builder

import "github.com/katalvlaran/apsp/store"

const (
	methodChain   = "Chain"
	methodCycle   = "Cycle"
	minChainNodes = 2
	minCycleNodes = 3
)

// Chain returns a Constructor for the directed path 0→1→…→n-1.
// Complexity: O(n).
func Chain() Constructor {
	return func(g *store.Graph, cfg builderConfig) error {
		if err := requireOrder(methodChain, g, minChainNodes); err != nil {
			return err
		}
		for i := 0; i+1 < g.Order(); i++ {
			if err := addEdge(methodChain, g, cfg, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle returns a Constructor for the directed ring 0→1→…→n-1→0.
// Complexity: O(n).
func Cycle() Constructor {
	return func(g *store.Graph, cfg builderConfig) error {
		if err := requireOrder(methodCycle, g, minCycleNodes); err != nil {
			return err
		}
		n := g.Order()
		for i := 0; i < n; i++ {
			if err := addEdge(methodCycle, g, cfg, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
