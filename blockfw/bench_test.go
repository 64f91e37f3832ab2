// SPDX-License-Identifier: MIT

package blockfw_test

import (
	"math/rand"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/katalvlaran/apsp/blockfw"
	"github.com/katalvlaran/apsp/store"
)

func benchGraph(b *testing.B, n int) *store.Graph {
	b.Helper()

	rng := rand.New(rand.NewSource(1))
	g, err := store.New(n)
	if err != nil {
		b.Fatal(err)
	}
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u != v && rng.Float64() < 0.1 {
				_ = g.SetEdge(u, v, float32(1+rng.Intn(100)))
			}
		}
	}

	return g
}

func BenchmarkRun_256(b *testing.B) {
	c, err := blockfw.Acquire(blockfw.WithLogger(hclog.NewNullLogger()))
	if err != nil {
		b.Fatal(err)
	}
	defer c.Release()

	src := benchGraph(b, 256)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g := src.Clone()
		if err := c.Run(g); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkReference_256(b *testing.B) {
	src := benchGraph(b, 256)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g := src.Clone()
		if err := store.FloydWarshall(g); err != nil {
			b.Fatal(err)
		}
	}
}
