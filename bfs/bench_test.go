// SPDX-License-Identifier: MIT

package bfs_test

import (
	"testing"

	"github.com/katalvlaran/apsp/bfs"
	"github.com/katalvlaran/apsp/builder"
)

// BenchmarkBFS_Chain measures a full scan on a 512-vertex chain.
func BenchmarkBFS_Chain(b *testing.B) {
	g, err := builder.Build(512, nil, builder.Chain())
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}
