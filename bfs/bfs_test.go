// SPDX-License-Identifier: MIT

package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/katalvlaran/apsp/bfs"
	"github.com/katalvlaran/apsp/builder"
	"github.com/katalvlaran/apsp/store"
	"github.com/stretchr/testify/require"
)

// network builds two competing routes 0→5: 0→1→2→3→5 and 0→4→5, plus an
// isolated vertex 6.
func network(t *testing.T) *store.Graph {
	t.Helper()

	g, err := store.New(7)
	require.NoError(t, err)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 5}, {0, 4}, {4, 5}} {
		require.NoError(t, g.SetEdge(e[0], e[1], 100))
	}

	return g
}

func TestBFS_Errors(t *testing.T) {
	t.Parallel()

	_, err := bfs.BFS(nil, 0)
	require.ErrorIs(t, err, store.ErrNilGraph)
	_, err = bfs.BFS(network(t), 7)
	require.ErrorIs(t, err, bfs.ErrStartOutOfRange)
	_, err = bfs.BFS(network(t), 0, bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_FewestHops(t *testing.T) {
	t.Parallel()

	res, err := bfs.BFS(network(t), 0)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 4, 2, 5, 3}, res.Order)
	require.Equal(t, []int{0, 1, 2, 3, 1, 2, -1}, res.Depth)

	path, err := res.PathTo(5)
	require.NoError(t, err)
	require.Equal(t, []int{0, 4, 5}, path, "hops ignore weights")

	require.False(t, res.Reached(6))
	_, err = res.PathTo(6)
	require.ErrorIs(t, err, store.ErrNoRoute)
	require.Equal(t, store.NoPredecessor, res.Parent[0])
}

func TestBFS_Options(t *testing.T) {
	t.Parallel()

	res, err := bfs.BFS(network(t), 0, bfs.WithMaxDepth(1))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 4}, res.Order)

	res, err = bfs.BFS(network(t), 0, bfs.WithFilterNeighbor(func(u, v int) bool { return v != 4 }))
	require.NoError(t, err)
	require.Equal(t, 4, res.Depth[5])

	stop := errors.New("stop")
	_, err = bfs.BFS(network(t), 0, bfs.WithOnVisit(func(v, _ int) error {
		if v == 2 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(network(t), 0, bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestBFS_AgreesWithSolvedReachability(t *testing.T) {
	t.Parallel()

	g, err := builder.Build(30, []builder.BuilderOption{builder.WithSeed(3)}, builder.RandomDense(0.05))
	require.NoError(t, err)
	solved := g.Clone()
	require.NoError(t, store.FloydWarshall(solved))

	for src := 0; src < g.Order(); src++ {
		res, err := bfs.BFS(g, src)
		require.NoError(t, err)
		for v := 0; v < g.Order(); v++ {
			require.Equal(t, solved.Reachable(src, v), res.Reached(v), "%d→%d", src, v)
		}
	}
}
