// SPDX-License-Identifier: MIT

package builder_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/apsp/builder"
	"github.com/katalvlaran/apsp/store"
	"github.com/stretchr/testify/require"
)

// edges lists the direct arcs of g as [u,v] pairs in row-major order.
func edges(g *store.Graph) [][2]int {
	var out [][2]int
	n := g.Order()
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u != v && g.Reachable(u, v) {
				out = append(out, [2]int{u, v})
			}
		}
	}

	return out
}

func TestBuilders_Topology(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		n     int
		ctor  builder.Constructor
		wantE int
		check func(t *testing.T, g *store.Graph)
	}{
		{
			name: "Chain", n: 5, ctor: builder.Chain(), wantE: 4,
			check: func(t *testing.T, g *store.Graph) {
				require.Equal(t, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}}, edges(g))
			},
		},
		{
			name: "Cycle", n: 4, ctor: builder.Cycle(), wantE: 4,
			check: func(t *testing.T, g *store.Graph) {
				require.True(t, g.Reachable(3, 0))
			},
		},
		{
			name: "Complete", n: 4, ctor: builder.Complete(), wantE: 12,
		},
		{
			name: "Grid", n: 7, ctor: builder.Grid(2, 3), wantE: 14,
			check: func(t *testing.T, g *store.Graph) {
				require.True(t, g.Reachable(1, 4))
				require.True(t, g.Reachable(4, 1))
				require.False(t, g.Reachable(2, 3), "row ends are not linked")
				require.False(t, g.Reachable(5, 6), "vertex 6 lies outside the grid")
			},
		},
		{
			name: "RandomDense(1)", n: 3, ctor: builder.RandomDense(1), wantE: 6,
		},
		{
			name: "RandomDense(0)", n: 3, ctor: builder.RandomDense(0), wantE: 0,
		},
	}
	for _, tc := range tests {
		g, err := builder.Build(tc.n, nil, tc.ctor)
		require.NoError(t, err, tc.name)
		require.Len(t, edges(g), tc.wantE, tc.name)
		for _, e := range edges(g) {
			d, _ := g.Distance(e[0], e[1])
			p, _ := g.Predecessor(e[0], e[1])
			require.Equal(t, builder.DefaultEdgeWeight, d, tc.name)
			require.Equal(t, int32(e[0]), p, tc.name)
		}
		require.NoError(t, store.ValidateInput(g), tc.name)
		if tc.check != nil {
			tc.check(t, g)
		}
	}
}

func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	_, err := builder.Build(1, nil, builder.Chain())
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, err = builder.Build(2, nil, builder.Cycle())
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, err = builder.Build(5, nil, builder.Grid(2, 3))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, err = builder.Build(5, nil, builder.Grid(0, 3))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, err = builder.Build(5, nil, builder.RandomDense(1.5))
	require.ErrorIs(t, err, builder.ErrInvalidProbability)
	_, err = builder.Build(5, nil, builder.RandomDense(0.5))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
	_, err = builder.Build(5, nil, nil)
	require.ErrorIs(t, err, builder.ErrNilConstructor)
	_, err = builder.Build(0, nil)
	require.ErrorIs(t, err, store.ErrBadOrder)

	bad := builder.WithWeightFn(func(*rand.Rand) float32 { return -1 })
	_, err = builder.Build(3, []builder.BuilderOption{bad}, builder.Chain())
	require.ErrorIs(t, err, store.ErrInvalidWeight)
}

func TestBuilders_DeterministicPerSeed(t *testing.T) {
	t.Parallel()

	opts := func() []builder.BuilderOption {
		return []builder.BuilderOption{builder.WithSeed(42), builder.WithUniformWeight(1, 10)}
	}
	a, err := builder.Build(16, opts(), builder.RandomDense(0.3))
	require.NoError(t, err)
	b, err := builder.Build(16, opts(), builder.RandomDense(0.3))
	require.NoError(t, err)
	require.True(t, store.Equal(a, b))
	require.Equal(t, a.Checksum(), b.Checksum())

	c, err := builder.Build(16, []builder.BuilderOption{builder.WithSeed(43), builder.WithUniformWeight(1, 10)}, builder.RandomDense(0.3))
	require.NoError(t, err)
	require.False(t, store.Equal(a, c))

	for _, e := range edges(a) {
		d, _ := a.Distance(e[0], e[1])
		require.GreaterOrEqual(t, d, float32(1))
		require.LessOrEqual(t, d, float32(10))
	}
}

func TestBuilders_ComposeLastWins(t *testing.T) {
	t.Parallel()

	g, err := builder.Build(4, []builder.BuilderOption{builder.WithConstantWeight(5)}, builder.Complete(), builder.Chain())
	require.NoError(t, err)
	d, _ := g.Distance(0, 1)
	require.Equal(t, float32(5), d)
	require.Len(t, edges(g), 12)
}

func TestOptions_Panics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { builder.WithRand(nil) })
	require.Panics(t, func() { builder.WithWeightFn(nil) })
	require.Panics(t, func() { builder.WithConstantWeight(-1) })
	require.Panics(t, func() { builder.WithConstantWeight(store.Unreachable) })
	require.Panics(t, func() { builder.WithUniformWeight(5, 1) })
}
