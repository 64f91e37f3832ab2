package store_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/apsp/store"
	"github.com/stretchr/testify/require"
)

func TestNew_EdgelessLayout(t *testing.T) {
	t.Parallel()

	g, err := store.New(3)
	require.NoError(t, err)
	require.Equal(t, 3, g.Order())

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			d, err := g.Distance(i, j)
			require.NoError(t, err)
			p, err := g.Predecessor(i, j)
			require.NoError(t, err)
			require.Equal(t, store.NoPredecessor, p)
			if i == j {
				require.Zero(t, d)
				continue
			}
			require.Equal(t, store.Unreachable, d)
			require.False(t, g.Reachable(i, j))
		}
	}
}

func TestNew_BadOrder(t *testing.T) {
	t.Parallel()

	_, err := store.New(0)
	require.ErrorIs(t, err, store.ErrBadOrder)
}

func TestFromSlices_BorrowsStorage(t *testing.T) {
	t.Parallel()

	dist := []float32{0, 5, store.Unreachable, 0}
	path := []int32{-1, 0, -1, -1}
	g, err := store.FromSlices(2, dist, path)
	require.NoError(t, err)

	require.NoError(t, g.SetEdge(1, 0, 2))
	require.Equal(t, float32(2), dist[2], "writes must land in the caller slice")
	require.Equal(t, int32(1), path[2])

	_, err = store.FromSlices(2, dist[:3], path)
	require.ErrorIs(t, err, store.ErrDimensionMismatch)
}

func TestSetEdge_Rules(t *testing.T) {
	t.Parallel()

	g, err := store.New(3)
	require.NoError(t, err)

	require.NoError(t, g.SetEdge(0, 1, 4))
	require.NoError(t, g.SetEdge(0, 1, 3)) // last write wins
	d, _ := g.Distance(0, 1)
	p, _ := g.Predecessor(0, 1)
	require.Equal(t, float32(3), d)
	require.Equal(t, int32(0), p)

	// self pair is ignored
	require.NoError(t, g.SetEdge(2, 2, 9))
	d, _ = g.Distance(2, 2)
	p, _ = g.Predecessor(2, 2)
	require.Zero(t, d)
	require.Equal(t, store.NoPredecessor, p)

	require.ErrorIs(t, g.SetEdge(0, 3, 1), store.ErrOutOfRange)
	require.ErrorIs(t, g.SetEdge(-1, 0, 1), store.ErrOutOfRange)
	require.ErrorIs(t, g.SetEdge(0, 2, -1), store.ErrInvalidWeight)
	require.ErrorIs(t, g.SetEdge(0, 2, float32(math.NaN())), store.ErrInvalidWeight)
	require.ErrorIs(t, g.SetEdge(0, 2, float32(math.Inf(1))), store.ErrInvalidWeight)
	require.ErrorIs(t, g.SetEdge(0, 2, store.Unreachable), store.ErrInvalidWeight)
}

func TestCloneAndEqual(t *testing.T) {
	t.Parallel()

	g, _ := store.New(4)
	require.NoError(t, g.SetEdge(0, 1, 1))
	c := g.Clone()
	require.True(t, store.Equal(g, c))
	require.Equal(t, g.Checksum(), c.Checksum())

	require.NoError(t, c.SetEdge(1, 2, 1))
	require.False(t, store.Equal(g, c))
	require.NotEqual(t, g.Checksum(), c.Checksum())

	other, _ := store.New(5)
	require.False(t, store.Equal(g, other))
	require.True(t, store.Equal(nil, nil))
	require.False(t, store.Equal(g, nil))
}

func TestValidators(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, store.Validate(nil), store.ErrNilGraph)

	g, _ := store.New(3)
	require.NoError(t, store.ValidateInput(g))

	g.Distances()[4] = 1
	require.ErrorIs(t, store.Validate(g), store.ErrNonZeroDiagonal)
	g.Distances()[4] = 0

	g.Predecessors()[0] = 2
	require.ErrorIs(t, store.Validate(g), store.ErrBadPredecessor)
	g.Predecessors()[0] = store.NoPredecessor

	g.Distances()[1] = -3
	require.NoError(t, store.Validate(g), "Validate checks the diagonal only")
	require.ErrorIs(t, store.ValidateInput(g), store.ErrInvalidWeight)
	g.Distances()[1] = store.Unreachable

	g.Predecessors()[1] = 7
	require.ErrorIs(t, store.ValidateInput(g), store.ErrBadPredecessor)
}

func TestValidateInput_PathOverflow(t *testing.T) {
	t.Parallel()

	// each weight is valid, but 0→1→2 would sum past the sentinel
	g, err := store.New(3)
	require.NoError(t, err)
	require.NoError(t, g.SetEdge(0, 1, 2e38))
	require.NoError(t, g.SetEdge(1, 2, 2e38))
	require.ErrorIs(t, store.ValidateInput(g), store.ErrPathOverflow)
	require.ErrorIs(t, store.FloydWarshall(g), store.ErrPathOverflow)

	// the bound sums one entry per row
	g, err = store.New(3)
	require.NoError(t, err)
	require.NoError(t, g.SetEdge(0, 1, 5e37))
	require.NoError(t, g.SetEdge(0, 2, 6e37))
	require.NoError(t, g.SetEdge(1, 2, 5e37))
	require.NoError(t, store.ValidateInput(g))
	require.NoError(t, store.FloydWarshall(g))
	d, _ := g.Distance(0, 2)
	require.Equal(t, float32(6e37), d)
	require.True(t, g.Reachable(0, 2))
}

func TestRelax_SentinelArithmetic(t *testing.T) {
	t.Parallel()

	_, ok := store.Relax(store.Unreachable, 1, store.Unreachable)
	require.False(t, ok)
	_, ok = store.Relax(1, store.Unreachable, store.Unreachable)
	require.False(t, ok)
	_, ok = store.Relax(store.Unreachable, store.Unreachable, store.Unreachable)
	require.False(t, ok)

	// finite overflow to +Inf must not win against the sentinel
	big := store.Unreachable / 2 * 1.5
	_, ok = store.Relax(big, big, store.Unreachable)
	require.False(t, ok)

	v, ok := store.Relax(1, 2, store.Unreachable)
	require.True(t, ok)
	require.Equal(t, float32(3), v)

	_, ok = store.Relax(1, 2, 3) // tie keeps the incumbent
	require.False(t, ok)
}

func TestDistanceDense(t *testing.T) {
	t.Parallel()

	g, _ := store.New(2)
	require.NoError(t, g.SetEdge(0, 1, 2.5))
	m := g.DistanceDense()
	r, c := m.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 2, c)
	require.Equal(t, 2.5, m.At(0, 1))
	require.True(t, math.IsInf(m.At(1, 0), 1))
	require.Zero(t, m.At(1, 1))
}
