package mincut_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbap/mincut"
)

// shoreWithout returns the shore of r that does not contain vertex v.
func shoreWithout(n int, r mincut.Result, v int) []int {
	in := make([]bool, n)
	for _, x := range r.Side {
		in[x] = true
	}
	if !in[v] {
		return r.Side
	}
	var out []int
	for x := 0; x < n; x++ {
		if !in[x] {
			out = append(out, x)
		}
	}

	return out
}

func TestStoerWagnerPaperGraph(t *testing.T) {
	edges := []mincut.Edge{
		{0, 1, 2}, {0, 4, 3}, {1, 2, 3}, {1, 4, 2}, {1, 5, 2}, {2, 3, 4},
		{2, 6, 2}, {3, 6, 2}, {3, 7, 2}, {4, 5, 3}, {5, 6, 1}, {6, 7, 3},
	}
	r, err := mincut.StoerWagner(8, edges)
	require.NoError(t, err)
	require.InDelta(t, 4.0, r.Weight, 1e-12)
	require.Equal(t, []int{2, 3, 6, 7}, shoreWithout(8, r, 0))
}

func TestStoerWagnerDisconnected(t *testing.T) {
	// Two triangles joined by zero-weight edges.
	edges := []mincut.Edge{
		{0, 1, 1}, {1, 2, 1}, {2, 0, 1},
		{3, 4, 1}, {4, 5, 1}, {5, 3, 1},
		{0, 3, 0}, {2, 5, 0},
	}
	r, err := mincut.StoerWagner(6, edges)
	require.NoError(t, err)
	require.Equal(t, 0.0, r.Weight)
	require.Equal(t, []int{3, 4, 5}, shoreWithout(6, r, 0))
}

func TestStoerWagnerParallelAndLoops(t *testing.T) {
	edges := []mincut.Edge{
		{0, 1, 0.5}, {1, 0, 0.5}, {1, 1, 9}, {1, 2, 3},
	}
	r, err := mincut.StoerWagner(3, edges)
	require.NoError(t, err)
	require.InDelta(t, 1.0, r.Weight, 1e-12)
	require.Equal(t, []int{1, 2}, shoreWithout(3, r, 0))
}

func TestStoerWagnerDeterministic(t *testing.T) {
	edges := []mincut.Edge{{0, 1, 1}, {1, 2, 1}, {2, 3, 1}, {3, 0, 1}}
	first, err := mincut.StoerWagner(4, edges)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := mincut.StoerWagner(4, edges)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
	require.InDelta(t, 2.0, first.Weight, 1e-12)
}

func TestStoerWagnerErrors(t *testing.T) {
	_, err := mincut.StoerWagner(1, nil)
	require.ErrorIs(t, err, mincut.ErrTooFewVertices)
	_, err = mincut.StoerWagner(2, []mincut.Edge{{0, 2, 1}})
	require.ErrorIs(t, err, mincut.ErrVertexOutOfRange)
	_, err = mincut.StoerWagner(2, []mincut.Edge{{0, 1, -1}})
	require.ErrorIs(t, err, mincut.ErrNegativeWeight)

	// No edges at all: any bipartition has weight zero.
	r, err := mincut.StoerWagner(2, nil)
	require.NoError(t, err)
	require.Equal(t, 0.0, r.Weight)
	require.Len(t, r.Side, 1)
}
