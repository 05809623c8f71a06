package grid_test

import (
	"testing"

	"github.com/halvera/cuboidregion/grid"
	"github.com/stretchr/testify/require"
)

func TestBisect_FindsGreatestEdgeLE(t *testing.T) {
	t.Parallel()

	g, err := grid.NewOwned([]grid.Scalar{1, 3, 5, 7}, []grid.Scalar{0}, []grid.Scalar{0})
	require.NoError(t, err)

	pos, ok := g.Bisect(grid.AxisX, 4)
	require.True(t, ok)
	require.Equal(t, 1, pos) // edges[1]=3 is the greatest edge <= 4

	pos, ok = g.Bisect(grid.AxisX, 7)
	require.True(t, ok)
	require.Equal(t, 3, pos)

	pos, ok = g.Bisect(grid.AxisX, 1)
	require.True(t, ok)
	require.Equal(t, 0, pos)

	_, ok = g.Bisect(grid.AxisX, 0)
	require.False(t, ok, "no edge is <= 0")
}

func TestIsAABBOrigin_HalfOpenSemantics(t *testing.T) {
	t.Parallel()

	// Decompose AABB(10,10,10, 23,11,25): spec.md scenario 1.
	g, err := grid.NewOwned([]grid.Scalar{10, 23}, []grid.Scalar{10, 11}, []grid.Scalar{10, 25})
	require.NoError(t, err)
	g.Mark(0, 0, 0)

	require.True(t, g.IsAABBOrigin(10, 10, 10))
	require.False(t, g.IsAABBOrigin(11, 11, 11))
	require.False(t, g.IsAABBOrigin(23, 11, 25), "the upper corner is never an origin")
}

func TestIsAABBOrigin_MissingEdge(t *testing.T) {
	t.Parallel()

	g, err := grid.NewOwned([]grid.Scalar{0, 1}, []grid.Scalar{0, 1}, []grid.Scalar{0, 1})
	require.NoError(t, err)
	g.Mark(0, 0, 0)

	require.False(t, g.IsAABBOrigin(0.5, 0, 0))
}
