package ops_test

import (
	"testing"

	"github.com/halvera/cuboidregion/boolean"
	"github.com/halvera/cuboidregion/decompose"
	"github.com/halvera/cuboidregion/grid"
	"github.com/halvera/cuboidregion/ops"
	"github.com/stretchr/testify/require"
)

func box(x1, y1, z1, x2, y2, z2 grid.Scalar) grid.AABB {
	return grid.AABB{X1: x1, Y1: y1, Z1: z1, X2: x2, Y2: y2, Z2: z2}
}

func mustDecompose(t *testing.T, aabbs ...grid.AABB) *grid.Grid {
	t.Helper()
	g, err := decompose.FromAABBs(aabbs)
	require.NoError(t, err)

	return g
}

func TestIntersect(t *testing.T) {
	t.Parallel()

	g := mustDecompose(t, box(0, 0, 0, 10, 10, 10))
	result, err := ops.Intersect(g, box(5, 5, 5, 15, 15, 15))
	require.NoError(t, err)

	want := mustDecompose(t, box(5, 5, 5, 10, 10, 10))
	require.True(t, boolean.Equal(result, want))
}

func TestSubtract(t *testing.T) {
	t.Parallel()

	g := mustDecompose(t, box(-8, -8, -8, 8, 8, 8))
	result, err := ops.Subtract(g, box(0, 0, 0, 8, 8, 8))
	require.NoError(t, err)

	want := mustDecompose(t,
		box(-8, -8, -8, 8, 0, 8),
		box(-8, 0, -8, 0, 8, 8),
		box(-8, 0, -8, 8, 8, 0),
	)
	require.True(t, boolean.Equal(result, want))
}

func TestUnion(t *testing.T) {
	t.Parallel()

	g := mustDecompose(t, box(0, 0, 0, 4, 4, 4))
	result, err := ops.Union(g, box(4, 0, 0, 8, 4, 4))
	require.NoError(t, err)

	want := mustDecompose(t, box(0, 0, 0, 8, 4, 4))
	require.True(t, boolean.Equal(result, want))
}

func TestIntersect_InvalidAABB(t *testing.T) {
	t.Parallel()

	g := mustDecompose(t, box(0, 0, 0, 4, 4, 4))
	_, err := ops.Intersect(g, box(4, 4, 4, 0, 0, 0))
	require.ErrorIs(t, err, grid.ErrInvalidAABB)
}

func TestUnion_DisjointFromEmpty(t *testing.T) {
	t.Parallel()

	result, err := ops.Union(grid.NewEmpty(), box(0, 0, 0, 1, 1, 1))
	require.NoError(t, err)

	want := mustDecompose(t, box(0, 0, 0, 1, 1, 1))
	require.True(t, boolean.Equal(result, want))
}
