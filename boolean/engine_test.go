package boolean_test

import (
	"testing"

	"github.com/halvera/cuboidregion/boolean"
	"github.com/halvera/cuboidregion/decompose"
	"github.com/halvera/cuboidregion/grid"
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

// TestOp_SubtractCorner covers spec.md §8 scenario 2.
func TestOp_SubtractCorner(t *testing.T) {
	t.Parallel()

	big := mustDecompose(t, box(-8, -8, -8, 8, 8, 8))
	small := mustDecompose(t, box(0, 0, 0, 8, 8, 8))

	diff, err := boolean.Op(big, small, boolean.SUB)
	require.NoError(t, err)

	want := mustDecompose(t,
		box(-8, -8, -8, 8, 0, 8),
		box(-8, 0, -8, 0, 8, 8),
		box(-8, 0, -8, 8, 8, 0),
	)
	require.True(t, boolean.Equal(diff, want))

	selfDiff, err := boolean.Op(diff, diff, boolean.SUB)
	require.NoError(t, err)
	require.True(t, selfDiff.IsEmpty())
}

// TestOp_ContainsWithExtrusion covers spec.md §8 scenario 3 (minus the
// edge-count assertion, which belongs to the simplify package's tests).
func TestOp_ContainsWithExtrusion(t *testing.T) {
	t.Parallel()

	big := mustDecompose(t, box(-16, -16, -16, 16, 16, 16))
	ex := mustDecompose(t, box(0, -15, -15, 45, 15, 15))

	u, err := boolean.Op(big, ex, boolean.OR)
	require.NoError(t, err)
	require.True(t, boolean.Contains(u, big))
}

// TestOp_EmptyOperandShortcuts covers spec.md §8 scenario 6.
func TestOp_EmptyOperandShortcuts(t *testing.T) {
	t.Parallel()

	empty := grid.NewEmpty()
	r := mustDecompose(t, box(0, 0, 0, 1, 1, 1))

	orRes, err := boolean.Op(empty, r, boolean.OR)
	require.NoError(t, err)
	require.True(t, boolean.Equal(orRes, r))

	andRes, err := boolean.Op(empty, r, boolean.AND)
	require.NoError(t, err)
	require.True(t, andRes.IsEmpty())

	subRes, err := boolean.Op(empty, r, boolean.SUB)
	require.NoError(t, err)
	require.True(t, subRes.IsEmpty())

	rSubRes, err := boolean.Op(r, empty, boolean.SUB)
	require.NoError(t, err)
	require.True(t, boolean.Equal(rSubRes, r))

	xorRes, err := boolean.Op(empty, r, boolean.XOR)
	require.NoError(t, err)
	require.True(t, boolean.Equal(xorRes, r))
}

// TestOp_Commutative checks OR/AND commute for all operand pairs.
func TestOp_Commutative(t *testing.T) {
	t.Parallel()

	a := mustDecompose(t, box(0, 0, 0, 4, 4, 4))
	b := mustDecompose(t, box(2, 2, 2, 6, 6, 6))

	orAB, err := boolean.Op(a, b, boolean.OR)
	require.NoError(t, err)
	orBA, err := boolean.Op(b, a, boolean.OR)
	require.NoError(t, err)
	require.True(t, boolean.Equal(orAB, orBA))

	andAB, err := boolean.Op(a, b, boolean.AND)
	require.NoError(t, err)
	andBA, err := boolean.Op(b, a, boolean.AND)
	require.NoError(t, err)
	require.True(t, boolean.Equal(andAB, andBA))
}

// TestOp_SubIsDisjointFromRight checks op(a,b,SUB) never intersects b.
func TestOp_SubIsDisjointFromRight(t *testing.T) {
	t.Parallel()

	a := mustDecompose(t, box(0, 0, 0, 4, 4, 4))
	b := mustDecompose(t, box(2, 2, 2, 6, 6, 6))

	sub, err := boolean.Op(a, b, boolean.SUB)
	require.NoError(t, err)
	require.False(t, boolean.Intersects(sub, b))
}

// TestOp_SubtractingSubIsEmpty checks op(a, op(a,b,SUB), SUB) is empty.
func TestOp_SubtractingSubIsEmpty(t *testing.T) {
	t.Parallel()

	a := mustDecompose(t, box(0, 0, 0, 4, 4, 4))
	b := mustDecompose(t, box(2, 2, 2, 6, 6, 6))

	sub, err := boolean.Op(a, b, boolean.SUB)
	require.NoError(t, err)

	result, err := boolean.Op(a, sub, boolean.SUB)
	require.NoError(t, err)
	require.True(t, result.IsEmpty())
}

// TestOp_AndOrSubReconstructsOriginal checks
// op(op(a,b,AND), op(a,b,SUB), OR) == a.
func TestOp_AndOrSubReconstructsOriginal(t *testing.T) {
	t.Parallel()

	a := mustDecompose(t, box(0, 0, 0, 4, 4, 4))
	b := mustDecompose(t, box(2, 2, 2, 6, 6, 6))

	and, err := boolean.Op(a, b, boolean.AND)
	require.NoError(t, err)
	sub, err := boolean.Op(a, b, boolean.SUB)
	require.NoError(t, err)
	reconstructed, err := boolean.Op(and, sub, boolean.OR)
	require.NoError(t, err)

	require.True(t, boolean.Equal(reconstructed, a))
}

// TestEvaluate_AgreesWithOp checks Evaluate agrees with
// !Op(...).IsEmpty() semantics for every kind on a representative pair.
func TestEvaluate_AgreesWithOp(t *testing.T) {
	t.Parallel()

	a := mustDecompose(t, box(0, 0, 0, 4, 4, 4))
	b := mustDecompose(t, box(2, 2, 2, 6, 6, 6))

	for _, kind := range []boolean.OpKind{boolean.OR, boolean.AND, boolean.SUB, boolean.XOR, boolean.RSUB} {
		result, err := boolean.Op(a, b, kind)
		require.NoError(t, err)
		require.Equal(t, !result.IsEmpty(), boolean.Evaluate(a, b, kind), "kind=%v", kind)
	}
}

func TestOp_TooComplex(t *testing.T) {
	t.Parallel()

	xs := make([]grid.Scalar, grid.MaxEdgesPerAxis)
	for i := range xs {
		xs[i] = grid.Scalar(i)
	}
	l, err := grid.NewOwned(xs, []grid.Scalar{0, 1}, []grid.Scalar{0, 1})
	require.NoError(t, err)

	xs2 := make([]grid.Scalar, grid.MaxEdgesPerAxis)
	for i := range xs2 {
		xs2[i] = grid.Scalar(i) + 0.5
	}
	r, err := grid.NewOwned(xs2, []grid.Scalar{0, 1}, []grid.Scalar{0, 1})
	require.NoError(t, err)

	_, err = boolean.Op(l, r, boolean.OR)
	require.ErrorIs(t, err, grid.ErrTooComplex)
}
