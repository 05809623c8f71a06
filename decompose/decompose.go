package decompose

import (
	"sort"

	"github.com/halvera/cuboidregion/grid"
)

// FromAABBs builds the Grid that exactly covers the union of the given
// AABBs. It sorts and deduplicates each axis's coordinates into the
// destination Grid's edges, then marks every vertex that originates a
// cell contained in some input box.
//
// Returns grid.ErrInvalidAABB if any box violates the ordering invariant,
// or grid.ErrTooComplex if any axis would exceed grid.MaxEdgesPerAxis
// distinct coordinates.
//
// Complexity: O(n log n) for the sort/dedup, O(n · cells-per-box) to mark
// occupancy, where n = len(aabbs).
func FromAABBs(aabbs []grid.AABB) (*grid.Grid, error) {
	for _, a := range aabbs {
		if err := a.Validate(); err != nil {
			return nil, err
		}
	}

	xs := sortedUnique(collect(aabbs, func(a grid.AABB) (grid.Scalar, grid.Scalar) { return a.X1, a.X2 }))
	ys := sortedUnique(collect(aabbs, func(a grid.AABB) (grid.Scalar, grid.Scalar) { return a.Y1, a.Y2 }))
	zs := sortedUnique(collect(aabbs, func(a grid.AABB) (grid.Scalar, grid.Scalar) { return a.Z1, a.Z2 }))

	g, err := grid.NewOwned(xs, ys, zs)
	if err != nil {
		return nil, err
	}

	for _, a := range aabbs {
		px1, _ := g.Bisect(grid.AxisX, a.X1)
		px2, _ := g.Bisect(grid.AxisX, a.X2)
		py1, _ := g.Bisect(grid.AxisY, a.Y1)
		py2, _ := g.Bisect(grid.AxisY, a.Y2)
		pz1, _ := g.Bisect(grid.AxisZ, a.Z1)
		pz2, _ := g.Bisect(grid.AxisZ, a.Z2)

		for px := px1; px < px2; px++ {
			for py := py1; py < py2; py++ {
				for pz := pz1; pz < pz2; pz++ {
					g.Mark(px, py, pz)
				}
			}
		}
	}

	return g, nil
}

// collect gathers both coordinates named by pick from every AABB into
// one flat slice of length 2*len(aabbs).
func collect(aabbs []grid.AABB, pick func(grid.AABB) (grid.Scalar, grid.Scalar)) []grid.Scalar {
	out := make([]grid.Scalar, 0, 2*len(aabbs))
	for _, a := range aabbs {
		lo, hi := pick(a)
		out = append(out, lo, hi)
	}

	return out
}

// sortedUnique sorts vs ascending and removes duplicates in place.
func sortedUnique(vs []grid.Scalar) []grid.Scalar {
	sort.Float64s(vs)
	if len(vs) == 0 {
		return vs
	}
	n := 1
	for i := 1; i < len(vs); i++ {
		if vs[i] != vs[n-1] {
			vs[n] = vs[i]
			n++
		}
	}

	return vs[:n]
}
