package simplify

import (
	"github.com/halvera/cuboidregion/grid"
)

// Simplify returns a new Grid describing the same region as src with every
// redundant edge removed. An edge is redundant when, across every
// combination of positions on the other two axes, the cell it starts
// agrees with the cell before it: dropping it changes neither the set of
// occupied cells nor the region's shape.
//
// The very first edge on an axis is compared against an implicit "nothing
// occupied yet" predecessor, so a leading edge that starts no cell is
// dropped. The last edge on an axis is never an AABB origin (invariant),
// so it is dropped exactly when the cell before it is unoccupied
// everywhere.
func Simplify(src *grid.Grid) (*grid.Grid, error) {
	keptX := keptPositions(src, grid.AxisX)
	keptY := keptPositions(src, grid.AxisY)
	keptZ := keptPositions(src, grid.AxisZ)

	xs := project(src.X, keptX)
	ys := project(src.Y, keptY)
	zs := project(src.Z, keptZ)

	dst, err := grid.NewOwned(xs, ys, zs)
	if err != nil {
		return nil, err
	}

	for dx, sx := range keptX {
		for dy, sy := range keptY {
			for dz, sz := range keptZ {
				if src.IsMarked(sx, sy, sz) {
					dst.Mark(dx, dy, dz)
				}
			}
		}
	}

	return dst, nil
}

func project(edges []grid.Scalar, positions []int) []grid.Scalar {
	out := make([]grid.Scalar, len(positions))
	for i, p := range positions {
		out[i] = edges[p]
	}

	return out
}

// keptPositions returns the source-grid positions on axis that survive
// redundant-edge elimination, in ascending order.
func keptPositions(src *grid.Grid, axis grid.Axis) []int {
	n := axisLen(src, axis)
	kept := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if !isRedundant(src, axis, i) {
			kept = append(kept, i)
		}
	}

	return kept
}

func isRedundant(src *grid.Grid, axis grid.Axis, pos int) bool {
	nb, nc := otherAxisLens(src, axis)
	for b := 0; b < nb; b++ {
		for c := 0; c < nc; c++ {
			cur := stateAt(src, axis, pos, b, c)
			prev := false
			if pos > 0 {
				prev = stateAt(src, axis, pos-1, b, c)
			}
			if cur != prev {
				return false
			}
		}
	}

	return true
}

// stateAt reports whether the vertex obtained by placing pos on axis and
// (b,c) on the remaining two axes, in axis order, is marked.
func stateAt(src *grid.Grid, axis grid.Axis, pos, b, c int) bool {
	switch axis {
	case grid.AxisX:
		return src.IsMarked(pos, b, c)
	case grid.AxisY:
		return src.IsMarked(b, pos, c)
	default:
		return src.IsMarked(b, c, pos)
	}
}

func axisLen(src *grid.Grid, axis grid.Axis) int {
	switch axis {
	case grid.AxisX:
		return src.NX()
	case grid.AxisY:
		return src.NY()
	default:
		return src.NZ()
	}
}

func otherAxisLens(src *grid.Grid, axis grid.Axis) (int, int) {
	switch axis {
	case grid.AxisX:
		return src.NY(), src.NZ()
	case grid.AxisY:
		return src.NX(), src.NZ()
	default:
		return src.NX(), src.NY()
	}
}
