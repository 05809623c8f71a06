package face

import "github.com/halvera/cuboidregion/grid"

// SelectFace produces a 2D region, encoded as a Grid whose chosen axis
// has exactly two edges, min(pos,-pos) and max(pos,-pos), normalized so
// the lower edge comes first. The other two axes inherit g's edges
// unchanged.
//
// At each position on the perpendicular axes, the face cell is marked iff
// there exists an occupied cell on axis containing pos. Let m be the
// greatest edge on axis that is <= pos: if that edge's value equals pos
// exactly and m is not the first edge, both the cell starting at m and
// the cell starting at m-1 are inspected, since an edge lying exactly on
// pos could be either cell's boundary. The face bit is set if either
// candidate cell is occupied. If axis has no edge <= pos, the result is
// empty.
func SelectFace(g *grid.Grid, axis grid.Axis, pos grid.Scalar) (*grid.Grid, error) {
	lo, hi := pos, -pos
	if hi < lo {
		lo, hi = hi, lo
	}

	xs, ys, zs := buildEdges(g, axis, lo, hi)
	dst, err := grid.NewOwned(xs, ys, zs)
	if err != nil {
		return nil, err
	}

	m, ok := g.Bisect(axis, pos)
	if !ok {
		return dst, nil
	}

	n := axisLen(g, axis)
	val, _ := g.EdgeAt(axis, m)
	exact := val == pos

	var candidates []int
	if m < n-1 {
		candidates = append(candidates, m)
	}
	if exact && m > 0 {
		candidates = append(candidates, m-1)
	}
	if len(candidates) == 0 {
		return dst, nil
	}

	na, nb := otherAxisLens(g, axis)
	for a := 0; a < na; a++ {
		for b := 0; b < nb; b++ {
			occupied := false
			for _, c := range candidates {
				if cellAt(g, axis, c, a, b) {
					occupied = true
					break
				}
			}
			if occupied {
				markFace(dst, axis, a, b)
			}
		}
	}

	return dst, nil
}

func buildEdges(g *grid.Grid, axis grid.Axis, lo, hi grid.Scalar) (xs, ys, zs []grid.Scalar) {
	normal := []grid.Scalar{lo, hi}
	switch axis {
	case grid.AxisX:
		return normal, cloneEdges(g.Y), cloneEdges(g.Z)
	case grid.AxisY:
		return cloneEdges(g.X), normal, cloneEdges(g.Z)
	default:
		return cloneEdges(g.X), cloneEdges(g.Y), normal
	}
}

func cloneEdges(src []grid.Scalar) []grid.Scalar {
	out := make([]grid.Scalar, len(src))
	copy(out, src)

	return out
}

// cellAt reports whether the vertex obtained by placing pos on axis and
// (a,b) on the remaining two axes, in axis order, is marked in g.
func cellAt(g *grid.Grid, axis grid.Axis, pos, a, b int) bool {
	switch axis {
	case grid.AxisX:
		return g.IsMarked(pos, a, b)
	case grid.AxisY:
		return g.IsMarked(a, pos, b)
	default:
		return g.IsMarked(a, b, pos)
	}
}

// markFace marks dst's sole cell on axis (always position 0) at (a,b) on
// the remaining two axes, in axis order.
func markFace(dst *grid.Grid, axis grid.Axis, a, b int) {
	switch axis {
	case grid.AxisX:
		dst.Mark(0, a, b)
	case grid.AxisY:
		dst.Mark(a, 0, b)
	default:
		dst.Mark(a, b, 0)
	}
}

func axisLen(g *grid.Grid, axis grid.Axis) int {
	switch axis {
	case grid.AxisX:
		return g.NX()
	case grid.AxisY:
		return g.NY()
	default:
		return g.NZ()
	}
}

func otherAxisLens(g *grid.Grid, axis grid.Axis) (int, int) {
	switch axis {
	case grid.AxisX:
		return g.NY(), g.NZ()
	case grid.AxisY:
		return g.NX(), g.NZ()
	default:
		return g.NX(), g.NY()
	}
}
