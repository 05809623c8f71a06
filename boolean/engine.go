// File: engine.go
// Role: shared lock-step traversal powering Op and Evaluate.
// Determinism:
//   - The merge of two sorted, distinct edge lists is itself deterministic;
//     traversal order is always increasing X, then Y, then Z.
// AI-HINT (file):
//   - Op and Evaluate each run their own three nested loops, but both
//     walk the same per-axis dominance tables computed by axisDominance.
package boolean

import "github.com/halvera/cuboidregion/grid"

// axisDom records, for one destination position on one axis, the
// dominating position in each operand's own edge-index space — the
// position whose cell currently contains the destination coordinate.
// lOK/rOK is false when that operand has no dominating edge at this
// destination position (the destination lies before that operand's first
// edge or past its last edge, so it contributes nothing).
type axisDom struct {
	lPos int
	lOK  bool
	rPos int
	rOK  bool
}

// axisDominance merges two strictly-increasing, distinct edge slices
// into their destination edge list, and computes the per-destination-
// position dominance pair described in spec.md §4.3.
//
// Complexity: O(len(lEdges) + len(rEdges)).
func axisDominance(lEdges, rEdges []grid.Scalar) ([]grid.Scalar, []axisDom) {
	nl, nr := len(lEdges), len(rEdges)
	merged := make([]grid.Scalar, 0, nl+nr)
	doms := make([]axisDom, 0, nl+nr)

	la, ra := 0, 0
	for la < nl || ra < nr {
		lExhausted := la >= nl
		rExhausted := ra >= nr

		var dom axisDom
		var destVal grid.Scalar

		switch {
		case lExhausted:
			dom.rPos, dom.rOK = ra, true
			destVal = rEdges[ra]
		case rExhausted:
			dom.lPos, dom.lOK = la, true
			destVal = lEdges[la]
		case lEdges[la] < rEdges[ra]:
			dom.lPos, dom.lOK = la, true
			destVal = lEdges[la]
			if ra > 0 {
				dom.rPos, dom.rOK = ra-1, true
			}
		case rEdges[ra] < lEdges[la]:
			dom.rPos, dom.rOK = ra, true
			destVal = rEdges[ra]
			if la > 0 {
				dom.lPos, dom.lOK = la-1, true
			}
		default: // lEdges[la] == rEdges[ra]
			dom.lPos, dom.lOK = la, true
			dom.rPos, dom.rOK = ra, true
			destVal = lEdges[la]
		}

		merged = append(merged, destVal)
		doms = append(doms, dom)

		advanceL := !lExhausted && (rExhausted || lEdges[la] <= rEdges[ra])
		advanceR := !rExhausted && (lExhausted || rEdges[ra] <= lEdges[la])
		if advanceL {
			la++
		}
		if advanceR {
			ra++
		}
	}

	return merged, doms
}

// cellState reports whether operand g is "on" at the destination
// position described by the per-axis dominance triples, i.e. all three
// axes have a dominating edge in g and the corresponding vertex is
// marked.
func cellState(g *grid.Grid, dx, dy, dz axisDom) bool {
	return dx.lOK && dy.lOK && dz.lOK && g.IsMarked(dx.lPos, dy.lPos, dz.lPos)
}

// rCellState is cellState's mirror for the right operand, whose
// dominance fields are rPos/rOK rather than lPos/lOK.
func rCellState(g *grid.Grid, dx, dy, dz axisDom) bool {
	return dx.rOK && dy.rOK && dz.rOK && g.IsMarked(dx.rPos, dy.rPos, dz.rPos)
}

// Op produces a new Grid holding l `kind` r.
//
// Empty-operand shortcuts (spec.md §4.3): if l is empty, OR/XOR/RSUB
// return a copy of r and AND/SUB return empty; symmetrically for r
// empty.
//
// Returns grid.ErrTooComplex if the merged edge count on any axis would
// exceed grid.MaxEdgesPerAxis.
//
// Complexity: O((nx_l+nx_r)·(ny_l+ny_r)·(nz_l+nz_r)).
func Op(l, r *grid.Grid, kind OpKind) (*grid.Grid, error) {
	if l.IsEmpty() {
		return opEmptyLeft(r, kind)
	}
	if r.IsEmpty() {
		return opEmptyRight(l, kind)
	}

	mx, domX := axisDominance(l.X, r.X)
	my, domY := axisDominance(l.Y, r.Y)
	mz, domZ := axisDominance(l.Z, r.Z)

	dst, err := grid.NewOwned(mx, my, mz)
	if err != nil {
		return nil, err
	}

	for dx := range domX {
		for dy := range domY {
			for dz := range domZ {
				lOn := cellState(l, domX[dx], domY[dy], domZ[dz])
				rOn := rCellState(r, domX[dx], domY[dy], domZ[dz])
				if kind.eval(lOn, rOn) {
					dst.Mark(dx, dy, dz)
				}
			}
		}
	}

	return dst, nil
}

// Evaluate reports whether any cell in the merged grid of l and r
// satisfies kind's predicate, short-circuiting on the first hit.
//
// Complexity: worst case O((nx_l+nx_r)·(ny_l+ny_r)·(nz_l+nz_r)), but
// returns as soon as a satisfying cell is found.
func Evaluate(l, r *grid.Grid, kind OpKind) bool {
	if l.IsEmpty() {
		return evalEmptyLeft(r, kind)
	}
	if r.IsEmpty() {
		return evalEmptyRight(l, kind)
	}

	_, domX := axisDominance(l.X, r.X)
	_, domY := axisDominance(l.Y, r.Y)
	_, domZ := axisDominance(l.Z, r.Z)

	for dx := range domX {
		for dy := range domY {
			for dz := range domZ {
				lOn := cellState(l, domX[dx], domY[dy], domZ[dz])
				rOn := rCellState(r, domX[dx], domY[dy], domZ[dz])
				if kind.eval(lOn, rOn) {
					return true
				}
			}
		}
	}

	return false
}

// opEmptyLeft implements Op's shortcut table for an empty left operand.
func opEmptyLeft(r *grid.Grid, kind OpKind) (*grid.Grid, error) {
	switch kind {
	case OR, XOR, RSUB:
		return grid.Copy(r)
	default: // AND, SUB
		return grid.NewEmpty(), nil
	}
}

// opEmptyRight implements Op's shortcut table for an empty right operand.
func opEmptyRight(l *grid.Grid, kind OpKind) (*grid.Grid, error) {
	switch kind {
	case OR, SUB, XOR:
		return grid.Copy(l)
	default: // AND, RSUB
		return grid.NewEmpty(), nil
	}
}

// evalEmptyLeft mirrors opEmptyLeft for Evaluate's boolean result.
func evalEmptyLeft(r *grid.Grid, kind OpKind) bool {
	switch kind {
	case OR, XOR, RSUB:
		return !r.IsEmpty()
	default:
		return false
	}
}

// evalEmptyRight mirrors opEmptyRight for Evaluate's boolean result.
func evalEmptyRight(l *grid.Grid, kind OpKind) bool {
	switch kind {
	case OR, SUB, XOR:
		return !l.IsEmpty()
	default:
		return false
	}
}
