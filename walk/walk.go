// File: walk.go
// Role: BFS-style enumeration of disjoint AABBs covering a Grid's region.
// Determinism: deterministic for a given Grid (scan order is fixed X/Y/Z
// major, queue order is FIFO).
// Concurrency: a single Walk call is not safe to invoke concurrently with
// mutation of g; concurrent calls across distinct, unmutated Grids are
// fine.
package walk

import (
	"fmt"

	"github.com/halvera/cuboidregion/grid"
)

// Walk enumerates disjoint AABBs covering g's region and calls visit
// with each, in discovery order. If visit returns a non-nil error, Walk
// stops and propagates that error. Walk returns nil once the whole region
// has been covered, or once MaxCuboids cuboids have been emitted if that
// option is set.
func Walk(g *grid.Grid, visit func(grid.AABB) error, opts ...Option) error {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o.err
	}

	nx, ny, nz := g.NX(), g.NY(), g.NZ()
	if nx == 0 || ny == 0 || nz == 0 {
		return nil
	}

	q := newIndexRegionQueue()
	// The last edge position on each axis is never a cuboid origin
	// (invariant 2: a marked vertex always has a successor edge), so the
	// initial region only needs to be explored up to nx-1/ny-1/nz-1; the
	// final edge is still reachable as an upper bound once a cuboid's
	// growth phase considers it.
	q.Push(IndexRegion{X1: 0, X2: nx - 1, Y1: 0, Y2: ny - 1, Z1: 0, Z2: nz - 1})

	emitted := 0
	for {
		select {
		case <-o.Ctx.Done():
			return o.Ctx.Err()
		default:
		}

		next, ok := q.Pop()
		if !ok {
			return nil
		}

		cuboid, found := findCuboid(g, next)
		if !found {
			continue
		}

		aabb, err := toAABB(g, cuboid)
		if err != nil {
			return err
		}
		if err := visit(aabb); err != nil {
			return err
		}

		emitted++
		if o.MaxCuboids > 0 && emitted >= o.MaxCuboids {
			return nil
		}

		for _, rem := range subtract(next, cuboid) {
			o.OnEnqueue(rem)
			q.Push(rem)
		}
	}
}

// findCuboid locates the first occupied vertex in part, scanning X
// outermost then Y then Z, and grows a cuboid from it, as far as part's
// upper bounds allow: first
// along X at the origin's Y and Z, then along Y across the discovered X
// extent at the origin's Z, then along Z across the discovered X and Y
// extent. Reports false if part contains no occupied vertex.
func findCuboid(g *grid.Grid, part IndexRegion) (IndexRegion, bool) {
	ox, oy, oz, found := firstOccupied(g, part)
	if !found {
		return IndexRegion{}, false
	}

	xEnd := ox + 1
	for xEnd < part.X2 && g.IsMarked(xEnd, oy, oz) {
		xEnd++
	}

	yEnd := oy + 1
	for yEnd < part.Y2 && rowOccupied(g, ox, xEnd, yEnd, oz) {
		yEnd++
	}

	zEnd := oz + 1
	for zEnd < part.Z2 && sliceOccupied(g, ox, xEnd, oy, yEnd, zEnd) {
		zEnd++
	}

	return IndexRegion{X1: ox, X2: xEnd, Y1: oy, Y2: yEnd, Z1: oz, Z2: zEnd}, true
}

func firstOccupied(g *grid.Grid, part IndexRegion) (x, y, z int, found bool) {
	for x := part.X1; x < part.X2; x++ {
		for y := part.Y1; y < part.Y2; y++ {
			for z := part.Z1; z < part.Z2; z++ {
				if g.IsMarked(x, y, z) {
					return x, y, z, true
				}
			}
		}
	}

	return 0, 0, 0, false
}

func rowOccupied(g *grid.Grid, x1, x2, y, z int) bool {
	for x := x1; x < x2; x++ {
		if !g.IsMarked(x, y, z) {
			return false
		}
	}

	return true
}

func sliceOccupied(g *grid.Grid, x1, x2, y1, y2, z int) bool {
	for y := y1; y < y2; y++ {
		if !rowOccupied(g, x1, x2, y, z) {
			return false
		}
	}

	return true
}

// subtract partitions current minus cuboid into up to six disjoint
// IndexRegions that, together with cuboid, exactly tile current.
func subtract(current, cuboid IndexRegion) []IndexRegion {
	var rem []IndexRegion
	pending := current

	if cuboid.X1 > current.X1 {
		p := pending
		p.X2 = cuboid.X1
		rem = append(rem, p)
	}
	if cuboid.X2 < current.X2 {
		p := pending
		p.X1 = cuboid.X2
		p.X2 = current.X2
		rem = append(rem, p)
	}
	pending.X1, pending.X2 = cuboid.X1, cuboid.X2

	if cuboid.Y1 > current.Y1 {
		p := pending
		p.Y2 = cuboid.Y1
		rem = append(rem, p)
	}
	if cuboid.Y2 < current.Y2 {
		p := pending
		p.Y1 = cuboid.Y2
		p.Y2 = current.Y2
		rem = append(rem, p)
	}
	pending.Y1, pending.Y2 = cuboid.Y1, cuboid.Y2

	if cuboid.Z1 > current.Z1 {
		p := pending
		p.Z2 = cuboid.Z1
		rem = append(rem, p)
	}
	if cuboid.Z2 < current.Z2 {
		p := pending
		p.Z1 = cuboid.Z2
		p.Z2 = current.Z2
		rem = append(rem, p)
	}

	return rem
}

func toAABB(g *grid.Grid, r IndexRegion) (grid.AABB, error) {
	x1, ok := g.EdgeAt(grid.AxisX, r.X1)
	if !ok {
		return grid.AABB{}, fmt.Errorf("walk: invalid X1 position %d", r.X1)
	}
	x2, ok := g.EdgeAt(grid.AxisX, r.X2)
	if !ok {
		return grid.AABB{}, fmt.Errorf("walk: invalid X2 position %d", r.X2)
	}
	y1, ok := g.EdgeAt(grid.AxisY, r.Y1)
	if !ok {
		return grid.AABB{}, fmt.Errorf("walk: invalid Y1 position %d", r.Y1)
	}
	y2, ok := g.EdgeAt(grid.AxisY, r.Y2)
	if !ok {
		return grid.AABB{}, fmt.Errorf("walk: invalid Y2 position %d", r.Y2)
	}
	z1, ok := g.EdgeAt(grid.AxisZ, r.Z1)
	if !ok {
		return grid.AABB{}, fmt.Errorf("walk: invalid Z1 position %d", r.Z1)
	}
	z2, ok := g.EdgeAt(grid.AxisZ, r.Z2)
	if !ok {
		return grid.AABB{}, fmt.Errorf("walk: invalid Z2 position %d", r.Z2)
	}

	return grid.AABB{X1: x1, Y1: y1, Z1: z1, X2: x2, Y2: y2, Z2: z2}, nil
}
