package grid

// Scalar is a real coordinate value. Equality on Scalar is exact within
// this package; callers are responsible for any tolerance-based
// quantization before constructing an AABB (see Tolerance).
type Scalar = float64

// AABB is a half-open axis-aligned bounding box: it occupies
// [X1,X2) × [Y1,Y2) × [Z1,Z2). The invariant X1<X2 && Y1<Y2 && Z1<Z2 must
// hold; Validate reports ErrInvalidAABB otherwise.
type AABB struct {
	X1, Y1, Z1 Scalar
	X2, Y2, Z2 Scalar
}

// Validate reports ErrInvalidAABB if a does not satisfy the strict box
// ordering invariant on every axis.
func (a AABB) Validate() error {
	if !(a.X1 < a.X2 && a.Y1 < a.Y2 && a.Z1 < a.Z2) {
		return ErrInvalidAABB
	}

	return nil
}

// kind distinguishes a freshly-allocated, mutable Grid from a read-only
// Borrowed view over a single AABB with a statically-shared bitset.
type kind uint8

const (
	kindOwned kind = iota
	kindBorrowed
)

// Grid is the packed edge/bitset representation of a cuboid region.
//
// X, Y, Z are strictly-increasing slices of distinct Scalars (the edges
// on each axis). For an Owned Grid they share one backing allocation (X
// is the owning slice; Y and Z are sub-slices of the same array) per the
// single-owner release contract in spec.md §3/§9. d is the bit-packing
// displacement, re-derived from max(nx,ny,nz) whenever the edge arrays
// are (re)built. bits is the packed vertex-occupancy bitset; its bit at
// index(px,py,pz) is set iff vertex (X[px],Y[py],Z[pz]) is the origin of
// a cell in the region.
type Grid struct {
	X, Y, Z []Scalar
	d       uint
	bits    []uint32
	k       kind

	// borrowBuf backs X/Y/Z for a kindBorrowed Grid (see view.go); it is
	// unused (nil) for a kindOwned Grid, whose edges live in one shared
	// slice allocated by the owner.
	borrowBuf *[6]Scalar
}

// NX, NY, NZ report the edge counts on each axis.
func (g *Grid) NX() int { return len(g.X) }
func (g *Grid) NY() int { return len(g.Y) }
func (g *Grid) NZ() int { return len(g.Z) }

// Displacement returns the current bit-packing shift d.
func (g *Grid) Displacement() uint { return g.d }

// IsEmpty reports whether g represents the empty region: any axis has no
// edges, or no vertex is marked.
func (g *Grid) IsEmpty() bool {
	if g.NX() == 0 || g.NY() == 0 || g.NZ() == 0 {
		return true
	}
	for _, w := range g.bits {
		if w != 0 {
			return false
		}
	}

	return true
}

// Release frees the edge buffer and bitset. On a Borrowed view (see
// view.go) Release is a no-op: the backing storage is process-lifetime
// and shared across every Borrowed Grid.
func (g *Grid) Release() {
	if g.k == kindBorrowed {
		return
	}
	g.X, g.Y, g.Z = nil, nil, nil
	g.bits = nil
	g.d = 0
}
