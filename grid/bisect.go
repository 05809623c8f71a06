package grid

import "sort"

// displacementFor returns the smallest d in [0,10] such that 2^d >= n,
// the bit-packing shift used once n = max(nx,ny,nz). It reports
// ErrTooComplex if n exceeds what any d <= maxDisplacement can encode.
func displacementFor(n int) (uint, error) {
	var d uint
	for (1 << d) < n {
		d++
		if d > maxDisplacement {
			return 0, ErrTooComplex
		}
	}

	return d, nil
}

// index computes the packed bitset index for a vertex position, using
// g's current displacement.
//
// Complexity: O(1).
func (g *Grid) index(px, py, pz int) int {
	return (px << (2 * g.d)) + (py << g.d) + pz
}

// wordCount returns the number of 32-bit words required to back a
// bitset for the given axis lengths and displacement d.
func wordCount(nx, ny, nz int, d uint) int {
	total := nx<<(2*d) + ny<<d + nz
	return (total + wordBits - 1) / wordBits
}

// IsMarked reports whether the vertex at (px,py,pz) is an occupied
// region origin.
//
// Complexity: O(1).
func (g *Grid) IsMarked(px, py, pz int) bool {
	i := g.index(px, py, pz)
	w, b := i/wordBits, uint(i%wordBits)

	return w < len(g.bits) && g.bits[w]&(1<<b) != 0
}

// Mark sets the occupancy bit for vertex (px,py,pz). Mark panics if g is
// a Borrowed view; callers must only Mark a freshly-allocated Owned Grid.
//
// Complexity: O(1).
func (g *Grid) Mark(px, py, pz int) {
	if g.k == kindBorrowed {
		panic(ErrBorrowed)
	}
	i := g.index(px, py, pz)
	w, b := i/wordBits, uint(i%wordBits)
	g.bits[w] |= 1 << b
}

// Bisect returns the position of the greatest edge on axis a that is
// <= v, and true. If every edge on a exceeds v, it returns (0, false).
//
// Complexity: O(log n).
func (g *Grid) Bisect(a Axis, v Scalar) (int, bool) {
	edges := g.edgesOn(a)
	// sort.Search finds the first index for which edges[i] > v; the
	// greatest edge <= v is therefore at i-1.
	i := sort.Search(len(edges), func(i int) bool { return edges[i] > v })
	if i == 0 {
		return 0, false
	}

	return i - 1, true
}

// edgesOn returns the edge slice for axis a.
func (g *Grid) edgesOn(a Axis) []Scalar {
	switch a {
	case AxisX:
		return g.X
	case AxisY:
		return g.Y
	default:
		return g.Z
	}
}

// IsAABBOrigin reports whether (x,y,z) is exactly an edge position on
// every axis and the corresponding vertex is marked. Per half-open
// semantics, the upper corner of a decomposed AABB is never an origin.
//
// Complexity: O(log nx + log ny + log nz).
func (g *Grid) IsAABBOrigin(x, y, z Scalar) bool {
	px, ok := exactPos(g.X, x)
	if !ok {
		return false
	}
	py, ok := exactPos(g.Y, y)
	if !ok {
		return false
	}
	pz, ok := exactPos(g.Z, z)
	if !ok {
		return false
	}

	return g.IsMarked(px, py, pz)
}

// exactPos returns the position of v in the strictly-increasing slice
// edges, and true, or (0, false) if v is not present.
func exactPos(edges []Scalar, v Scalar) (int, bool) {
	i := sort.Search(len(edges), func(i int) bool { return edges[i] >= v })
	if i < len(edges) && edges[i] == v {
		return i, true
	}

	return 0, false
}
