package grid

// NewOwned allocates a fresh, mutable Grid over the given strictly
// increasing, already-deduplicated edge slices. It derives the bit
// displacement from max(nx,ny,nz), allocates a zeroed bitset sized per
// the packed-index layout, and copies x, y, z into one shared backing
// buffer so the result obeys the single-owner release contract.
//
// Callers (decompose, boolean, simplify) are responsible for producing
// sorted, duplicate-free edge slices; NewOwned does not re-sort them.
//
// Complexity: O(nx+ny+nz) to copy edges, O(bits/32) to allocate the
// bitset.
func NewOwned(x, y, z []Scalar) (*Grid, error) {
	nx, ny, nz := len(x), len(y), len(z)
	if nx > MaxEdgesPerAxis || ny > MaxEdgesPerAxis || nz > MaxEdgesPerAxis {
		return nil, ErrTooComplex
	}

	d, err := displacementFor(max3(nx, ny, nz))
	if err != nil {
		return nil, err
	}

	buf := make([]Scalar, nx+ny+nz)
	copy(buf[:nx], x)
	copy(buf[nx:nx+ny], y)
	copy(buf[nx+ny:], z)

	nw := wordCount(nx, ny, nz, d)
	bits := make([]uint32, nw)

	return &Grid{
		X: buf[:nx:nx],
		Y: buf[nx : nx+ny : nx+ny],
		Z: buf[nx+ny : nx+ny+nz],
		d: d,
		k: kindOwned,
		bits: bits,
	}, nil
}

// newEmpty returns an Owned Grid with no edges on any axis: the canonical
// empty region.
func newEmpty() *Grid {
	return &Grid{X: []Scalar{}, Y: []Scalar{}, Z: []Scalar{}, k: kindOwned}
}

// NewEmpty returns a fresh, empty Owned Grid (nx=ny=nz=0). It satisfies
// IsEmpty and is a valid destination for Release.
func NewEmpty() *Grid {
	return newEmpty()
}

func max3(a, b, c int) int {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}

	return m
}
