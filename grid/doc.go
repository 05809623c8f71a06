// Package grid defines the central Grid, AABB, and Scalar types shared by
// every operation in the cuboid region algebra: per-axis sorted edge
// arrays, a packed vertex-occupancy bitset, and coordinate↔index mapping.
//
// A Grid never performs boolean combination, simplification, walking, or
// face extraction itself — those live in sibling packages (decompose,
// boolean, simplify, walk, face) that operate on a *Grid. grid only owns
// the representation: construction, coordinate mapping, bit access, and
// the Owned/Borrowed storage split described below.
//
// Coordinates are half-open: an AABB (x1,y1,z1,x2,y2,z2) occupies
// [x1,x2) × [y1,y2) × [z1,z2). A Grid vertex at position (px,py,pz) is
// "marked" iff the cell it originates — [X[px],X[px+1]) × ... — is part
// of the region. Consequently a marked vertex always has a successor on
// every axis (invariant 2); the last edge on any axis is never an origin.
//
// Ownership: X owns the backing coordinate buffer; Y and Z are slices
// into the same allocation (one buffer, three views). The bitset is
// owned by the Grid with one exception: a Grid built from a single AABB
// via NewBorrowed uses a process-lifetime shared bitset and must never
// be mutated — see view.go.
package grid
