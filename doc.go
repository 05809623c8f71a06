// Package cuboidregion is an exact 3D region algebra library for
// axis-aligned bounding boxes (AABBs).
//
// Given a finite collection of AABBs in continuous 3-space, it builds a
// compact edge-decomposition representation — the Grid — on which
// boolean combination, equality, containment, intersection, emptiness,
// enumeration as disjoint AABBs, canonical simplification, and cross-sectional
// face extraction are all exact operations.
//
// Everything is organized under focused subpackages:
//
//	grid/      — the Grid type: per-axis sorted edges + a packed vertex bitset
//	decompose/ — builds a Grid from a list of AABBs
//	boolean/   — OR/AND/SUB/XOR/RSUB combination, Equal/Contains/Intersects
//	simplify/  — redundant-edge elimination
//	walk/      — enumerates a Grid's region as disjoint AABBs
//	face/      — extracts a 2D cross-section at a coordinate on one axis
//	ops/       — AABB-shaped convenience wrappers over boolean
//
// Data flow:
//
//	[]AABB ──decompose──▶ Grid
//	Grid × Grid ──boolean.Op──▶ Grid
//	Grid ──simplify──▶ Grid
//	Grid ──walk──▶ []AABB
//	Grid × (axis, pos) ──face──▶ Grid
//
//	go get github.com/halvera/cuboidregion
package cuboidregion
