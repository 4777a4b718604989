package octree

import "github.com/soypat/geometry/ms3"

// OctantIdx is a stable handle into an Octree's arena. Handles are
// never reused and remain valid for the lifetime of the Octree.
type OctantIdx int

// noIdx marks the absence of a handle (e.g. an octree with no root).
const noIdx OctantIdx = -1

// Octant is one cell of the octree. Children is nil for a leaf and
// holds eight handles, ordered per the canonical child numbering
// (index = 4*X + 2*Y + 1*Z), for an internal node. Feature is non-nil
// only for a leaf that straddles the isosurface and whose solver
// produced a point.
//
// Octants are immutable after construction, except that an internal
// node's Children field is set exactly once, right after its eight
// children have been inserted into the arena.
type Octant struct {
	X, Y, Z  Axis
	Children *[8]OctantIdx
	Feature  *ms3.Vec
}

// IsLeaf reports whether the octant has no children.
func (o *Octant) IsLeaf() bool {
	return o.Children == nil
}

// Bounds returns the octant's cube as an ms3.Box.
func (o *Octant) Bounds() ms3.Box {
	return ms3.Box{
		Min: ms3.Vec{X: o.X.Lower, Y: o.Y.Lower, Z: o.Z.Lower},
		Max: ms3.Vec{X: o.X.Upper, Y: o.Y.Upper, Z: o.Z.Upper},
	}
}

// Octree is a flat, append-only arena of octants covering the cube
// WorldRange^3. Root is noIdx only for an empty or fully-homogeneous
// build.
type Octree struct {
	arena      []Octant
	root       OctantIdx
	WorldRange Axis
}

// New creates an empty Octree spanning the cube [lower, upper]^3. Call
// RenderShape to populate it from a field.
func New(lower, upper float32) *Octree {
	return &Octree{
		root:       noIdx,
		WorldRange: NewAxis(lower, upper),
	}
}

// HasRoot reports whether the tree has a materialized root octant,
// i.e. whether the field was non-homogeneous over the world bounds.
func (t *Octree) HasRoot() bool {
	return t.root != noIdx
}

// Root returns the handle of the top-level octant. Only valid if
// HasRoot reports true.
func (t *Octree) Root() OctantIdx {
	return t.root
}

// Get dereferences a handle into the arena.
func (t *Octree) Get(idx OctantIdx) *Octant {
	return &t.arena[idx]
}

// Len returns the number of octants in the arena.
func (t *Octree) Len() int {
	return len(t.arena)
}

// addOctant appends o to the arena and returns its handle.
func (t *Octree) addOctant(o Octant) OctantIdx {
	t.arena = append(t.arena, o)
	return OctantIdx(len(t.arena) - 1)
}
