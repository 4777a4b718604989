package octree

import (
	"github.com/chewxy/math32"

	"github.com/benbrittain/dualcontour/field"
)

// subResult is the transient result of subdivide: either a value
// sampled at a homogeneous subcube (returnable to the parent for
// merging) or the handle of a concrete octant already inserted into
// the arena.
type subResult struct {
	isIdx bool
	idx   OctantIdx
	value float32
	// x, y, z record the axes of the cube that produced value, so that
	// a sibling which fails to merge can materialize this child with
	// its true extents rather than reusing a stale sibling's axes.
	x, y, z Axis
}

// RenderShape builds the octree from field over the tree's world
// bounds at the given resolution. depth = floor(log2(worldLength /
// resolution)); the resulting octree's Root is the outermost internal
// node created by the build, or HasRoot() is false if the field is
// homogeneous over the whole world cube.
//
// ShapeHandle is a forward-compatibility placeholder for future
// multi-shape octrees; the returned value is always 0.
func (t *Octree) RenderShape(resolution float32, f field.Field, opts Options) int {
	if resolution <= 0 {
		panic("octree: resolution must be positive")
	}
	depth := int(math32.Log2(t.WorldRange.Length() / resolution))
	if depth < 0 {
		depth = 0
	}
	t.subdivide(t.WorldRange, t.WorldRange, t.WorldRange, depth, f, opts)
	return 0
}

// subdivide recurses top-down over (x, y, z), splitting at each level
// until depth reaches zero, merging homogeneous regions, and
// materializing leaves (with features) at the fringe of the merge.
func (t *Octree) subdivide(x, y, z Axis, depth int, f field.Field, opts Options) subResult {
	if depth == 0 {
		cx, cy, cz := x.Center(), y.Center(), z.Center()
		return subResult{value: f.Call(cx, cy, cz), x: x, y: y, z: z}
	}

	xl, xh := x.Split()
	yl, yh := y.Split()
	zl, zh := z.Split()

	// Canonical child order: index = 4*(x high) + 2*(y high) + 1*(z high).
	subAxes := [8][3]Axis{
		{xl, yl, zl}, // 0: low, low, low
		{xl, yl, zh}, // 1: low, low, high
		{xl, yh, zl}, // 2: low, high, low
		{xl, yh, zh}, // 3: low, high, high
		{xh, yl, zl}, // 4: high, low, low
		{xh, yl, zh}, // 5: high, low, high
		{xh, yh, zl}, // 6: high, high, low
		{xh, yh, zh}, // 7: high, high, high
	}

	var children [8]subResult
	for i, ax := range subAxes {
		children[i] = t.subdivide(ax[0], ax[1], ax[2], depth-1, f, opts)
	}

	if allHomogeneous(children) {
		merged := children[0]
		merged.x, merged.y, merged.z = x, y, z
		return merged
	}

	root := t.addOctant(Octant{X: x, Y: y, Z: z})
	var handles [8]OctantIdx
	for i, c := range children {
		if c.isIdx {
			handles[i] = c.idx
			continue
		}
		leaf := Octant{X: c.x, Y: c.y, Z: c.z}
		if p, ok := NewFeature(c.x, c.y, c.z, f, opts); ok {
			pp := p
			leaf.Feature = &pp
		}
		handles[i] = t.addOctant(leaf)
	}
	t.arena[root].Children = &handles
	t.root = root
	return subResult{isIdx: true, idx: root}
}

// allHomogeneous reports whether every child is a Value and all share
// the same sign (all negative, or all non-negative).
func allHomogeneous(children [8]subResult) bool {
	for _, c := range children {
		if c.isIdx {
			return false
		}
	}
	neg := children[0].value < 0
	for _, c := range children {
		if (c.value < 0) != neg {
			return false
		}
	}
	return true
}
