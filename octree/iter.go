package octree

import "github.com/soypat/geometry/ms3"

// IterLeaves returns every leaf octant's handle exactly once, in
// depth-first order starting from the root. Returns nil if the tree
// has no root.
func (t *Octree) IterLeaves() []OctantIdx {
	if !t.HasRoot() {
		return nil
	}
	var leaves []OctantIdx
	var walk func(idx OctantIdx)
	walk = func(idx OctantIdx) {
		o := t.Get(idx)
		if o.IsLeaf() {
			leaves = append(leaves, idx)
			return
		}
		for _, c := range *o.Children {
			walk(c)
		}
	}
	walk(t.root)
	return leaves
}

// IterFeatures returns every present feature point, in leaf-iteration
// order.
func (t *Octree) IterFeatures() []ms3.Vec {
	var pts []ms3.Vec
	for _, idx := range t.IterLeaves() {
		if f := t.Get(idx).Feature; f != nil {
			pts = append(pts, *f)
		}
	}
	return pts
}
