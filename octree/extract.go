package octree

// ExtractFaces walks the octree and returns every face the dual-contour
// procedure emits. Returns the empty slice if the tree has no root
// (the field was homogeneous over the world bounds). Calling it twice
// on the same tree yields identical output: extraction reads only the
// arena, which is immutable after RenderShape returns.
func (t *Octree) ExtractFaces() []Face {
	var faces []Face
	if !t.HasRoot() {
		return faces
	}
	t.cellProc(t.root, &faces)
	return faces
}

func (t *Octree) childOrSelf(idx OctantIdx, child int) OctantIdx {
	o := t.Get(idx)
	if o.IsLeaf() {
		return idx
	}
	return o.Children[child]
}

func (t *Octree) cellProc(idx OctantIdx, out *[]Face) {
	o := t.Get(idx)
	if o.IsLeaf() {
		return
	}
	children := *o.Children
	for i := 0; i < 8; i++ {
		t.cellProc(children[i], out)
	}
	for a := axisX; a <= axisZ; a++ {
		for _, pair := range CellFaceMap[a] {
			t.faceProc(a, children[pair[0]], children[pair[1]], out)
		}
	}
	for a := axisX; a <= axisZ; a++ {
		for _, quad := range CellEdgeMap[a] {
			t.edgeProc(a, children[quad[0]], children[quad[1]], children[quad[2]], children[quad[3]], out)
		}
	}
}

func (t *Octree) faceProc(a axis, c0, c1 OctantIdx, out *[]Face) {
	o0, o1 := t.Get(c0), t.Get(c1)
	if o0.IsLeaf() && o1.IsLeaf() {
		return
	}
	for _, pair := range FaceFaceMap[a] {
		t.faceProc(a, t.childOrSelf(c0, pair[0]), t.childOrSelf(c1, pair[1]), out)
	}
	for _, entry := range FaceEdgeMap[a] {
		cells := entry.cells
		t.edgeProc(entry.edgeAxis,
			t.childOrSelf(c0, cells[0]), t.childOrSelf(c0, cells[1]),
			t.childOrSelf(c1, cells[2]), t.childOrSelf(c1, cells[3]), out)
	}
}

func (t *Octree) edgeProc(a axis, c0, c1, c2, c3 OctantIdx, out *[]Face) {
	cells := [4]OctantIdx{c0, c1, c2, c3}
	allLeaves := true
	for _, c := range cells {
		if !t.Get(c).IsLeaf() {
			allLeaves = false
			break
		}
	}
	if allLeaves {
		if f, ok := t.makeFace(cells); ok {
			*out = append(*out, f)
		}
		return
	}
	for _, half := range EdgeEdgeMap[a] {
		t.edgeProc(a,
			t.childOrSelf(c0, half[0]), t.childOrSelf(c1, half[1]),
			t.childOrSelf(c2, half[2]), t.childOrSelf(c3, half[3]), out)
	}
}

// makeFace deduplicates the four cells meeting along a minimal edge by
// handle, preserving first-occurrence order, and emits a Quad if all
// four are distinct and feature-bearing, a Triangle if exactly three
// are, or nothing otherwise.
func (t *Octree) makeFace(cells [4]OctantIdx) (Face, bool) {
	var dedup []OctantIdx
	for _, c := range cells {
		seen := false
		for _, d := range dedup {
			if d == c {
				seen = true
				break
			}
		}
		if !seen {
			dedup = append(dedup, c)
		}
	}

	var features []OctantIdx
	for _, c := range dedup {
		if t.Get(c).Feature != nil {
			features = append(features, c)
		}
	}

	switch {
	case len(dedup) == 4 && len(features) == 4:
		return Face{
			Kind: KindQuad,
			UL:   *t.Get(dedup[0]).Feature,
			UR:   *t.Get(dedup[1]).Feature,
			LL:   *t.Get(dedup[2]).Feature,
			LR:   *t.Get(dedup[3]).Feature,
		}, true
	case len(dedup) == 3 && len(features) == 3:
		return Face{
			Kind: KindTriangle,
			UL:   *t.Get(dedup[0]).Feature,
			LL:   *t.Get(dedup[1]).Feature,
			LR:   *t.Get(dedup[2]).Feature,
		}, true
	default:
		return Face{}, false
	}
}
