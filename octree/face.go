package octree

import "github.com/soypat/geometry/ms3"

// FaceKind tells whether a Face is a Quad or a Triangle, and so which
// of Face's vertex fields are meaningful.
type FaceKind int

const (
	// KindQuad identifies a four-vertex face.
	KindQuad FaceKind = iota
	// KindTriangle identifies a three-vertex face, emitted when exactly
	// three of the four edge-incident leaves are distinct and carry
	// features.
	KindTriangle
)

// Face is a polygon emitted by the dual-contour extractor: a Quad with
// four vertices or a Triangle with three, in dedup order.
type Face struct {
	Kind FaceKind
	// UL, UR, LL, LR hold the Quad's four vertices (in dedup order) and
	// UL, LL, LR the Triangle's three, when Kind is the matching value.
	UL, UR, LL, LR ms3.Vec
}

// Vertices returns the face's vertices in emission order: four for a
// Quad, three for a Triangle.
func (f Face) Vertices() []ms3.Vec {
	if f.Kind == KindTriangle {
		return []ms3.Vec{f.UL, f.LL, f.LR}
	}
	return []ms3.Vec{f.UL, f.UR, f.LL, f.LR}
}
