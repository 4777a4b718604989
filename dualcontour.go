// Package dualcontour converts a signed scalar field in three
// dimensions into a polygonal approximation of its zero isosurface,
// using an adaptive octree and dual contouring.
//
// The algorithmic core lives in the field and octree subpackages;
// Mesh is a thin convenience wrapper tying them together for the
// common case of "build once, extract once".
package dualcontour

import (
	"github.com/benbrittain/dualcontour/field"
	"github.com/benbrittain/dualcontour/octree"
)

// Mesh builds an octree for fn over the cube [lower, upper]^3 at the
// given resolution and returns its extracted faces. opts controls the
// feature solver's optional centroid-pull regularization; the zero
// value selects the production (plain least-squares) behavior.
func Mesh(lower, upper, resolution float32, fn field.Func, opts octree.Options) []octree.Face {
	f := field.New(fn)
	tr := octree.New(lower, upper)
	tr.RenderShape(resolution, f, opts)
	return tr.ExtractFaces()
}
