// Package csg supplies a handful of constructive-solid-geometry field
// constructors — sphere, axis-aligned box, and boolean union/intersect
// composition — used to build fields for end-to-end testing of the
// octree and extractor. It is a deliberately small supplement: the
// core octree/feature/extraction packages treat a field as an
// arbitrary opaque closure and have no dependency on this package.
//
// The distance formulas mirror the CPU-only SDF evaluators used
// elsewhere for GPU shader generation (the same signed distances,
// without the shader-codegen machinery, which is out of scope here).
package csg

import (
	"github.com/chewxy/math32"
	"github.com/soypat/geometry/ms3"

	"github.com/benbrittain/dualcontour/field"
)

// Sphere returns a field whose zero isosurface is a sphere of radius r
// centered at center.
func Sphere(center ms3.Vec, r float32) field.Field {
	return field.New(func(x, y, z float32) float32 {
		dx, dy, dz := x-center.X, y-center.Y, z-center.Z
		return math32.Sqrt(dx*dx+dy*dy+dz*dz) - r
	})
}

// Box returns a field whose zero isosurface is an axis-aligned box
// centered at center with the given full side dims.
func Box(center, dims ms3.Vec) field.Field {
	half := ms3.Scale(0.5, dims)
	return field.New(func(x, y, z float32) float32 {
		p := ms3.Vec{X: x - center.X, Y: y - center.Y, Z: z - center.Z}
		qx := math32.Abs(p.X) - half.X
		qy := math32.Abs(p.Y) - half.Y
		qz := math32.Abs(p.Z) - half.Z
		ax, ay, az := math32.Max(qx, 0), math32.Max(qy, 0), math32.Max(qz, 0)
		outside := math32.Sqrt(ax*ax + ay*ay + az*az)
		inside := math32.Min(math32.Max(qx, math32.Max(qy, qz)), 0)
		return outside + inside
	})
}

// Cube returns a field whose zero isosurface is the axis-aligned cube
// |x|,|y|,|z| = side/2 at the origin, expressed as max(|x|,|y|,|z|)-r —
// the Chebyshev-distance form used by scenario 5.
func Cube(r float32) field.Field {
	return field.New(func(x, y, z float32) float32 {
		ax, ay, az := math32.Abs(x), math32.Abs(y), math32.Abs(z)
		m := math32.Max(ax, math32.Max(ay, az))
		return m - r
	})
}

// Union returns a field for the union of a and b: min(a,b).
func Union(a, b field.Field) field.Field {
	return field.New(func(x, y, z float32) float32 {
		return math32.Min(a.Call(x, y, z), b.Call(x, y, z))
	})
}

// Intersect returns a field for the intersection of a and b: max(a,b).
func Intersect(a, b field.Field) field.Field {
	return field.New(func(x, y, z float32) float32 {
		return math32.Max(a.Call(x, y, z), b.Call(x, y, z))
	})
}
