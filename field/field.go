// Package field wraps an opaque signed scalar function of three
// coordinates and exposes the pointwise evaluation and numerical
// gradient operations the octree builder and feature solver need.
package field

import (
	"github.com/chewxy/math32"
	"github.com/soypat/geometry/ms3"
)

// step is the fixed central-difference step used by Normal. It is not
// configurable: callers needing a different step build their own
// Field with a pre-scaled Func.
const step = 1e-3

// Func is the user-supplied signed distance evaluator. Negative values
// mean inside, non-negative mean outside.
type Func func(x, y, z float32) float32

// Field wraps a Func and derives normals from it by finite differences.
// A Field is immutable after construction and safe for concurrent use
// by multiple goroutines, provided fn is itself safe for concurrent use.
type Field struct {
	fn Func
}

// New wraps fn as a Field.
func New(fn Func) Field {
	return Field{fn: fn}
}

// Call evaluates the field at (x, y, z).
func (f Field) Call(x, y, z float32) float32 {
	return f.fn(x, y, z)
}

// CallPoint evaluates the field at p.
func (f Field) CallPoint(p ms3.Vec) float32 {
	return f.fn(p.X, p.Y, p.Z)
}

// Normal computes the unit gradient of the field at (x, y, z) via
// central differences with a fixed step of 1e-3 on each axis. If the
// finite-difference gradient has zero length the zero vector is
// returned; callers (the feature solver) treat that sample as unusable.
func (f Field) Normal(x, y, z float32) ms3.Vec {
	const h = step
	dx := f.fn(x+h, y, z) - f.fn(x-h, y, z)
	dy := f.fn(x, y+h, z) - f.fn(x, y-h, z)
	dz := f.fn(x, y, z+h) - f.fn(x, y, z-h)
	g := ms3.Vec{X: dx, Y: dy, Z: dz}
	length := math32.Sqrt(g.X*g.X + g.Y*g.Y + g.Z*g.Z)
	if length == 0 {
		return ms3.Vec{}
	}
	return ms3.Scale(1/length, g)
}

// NormalAt is a convenience wrapper around Normal taking a point.
func (f Field) NormalAt(p ms3.Vec) ms3.Vec {
	return f.Normal(p.X, p.Y, p.Z)
}
