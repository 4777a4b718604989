package field

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/soypat/geometry/ms3"
)

func sphereFn(r float32) Func {
	return func(x, y, z float32) float32 {
		return math32.Sqrt(x*x+y*y+z*z) - r
	}
}

func TestCall(t *testing.T) {
	f := New(sphereFn(5))
	got := f.Call(5, 0, 0)
	if math32.Abs(got) > 1e-4 {
		t.Fatalf("expected 0 at surface, got %v", got)
	}
	if f.Call(0, 0, 0) >= 0 {
		t.Fatalf("expected negative distance at origin")
	}
	if f.Call(10, 0, 0) < 0 {
		t.Fatalf("expected non-negative distance outside sphere")
	}
}

func TestCallPoint(t *testing.T) {
	f := New(sphereFn(5))
	got := f.CallPoint(ms3.Vec{X: 5, Y: 0, Z: 0})
	if math32.Abs(got) > 1e-4 {
		t.Fatalf("expected 0, got %v", got)
	}
}

func TestNormalUnitLength(t *testing.T) {
	f := New(sphereFn(5))
	n := f.Normal(5, 0, 0)
	length := math32.Sqrt(n.X*n.X + n.Y*n.Y + n.Z*n.Z)
	if math32.Abs(length-1) > 1e-3 {
		t.Fatalf("expected unit normal, got length %v", length)
	}
	if n.X < 0.9 {
		t.Fatalf("expected normal to point along +x, got %v", n)
	}
}

func TestNormalZeroGradient(t *testing.T) {
	f := New(func(x, y, z float32) float32 { return 1 })
	n := f.Normal(1, 2, 3)
	if n != (ms3.Vec{}) {
		t.Fatalf("expected zero vector for constant field, got %v", n)
	}
}
