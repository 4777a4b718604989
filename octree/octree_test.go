package octree

import (
	"math"
	"testing"

	"github.com/chewxy/math32"
	"github.com/soypat/geometry/ms3"

	"github.com/benbrittain/dualcontour/field"
)

func sphereField(r float32) field.Field {
	return field.New(func(x, y, z float32) float32 {
		return math32.Sqrt(x*x+y*y+z*z) - r
	})
}

func TestEmptyInside(t *testing.T) {
	f := field.New(func(x, y, z float32) float32 { return 1 })
	tr := New(-128, 128)
	tr.RenderShape(1.0, f, Options{})
	if tr.HasRoot() {
		t.Fatalf("expected no root for homogeneous positive field")
	}
	if faces := tr.ExtractFaces(); len(faces) != 0 {
		t.Fatalf("expected no faces, got %d", len(faces))
	}
}

func TestEmptyOutside(t *testing.T) {
	f := field.New(func(x, y, z float32) float32 { return -1 })
	tr := New(-128, 128)
	tr.RenderShape(1.0, f, Options{})
	if tr.HasRoot() {
		t.Fatalf("expected no root for homogeneous negative field")
	}
	if faces := tr.ExtractFaces(); len(faces) != 0 {
		t.Fatalf("expected no faces, got %d", len(faces))
	}
}

func TestAxisAlignedPlane(t *testing.T) {
	f := field.New(func(x, y, z float32) float32 { return z })
	tr := New(-8, 8)
	tr.RenderShape(1.0, f, Options{})
	if !tr.HasRoot() {
		t.Fatalf("expected a root for a plane field")
	}
	const tol = 1.0 / 1024 // 2^-10
	for _, p := range tr.IterFeatures() {
		if math32.Abs(p.Z) > tol+1e-3 {
			t.Errorf("feature %v has |z| > tolerance", p)
		}
	}
	faces := tr.ExtractFaces()
	if len(faces) == 0 {
		t.Fatalf("expected faces for a plane field")
	}
}

func TestSphereFeaturesNearSurface(t *testing.T) {
	f := sphereField(100)
	tr := New(-128, 128)
	tr.RenderShape(1.0, f, Options{})
	if !tr.HasRoot() {
		t.Fatalf("expected root for sphere field")
	}
	for _, p := range tr.IterFeatures() {
		r := math32.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
		if math32.Abs(r-100) > 1.0 {
			t.Errorf("feature %v has radius %v, want close to 100", p, r)
		}
	}
}

func TestCubeFaces(t *testing.T) {
	f := field.New(func(x, y, z float32) float32 {
		ax, ay, az := math32.Abs(x), math32.Abs(y), math32.Abs(z)
		m := ax
		if ay > m {
			m = ay
		}
		if az > m {
			m = az
		}
		return m - 10
	})
	tr := New(-16, 16)
	tr.RenderShape(0.5, f, Options{})
	if !tr.HasRoot() {
		t.Fatalf("expected root for cube field")
	}
	faces := tr.ExtractFaces()
	if len(faces) == 0 {
		t.Fatalf("expected faces for a cube field")
	}
	var sawTriangle bool
	for _, fc := range faces {
		if fc.Kind == KindTriangle {
			sawTriangle = true
		}
	}
	if !sawTriangle {
		t.Errorf("expected at least one triangular face near a cube corner")
	}
}

func TestUnionOfSpheres(t *testing.T) {
	f1 := func(x, y, z float32) float32 { return math32.Sqrt(x*x+y*y+z*z) - 5 }
	f2 := func(x, y, z float32) float32 {
		dx, dy, dz := x-7, y, z
		return math32.Sqrt(dx*dx+dy*dy+dz*dz) - 5
	}
	f := field.New(func(x, y, z float32) float32 {
		a, b := f1(x, y, z), f2(x, y, z)
		if a < b {
			return a
		}
		return b
	})
	tr := New(-16, 16)
	tr.RenderShape(0.25, f, Options{})
	if !tr.HasRoot() {
		t.Fatalf("expected root for union of spheres")
	}
	faces := tr.ExtractFaces()
	if len(faces) == 0 {
		t.Fatalf("expected faces for union of spheres")
	}
}

func TestExtractFacesDeterministic(t *testing.T) {
	f := sphereField(10)
	tr := New(-16, 16)
	tr.RenderShape(1.0, f, Options{})
	a := tr.ExtractFaces()
	b := tr.ExtractFaces()
	if len(a) != len(b) {
		t.Fatalf("expected deterministic face count, got %d and %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("face %d differs between runs", i)
		}
	}
}

func TestFinerNeverCoarser(t *testing.T) {
	f := sphereField(10)
	coarse := New(-16, 16)
	coarse.RenderShape(2.0, f, Options{})
	fine := New(-16, 16)
	fine.RenderShape(1.0, f, Options{})
	if len(fine.IterLeaves()) < len(coarse.IterLeaves()) {
		t.Errorf("finer resolution produced fewer leaves: %d < %d", len(fine.IterLeaves()), len(coarse.IterLeaves()))
	}
}

func TestFindPointOnEdgeBisectionTolerance(t *testing.T) {
	f := field.New(func(x, y, z float32) float32 { return x - 3.7 })
	p1 := ms3.Vec{}
	p2 := ms3.Vec{X: 8}
	p, ok := FindPointOnEdge(p1, p2, f)
	if !ok {
		t.Fatalf("expected a crossing")
	}
	want := float32(3.7)
	tol := float32(8) / 1024
	if math.Abs(float64(p.X-want)) > float64(tol) {
		t.Errorf("bisection result %v outside tolerance of %v (tol %v)", p.X, want, tol)
	}
}

func TestFindPointOnEdgeNoCrossing(t *testing.T) {
	f := field.New(func(x, y, z float32) float32 { return 1 })
	_, ok := FindPointOnEdge(ms3.Vec{}, ms3.Vec{X: 1}, f)
	if ok {
		t.Fatalf("expected no crossing for a uniformly positive field")
	}
}

func TestAxisSplitAndCenter(t *testing.T) {
	a := NewAxis(2, -2)
	if a.Lower != -2 || a.Upper != 2 {
		t.Fatalf("expected axis to normalize reversed bounds, got %+v", a)
	}
	if a.Center() != 0 {
		t.Fatalf("expected center 0, got %v", a.Center())
	}
	lo, hi := a.Split()
	if lo.Lower != -2 || lo.Upper != 0 || hi.Lower != 0 || hi.Upper != 2 {
		t.Fatalf("unexpected split result: %+v %+v", lo, hi)
	}
}
