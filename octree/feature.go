package octree

import (
	"fmt"

	"github.com/soypat/geometry/ms3"
	"gonum.org/v1/gonum/mat"

	"github.com/benbrittain/dualcontour/field"
)

// Options configures the feature solver. The zero value selects the
// production behavior: plain normal least-squares with no centroid
// regularization.
type Options struct {
	// CentroidPull enables an alternate centroid regularization variant:
	// three extra rows pulling the solution toward the mean of the
	// edge-crossing points. Off by default; the production algorithm
	// uses plain least-squares.
	CentroidPull bool
	// CentroidPullStrength is the regularization weight used when
	// CentroidPull is set. Defaults to 0.12 if zero.
	CentroidPullStrength float32
}

func (o Options) strength() float32 {
	if o.CentroidPullStrength == 0 {
		return 0.12
	}
	return o.CentroidPullStrength
}

// cornerPoint returns the corner of the cube (x,y,z) identified by the
// given high/low bits (false = lower bound, true = upper bound).
func cornerPoint(x, y, z Axis, xHigh, yHigh, zHigh bool) ms3.Vec {
	pick := func(a Axis, high bool) float32 {
		if high {
			return a.Upper
		}
		return a.Lower
	}
	return ms3.Vec{X: pick(x, xHigh), Y: pick(y, yHigh), Z: pick(z, zHigh)}
}

// cubeEdges enumerates the twelve edges of a cube defined by (x, y, z),
// each as a pair of corners differing in exactly one coordinate. The
// enumeration order is fixed but unspecified beyond that guarantee.
func cubeEdges(x, y, z Axis) [12][2]ms3.Vec {
	return [12][2]ms3.Vec{
		// edges parallel to X
		{cornerPoint(x, y, z, false, false, false), cornerPoint(x, y, z, true, false, false)},
		{cornerPoint(x, y, z, false, true, false), cornerPoint(x, y, z, true, true, false)},
		{cornerPoint(x, y, z, false, false, true), cornerPoint(x, y, z, true, false, true)},
		{cornerPoint(x, y, z, false, true, true), cornerPoint(x, y, z, true, true, true)},
		// edges parallel to Y
		{cornerPoint(x, y, z, false, false, false), cornerPoint(x, y, z, false, true, false)},
		{cornerPoint(x, y, z, true, false, false), cornerPoint(x, y, z, true, true, false)},
		{cornerPoint(x, y, z, false, false, true), cornerPoint(x, y, z, false, true, true)},
		{cornerPoint(x, y, z, true, false, true), cornerPoint(x, y, z, true, true, true)},
		// edges parallel to Z
		{cornerPoint(x, y, z, false, false, false), cornerPoint(x, y, z, false, false, true)},
		{cornerPoint(x, y, z, true, false, false), cornerPoint(x, y, z, true, false, true)},
		{cornerPoint(x, y, z, false, true, false), cornerPoint(x, y, z, false, true, true)},
		{cornerPoint(x, y, z, true, true, false), cornerPoint(x, y, z, true, true, true)},
	}
}

// FindPointOnEdge locates the zero-crossing of f along the segment
// p1-p2 by ten iterations of fixed-step bisection. p1 and p2 must
// differ in exactly one coordinate; violating this is a programming
// error and panics, per the error handling design: edge probes are
// only ever called by this package's own edge enumeration.
//
// Returns the crossing point and true, or the zero point and false if
// both endpoints lie on the same side of the isosurface.
func FindPointOnEdge(p1, p2 ms3.Vec, f field.Field) (ms3.Vec, bool) {
	if _, err := singleDifferingAxis(p1, p2); err != nil {
		panic(err)
	}

	f1 := f.CallPoint(p1)
	f2 := f.CallPoint(p2)
	if f1 > f2 {
		p1, p2 = p2, p1
		f1, f2 = f2, f1
	}
	if (f1 < 0 && f2 < 0) || (f1 >= 0 && f2 >= 0) {
		return ms3.Vec{}, false
	}

	t := float32(0.5)
	step := float32(0.25)
	delta := ms3.Sub(p2, p1)
	for i := 0; i < 10; i++ {
		p := ms3.Add(p1, ms3.Scale(t, delta))
		if f.CallPoint(p) < 0 {
			t += step
		} else {
			t -= step
		}
		step /= 2
	}
	result := ms3.Add(p1, ms3.Scale(t, delta))
	return result, true
}

// singleDifferingAxis reports which of x/y/z differs between p1 and
// p2, requiring that exactly one does.
func singleDifferingAxis(p1, p2 ms3.Vec) (int, error) {
	axis := -1
	n := 0
	if p1.X != p2.X {
		axis, n = 0, n+1
	}
	if p1.Y != p2.Y {
		axis, n = 1, n+1
	}
	if p1.Z != p2.Z {
		axis, n = 2, n+1
	}
	if n != 1 {
		return -1, fmt.Errorf("octree: edge probe endpoints %v, %v differ in %d coordinates, want exactly 1", p1, p2, n)
	}
	return axis, nil
}

// NewFeature computes the feature point of a leaf cell spanning
// (x, y, z), or reports false if fewer than two of the cell's twelve
// edges carry a sign change of f (see invariant I2).
func NewFeature(x, y, z Axis, f field.Field, opts Options) (ms3.Vec, bool) {
	edges := cubeEdges(x, y, z)
	var points []ms3.Vec
	for _, e := range edges {
		if p, ok := FindPointOnEdge(e[0], e[1], f); ok {
			points = append(points, p)
		}
	}
	if len(points) < 2 {
		return ms3.Vec{}, false
	}

	rows := len(points)
	if opts.CentroidPull {
		rows += 3
	}
	A := mat.NewDense(rows, 3, nil)
	b := mat.NewVecDense(rows, nil)
	for i, p := range points {
		n := f.NormalAt(p)
		A.SetRow(i, []float64{float64(n.X), float64(n.Y), float64(n.Z)})
		b.SetVec(i, float64(n.X*p.X+n.Y*p.Y+n.Z*p.Z))
	}
	if opts.CentroidPull {
		mean := meanPoint(points)
		strength := opts.strength()
		meanArr := [3]float32{mean.X, mean.Y, mean.Z}
		for j := 0; j < 3; j++ {
			row := len(points) + j
			rowVec := make([]float64, 3)
			rowVec[j] = float64(strength)
			A.SetRow(row, rowVec)
			b.SetVec(row, float64(strength*meanArr[j]))
		}
	}

	x3, err := solveSVD(A, b)
	if err != nil {
		// Should not occur for k>=2 unit normals because the system is
		// compatible; treated as fatal.
		panic(fmt.Sprintf("octree: SVD solve failed for leaf cell: %s", err))
	}

	result := ms3.Vec{X: float32(x3[0]), Y: float32(x3[1]), Z: float32(x3[2])}
	// The plain least-squares solve can place the result outside the
	// cell for near-planar sign configurations; clamp it back to the
	// cell's closed cube.
	result.X = x.Clamp(result.X)
	result.Y = y.Clamp(result.Y)
	result.Z = z.Clamp(result.Z)
	return result, true
}

func meanPoint(points []ms3.Vec) ms3.Vec {
	var sum ms3.Vec
	for _, p := range points {
		sum = ms3.Add(sum, p)
	}
	return ms3.Scale(1/float32(len(points)), sum)
}

// solveSVD solves the overdetermined system A x = b by thin SVD,
// dropping only singular values that are exactly zero.
func solveSVD(A *mat.Dense, b *mat.VecDense) ([3]float64, error) {
	var svd mat.SVD
	ok := svd.Factorize(A, mat.SVDThin)
	if !ok {
		return [3]float64{}, fmt.Errorf("SVD factorization failed")
	}
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	values := svd.Values(nil)

	rows, _ := A.Dims()
	const tol = 0
	var x [3]float64
	for i, s := range values {
		if s <= tol {
			continue
		}
		var utb float64
		for r := 0; r < rows; r++ {
			utb += u.At(r, i) * b.AtVec(r)
		}
		c := utb / s
		for j := 0; j < 3; j++ {
			x[j] += v.At(j, i) * c
		}
	}
	return x, nil
}
