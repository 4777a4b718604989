package octree

// Axis is a closed interval on one coordinate. Lower is always <= Upper;
// the constructor swaps the bounds if given reversed.
type Axis struct {
	Lower, Upper float32
}

// NewAxis builds an Axis from two bounds, swapping them if reversed.
func NewAxis(a, b float32) Axis {
	if a > b {
		a, b = b, a
	}
	return Axis{Lower: a, Upper: b}
}

// Center returns the midpoint of the interval.
func (a Axis) Center() float32 {
	return (a.Lower + a.Upper) / 2
}

// Length returns the interval's length.
func (a Axis) Length() float32 {
	return a.Upper - a.Lower
}

// Split divides the interval at its center, returning the lower and
// upper halves.
func (a Axis) Split() (lower, upper Axis) {
	c := a.Center()
	return Axis{Lower: a.Lower, Upper: c}, Axis{Lower: c, Upper: a.Upper}
}

// Contains reports whether v lies in the closed interval.
func (a Axis) Contains(v float32) bool {
	return v >= a.Lower && v <= a.Upper
}

// Clamp restricts v to the closed interval.
func (a Axis) Clamp(v float32) float32 {
	if v < a.Lower {
		return a.Lower
	}
	if v > a.Upper {
		return a.Upper
	}
	return v
}
