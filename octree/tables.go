package octree

// axis identifies one of the three coordinate axes the dual-contour
// extractor recurses along.
type axis int

const (
	axisX axis = iota
	axisY
	axisZ
)

// CellFaceMap pairs sibling children sharing a face, four pairs per
// table axis, twelve entries total. Under the child numbering used by
// subdivide (index = 4*X + 2*Y + 1*Z), the pairs listed under axisX
// differ in the Z bit and those under axisZ in the X bit: the table
// axis names X and Z are exchanged relative to the geometric axes.
// CellEdgeMap, FaceFaceMap and EdgeEdgeMap use the same exchange, and
// the extractor uses an axis only as a key into these tables.
var CellFaceMap = [3][4][2]int{
	axisX: {{4, 5}, {0, 1}, {2, 3}, {6, 7}},
	axisY: {{0, 2}, {1, 3}, {5, 7}, {4, 6}},
	axisZ: {{0, 4}, {1, 5}, {3, 7}, {2, 6}},
}

// CellEdgeMap quadruples sibling children sharing an internal edge,
// grouped by table axis (with X and Z exchanged as for CellFaceMap).
// Six entries total, two per axis: the two halves of the cell's
// central edge along that axis.
var CellEdgeMap = [3][2][4]int{
	axisX: {{1, 5, 3, 7}, {0, 4, 2, 6}},
	axisY: {{4, 5, 0, 1}, {6, 7, 2, 3}},
	axisZ: {{0, 1, 2, 3}, {4, 5, 6, 7}},
}

// CellMap is the face-to-cell router used when building FaceEdgeMap:
// CellMap[axis][k] selects which of a face-pair's two cells a given
// sub-edge quadrant belongs to.
var CellMap = [3][4]int{
	{0, 1, 0, 1},
	{0, 0, 1, 1},
	{1, 1, 0, 0},
}

// FaceFaceMap pairs child indices, per axis, of the four sub-faces
// that straddle the shared face between two cells meeting along that
// axis.
var FaceFaceMap = [3][4][2]int{
	axisX: {{5, 4}, {7, 6}, {1, 0}, {3, 2}},
	axisY: {{7, 5}, {6, 4}, {3, 1}, {2, 0}},
	axisZ: {{5, 1}, {4, 0}, {7, 3}, {6, 2}},
}

// faceEdgeEntry is one routing entry of FaceEdgeMap: the edge straddles
// four children (taken two from each side of the shared face) along
// edgeAxis.
type faceEdgeEntry struct {
	cells    [4]int
	edgeAxis axis
}

// FaceEdgeMap[axis] has four entries: for each of the two edge-axes
// perpendicular to axis, two sub-edges straddle the shared face
// between the two cells meeting along axis. No canonical table was
// available to copy, so this one is constructed from CellEdgeMap:
// each entry reuses one of CellEdgeMap's per-cell edge quadruples,
// with its first two child indices read from the face's near-side
// cell and its last two from the far-side cell — mirroring
// EdgeEdgeMap's own "two halves of the edge" structure.
var FaceEdgeMap = buildFaceEdgeMap()

func buildFaceEdgeMap() [3][4]faceEdgeEntry {
	var m [3][4]faceEdgeEntry
	for a := axisX; a <= axisZ; a++ {
		k := 0
		for _, ea := range perpendicularAxes(a) {
			for row := 0; row < 2; row++ {
				m[a][k] = faceEdgeEntry{cells: CellEdgeMap[ea][row], edgeAxis: ea}
				k++
			}
		}
	}
	return m
}

func perpendicularAxes(a axis) [2]axis {
	switch a {
	case axisX:
		return [2]axis{axisY, axisZ}
	case axisY:
		return [2]axis{axisX, axisZ}
	default:
		return [2]axis{axisX, axisY}
	}
}

// EdgeEdgeMap[axis] holds the two 4-tuples of child indices — the
// edge's two halves — used to descend edge_proc when the four cells
// meeting along an axis-parallel edge are not all leaves.
var EdgeEdgeMap = [3][2][4]int{
	axisX: {{7, 3, 5, 1}, {6, 2, 4, 0}},
	axisY: {{1, 0, 5, 4}, {3, 2, 7, 6}},
	axisZ: {{3, 2, 1, 0}, {7, 6, 5, 4}},
}
