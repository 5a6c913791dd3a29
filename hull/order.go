package hull

import "sort"

// Points are totally ordered lexicographically: compare X, then Y. This is
// the order the hull is reported in. Note that it is not a boundary walk; two
// consecutive points in sorted order are usually not joined by a hull edge.
func (p Point) Less(q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// SortPoints sorts in place, ascending by (X, Y).
func SortPoints(points []Point) {
	sort.Slice(points, func(i, j int) bool {
		return points[i].Less(points[j])
	})
}
