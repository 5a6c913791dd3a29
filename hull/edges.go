package hull

// Brute-force edge enumeration. Every unordered pair of points is a candidate
// hull edge; a pair qualifies iff every other point lies on one side of the
// line through it (points exactly on the line are allowed). Checking a single
// candidate is a full scan of the input, so enumeration is O(n^3) overall.
// That cost is the point of this package: it is the exhaustive textbook
// method, kept as a baseline to check faster hull algorithms against, and it
// must not be quietly swapped for a gift wrap or a Graham scan. The fast
// algorithms also disagree with this one about collinear boundary points (see
// ConvexHull), so they are not drop-in replacements even when speed doesn't
// matter.

// Edges returns every candidate pair that passes the side test, as directed
// edges in pair-generation order. Edge order carries no meaning downstream;
// only the set of endpoints does. Must be called with at least two points,
// and the input must already be duplicate free.
func Edges(points []Point) []Edge {
	var edges []Edge
	for i := 0; i < len(points)-1; i++ {
		edges = appendEdgesFrom(edges, points, i)
	}
	return edges
}

// appendEdgesFrom classifies every pair (points[i], points[j]) for j > i and
// appends the accepted ones. Split out from Edges so the parallel enumerator
// can fan out over the same unit of work.
func appendEdgesFrom(edges []Edge, points []Point, i int) []Edge {
	for j := i + 1; j < len(points); j++ {
		if onOneSide(points, points[i], points[j]) {
			edges = append(edges, Edge{Start: points[i], End: points[j]})
		}
	}
	return edges
}

// onOneSide is the side test. The line through p and q in implicit form
// a·x + b·y = c has
//
//	a = q.Y - p.Y
//	b = p.X - q.X
//	c = a·p.X + b·p.Y
//
// and substituting any point r into a·r.X + b·r.Y - c gives a signed value
// whose sign says which half-plane r is in. The pair qualifies unless some
// point lands strictly negative and another strictly positive. A zero signed
// value (r exactly on the line, including p and q themselves) sets neither
// flag, which is what lets collinear boundary points through.
func onOneSide(points []Point, p, q Point) bool {
	a := q.Y - p.Y
	b := p.X - q.X
	c := a*p.X + b*p.Y

	var hasNegative, hasPositive bool
	for _, r := range points {
		val := a*r.X + b*r.Y - c
		if val < 0 {
			hasNegative = true
		} else if val > 0 {
			hasPositive = true
		}
	}
	return !(hasNegative && hasPositive)
}
