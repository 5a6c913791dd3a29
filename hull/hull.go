// Package hull finds the vertices of the convex hull of a planar point set
// by exhaustive edge testing.
package hull

import "github.com/pkg/errors"

// ErrNoPoints is returned when asked for the hull of an empty set. It is the
// only error this package produces; everything else is a pure total function
// of its input.
var ErrNoPoints = errors.New("at least one point is required to find the convex hull")

// ConvexHull returns the distinct vertices of the convex hull of points,
// sorted ascending by (X, Y). The input must be duplicate free; it is not
// modified.
//
// Points that lie exactly on a hull edge, between two true vertices, are
// included in the result: the side test can't tell a collinear boundary point
// from an endpoint, so such points survive into the accepted edge set. Dedupe
// collinear input upstream if this matters to you.
func ConvexHull(points []Point) ([]Point, error) {
	return fromEdges(points, Edges)
}

// fromEdges is the vertex extraction step, shared by the sequential and
// parallel entry points. The enumerator's edges are collapsed to their
// distinct endpoints through a set keyed on exact coordinates.
func fromEdges(points []Point, enumerate func([]Point) []Edge) ([]Point, error) {
	if len(points) == 0 {
		return nil, ErrNoPoints
	}

	// The hull of a single point is the point itself. The enumerator needs at
	// least one pair, so it never sees this case.
	if len(points) == 1 {
		return []Point{points[0]}, nil
	}

	vertices := make(PointSet)
	for _, edge := range enumerate(points) {
		vertices.Add(edge.Start)
		vertices.Add(edge.End)
	}

	result := vertices.Slice()
	SortPoints(result)
	return result, nil
}
