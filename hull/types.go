package hull

import (
	"fmt"

	"github.com/logrusorgru/aurora"

	"github.com/osuushi/convexhull/dbg"
)

// Point is a location in the plane. Points are plain values: equality is
// exact equality of both coordinates, with no tolerance. This matters for
// deduplication, which keys a map by Point, so we must never round or
// otherwise disturb a coordinate once it has entered the system.
type Point struct {
	X float64
	Y float64
}

// Edge is a directed line through two distinct points. Edges only exist as an
// intermediate artifact of enumeration; callers of ConvexHull never see them.
type Edge struct {
	Start Point
	End   Point
}

func (p Point) String() string {
	return fmt.Sprintf("(%v,%v)", p.X, p.Y)
}

func (e Edge) String() string {
	return fmt.Sprintf("%v -> %v", e.Start, e.End)
}

// DbgString is like String, but tags each endpoint with a memorable name so
// that the same point can be picked out across a dump of many edges.
func (e Edge) DbgString() string {
	return fmt.Sprintf("%s %v -> %s %v",
		aurora.Cyan(dbg.Name(e.Start)).String(), e.Start,
		aurora.Green(dbg.Name(e.End)).String(), e.End,
	)
}

type PointSet map[Point]struct{}

func (s PointSet) Add(p Point) {
	s[p] = struct{}{}
}

func (s PointSet) Contains(p Point) bool {
	_, ok := s[p]
	return ok
}

// Slice returns the members in arbitrary order.
func (s PointSet) Slice() []Point {
	points := make([]Point, 0, len(s))
	for p := range s {
		points = append(points, p)
	}
	return points
}
