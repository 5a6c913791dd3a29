// A brute-force planar convex hull package for Go.
//
// This package takes a set of 2D points and reports which of them are
// vertices of the smallest convex polygon containing all of them, by testing
// every pair of points as a candidate hull edge. It is the O(n^3) exhaustive
// method, useful as a baseline and for small inputs; if you need an
// asymptotically fast hull, this is not it.
package convexhull

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/osuushi/convexhull/hull"
)

type Point = hull.Point
type Edge = hull.Edge

// ErrNoPoints is returned by ConvexHull for an empty input.
var ErrNoPoints = hull.ErrNoPoints

// ConvexHull returns the distinct hull vertices of points, sorted
// lexicographically by (X, Y). The input must already be duplicate free;
// ReadPoints takes care of that for text input.
//
// Points lying exactly on a hull edge between two vertices are included in
// the result. See hull.ConvexHull for the details of this quirk.
func ConvexHull(points []Point) ([]Point, error) {
	return hull.ConvexHull(points)
}

// ReadPoints parses newline separated points in the form "x y" from r. Blank
// lines are skipped, and duplicate points are dropped so that the result can
// be passed straight to ConvexHull.
func ReadPoints(r io.Reader) ([]Point, error) {
	scanner := bufio.NewScanner(r)
	seen := make(hull.PointSet)
	var points []Point
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, errors.Errorf("line %d: expected a point of form \"x y\", got %q", lineNo, line)
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d: bad x value", lineNo)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d: bad y value", lineNo)
		}

		p := Point{X: x, Y: y}
		if seen.Contains(p) {
			continue
		}
		seen.Add(p)
		points = append(points, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}
	return points, nil
}

// FormatPoint renders a point as "(x,y)".
func FormatPoint(p Point) string {
	return fmt.Sprintf("(%v,%v)", p.X, p.Y)
}

// FormatPoints renders a point sequence one point per line, in the order
// given.
func FormatPoints(points []Point) string {
	lines := make([]string, len(points))
	for i, p := range points {
		lines[i] = FormatPoint(p)
	}
	return strings.Join(lines, "\n")
}
