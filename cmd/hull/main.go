// Command hull finds the convex hull of a set of points and displays it in
// lexicographic order.
//
// Input is newline separated points in the form "x y", read from a file or
// stdin, or generated with --random. Duplicate input points are ignored. The
// elapsed time covers only the hull computation, not I/O.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/logrusorgru/aurora"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/convexhull"
	"github.com/osuushi/convexhull/hull"
)

var (
	infile = kingpin.Arg("infile", "File containing points, one \"x y\" pair per line. Reads stdin if omitted or \"-\".").String()
	random = kingpin.Flag("random", "Generate N uniform random points instead of reading input.").PlaceHolder("N").Int()
	seed   = kingpin.Flag("seed", "Seed for --random. Defaults to the current time.").Int64()

	workers = kingpin.Flag("parallel", "Classify candidate edges on N goroutines.").PlaceHolder("N").Int()

	plotPath = kingpin.Flag("plot", "Write a PNG of the points and hull edges to PATH.").PlaceHolder("PATH").String()
	show     = kingpin.Flag("show", "Display the plot inline (iTerm2 image protocol).").Bool()
	scale    = kingpin.Flag("scale", "Plot scale in pixels per unit.").Default("40").Float64()

	verbose = kingpin.Flag("verbose", "Dump the accepted hull edges.").Short('v').Bool()
)

func main() {
	kingpin.Parse()

	points, err := loadPoints()
	if err != nil {
		fail(err)
	}

	start := time.Now()
	var hullPoints []convexhull.Point
	if *workers > 1 {
		hullPoints, err = hull.ConvexHullParallel(points, *workers)
	} else {
		hullPoints, err = convexhull.ConvexHull(points)
	}
	elapsed := time.Since(start)
	if err != nil {
		fail(err)
	}

	fmt.Println(aurora.Bold(fmt.Sprintf("Convex Hull (%d Points):", len(hullPoints))))
	fmt.Println(convexhull.FormatPoints(hullPoints))
	fmt.Printf("Elapsed Time (microseconds): %d\n", elapsed.Microseconds())

	if *verbose || *plotPath != "" || *show {
		handleEdgeOutput(points)
	}
}

// handleEdgeOutput re-runs the enumeration for the edge dump and the plot.
// Redundant work, but it keeps the timed computation identical whether or not
// any debug output was requested.
func handleEdgeOutput(points []convexhull.Point) {
	if len(points) < 2 {
		return
	}
	edges := hull.Edges(points)

	if *verbose {
		fmt.Printf("Accepted %d edges:\n", len(edges))
		for _, e := range edges {
			fmt.Println("  " + e.DbgString())
		}
	}

	if *plotPath == "" && *show {
		*plotPath = "/tmp/convexhull.png"
	}
	if *plotPath != "" {
		if err := hull.SavePlotPNG(*plotPath, points, edges, *scale); err != nil {
			fail(err)
		}
		if *show {
			if err := hull.CatPlot(*plotPath, os.Stdout); err != nil {
				fail(err)
			}
		}
	}
}

func loadPoints() ([]convexhull.Point, error) {
	if *random > 0 {
		return randomPoints(*random), nil
	}

	in := os.Stdin
	if *infile != "" && *infile != "-" {
		f, err := os.Open(*infile)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	}
	return convexhull.ReadPoints(in)
}

// randomPoints generates a duplicate-free uniform cloud in [0,100)^2.
// Collisions are vanishingly unlikely with float64 coordinates, but the hull
// contract requires a duplicate-free set, so we enforce it anyway.
func randomPoints(n int) []convexhull.Point {
	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(s))

	seen := make(hull.PointSet)
	points := make([]convexhull.Point, 0, n)
	for len(points) < n {
		p := convexhull.Point{X: rng.Float64() * 100, Y: rng.Float64() * 100}
		if seen.Contains(p) {
			continue
		}
		seen.Add(p)
		points = append(points, p)
	}
	return points
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, aurora.Red(err.Error()))
	os.Exit(1)
}
