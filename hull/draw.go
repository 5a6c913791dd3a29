package hull

import (
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

const plotPadding = 20

// Plot renders a point set and its accepted hull edges to a drawing context.
// Input points are small dots, edge endpoints are ringed, and each accepted
// edge is stroked. Edges are drawn individually rather than as a closed path
// because the accepted set can include collinear sub-edges and carries no
// traversal order.
func Plot(points []Point, edges []Edge, scale float64) *gg.Context {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + plotPadding*2
	height := int(scale*(maxY-minY)) + plotPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(plotPadding, plotPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	for _, e := range edges {
		c.MoveTo(e.Start.X, e.Start.Y)
		c.LineTo(e.End.X, e.End.Y)
	}
	c.SetRGB(0, 1, 1)
	c.Stroke()

	dotRadius := 3 / scale
	c.SetRGB(0.5, 0.5, 0.5)
	for _, p := range points {
		c.DrawCircle(p.X, p.Y, dotRadius)
	}
	c.Fill()

	vertices := make(PointSet)
	for _, e := range edges {
		vertices.Add(e.Start)
		vertices.Add(e.End)
	}
	c.SetRGB(0, 1, 0)
	for p := range vertices {
		c.DrawCircle(p.X, p.Y, 2*dotRadius)
	}
	c.Stroke()

	return c
}

// SavePlotPNG writes the plot to a PNG file.
func SavePlotPNG(path string, points []Point, edges []Edge, scale float64) error {
	return Plot(points, edges, scale).SavePNG(path)
}

// CatPlot displays a previously saved plot inline in the terminal, for
// terminals that speak the iTerm2 image protocol.
func CatPlot(path string, out io.Writer) error {
	return imgcat.CatFile(path, out)
}
