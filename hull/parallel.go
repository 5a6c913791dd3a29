package hull

import "sync"

// Each candidate pair is classified independently against a read-only input,
// so the outer loop of the enumeration parallelizes trivially. Workers take
// first-indices by stride and record accepted edges per first-index, so the
// flattened result is identical to the sequential one, not merely equal as a
// set.

// EdgesParallel enumerates the same edges as Edges using the given number of
// goroutines. Degenerate worker counts fall back to the sequential scan.
func EdgesParallel(points []Point, workers int) []Edge {
	if workers > len(points)-1 {
		workers = len(points) - 1
	}
	if workers < 2 {
		return Edges(points)
	}

	perFirst := make([][]Edge, len(points)-1)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := w; i < len(points)-1; i += workers {
				perFirst[i] = appendEdgesFrom(nil, points, i)
			}
		}(w)
	}
	wg.Wait()

	var edges []Edge
	for _, accepted := range perFirst {
		edges = append(edges, accepted...)
	}
	return edges
}

// ConvexHullParallel is ConvexHull with the enumeration fanned out over
// workers goroutines. The result is identical to ConvexHull's.
func ConvexHullParallel(points []Point, workers int) ([]Point, error) {
	return fromEdges(points, func(points []Point) []Edge {
		return EdgesParallel(points, workers)
	})
}
