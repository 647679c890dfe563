package search_test

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/elevpath/navgrid"
	"github.com/katalvlaran/elevpath/search"
)

func benchGrid(b *testing.B, n int) *navgrid.Grid {
	b.Helper()
	g, err := navgrid.Build(n, n, func(x, z int) r3.Vec {
		y := 10 * math.Sin(float64(x)/7) * math.Cos(float64(z)/5)
		return r3.Vec{X: float64(x * 20), Y: y, Z: float64(z * 20)}
	})
	if err != nil {
		b.Fatalf("setup Build failed: %v", err)
	}
	return g
}

// BenchmarkDijkstra measures a corner-to-corner search on a 200×200 grid.
// Complexity: O(W·H·log(W·H)).
func BenchmarkDijkstra(b *testing.B) {
	const n = 200
	g := benchGrid(b, n)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = search.Dijkstra(g, navgrid.Coord{}, navgrid.Coord{X: n - 1, Z: n - 1}, search.WithoutMarking())
	}
}

// BenchmarkAStar measures the same search ordered by the weighted heuristic.
func BenchmarkAStar(b *testing.B) {
	const n = 200
	g := benchGrid(b, n)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = search.AStar(g, navgrid.Coord{}, navgrid.Coord{X: n - 1, Z: n - 1}, search.WithoutMarking())
	}
}
