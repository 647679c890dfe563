package navgrid_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/elevpath/heuristic"
	"github.com/katalvlaran/elevpath/navgrid"
)

// flat places cell (x,z) at (x, 0, z).
func flat(x, z int) r3.Vec { return r3.Vec{X: float64(x), Z: float64(z)} }

func mustBuild(t *testing.T, w, h int, pos navgrid.PositionFunc) *navgrid.Grid {
	t.Helper()
	g, err := navgrid.Build(w, h, pos)
	require.NoError(t, err)
	return g
}

//----------------------------------------------------------------------------//
// Build and lookup
//----------------------------------------------------------------------------//

func TestBuild_Errors(t *testing.T) {
	cases := []struct {
		name string
		w, h int
		pos  navgrid.PositionFunc
		err  error
	}{
		{"ZeroWidth", 0, 3, flat, navgrid.ErrEmptyGrid},
		{"NegativeHeight", 3, -1, flat, navgrid.ErrEmptyGrid},
		{"NilPosition", 2, 2, nil, navgrid.ErrNilPositionFunc},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := navgrid.Build(tc.w, tc.h, tc.pos)
			if !errors.Is(err, tc.err) {
				t.Errorf("Build(%d,%d) error = %v; want %v", tc.w, tc.h, err, tc.err)
			}
		})
	}
}

func TestBuild_InitialState(t *testing.T) {
	g := mustBuild(t, 4, 3, func(x, z int) r3.Vec {
		return r3.Vec{X: float64(x * 20), Y: float64(x + z), Z: float64(z * 20)}
	})
	assert.Equal(t, 4, g.Width())
	assert.Equal(t, 3, g.Height())
	assert.Equal(t, 12, g.Len())

	for c, n := range g.All() {
		assert.Equal(t, navgrid.Walkable, n.State(), c)
		assert.True(t, math.IsInf(n.Distance, 1), c)
		assert.False(t, n.HasPredecessor(), c)
		assert.Equal(t, r3.Vec{X: float64(c.X * 20), Y: float64(c.X + c.Z), Z: float64(c.Z * 20)}, n.Position)
	}
}

func TestNode_OutOfRange(t *testing.T) {
	g := mustBuild(t, 3, 2, flat)

	valid := []navgrid.Coord{{0, 0}, {2, 1}, {1, 1}}
	for _, c := range valid {
		n, err := g.Node(c)
		require.NoError(t, err)
		require.NotNil(t, n)
		assert.Equal(t, c, g.Coord(g.Index(c)))
	}
	invalid := []navgrid.Coord{{-1, 0}, {3, 0}, {1, 2}, {2, -1}}
	for _, c := range invalid {
		_, err := g.Node(c)
		assert.ErrorIs(t, err, navgrid.ErrOutOfRange, c)
		assert.False(t, g.InBounds(c))
	}
	assert.Panics(t, func() { g.MustNode(navgrid.Coord{X: 5, Z: 5}) })
}

//----------------------------------------------------------------------------//
// Neighbors
//----------------------------------------------------------------------------//

func collect(g *navgrid.Grid, c navgrid.Coord, f heuristic.Func) map[navgrid.Coord]float64 {
	out := make(map[navgrid.Coord]float64)
	for nc, cost := range g.Neighbors(c, f) {
		out[nc] = cost
	}
	return out
}

func TestNeighbors_Counts(t *testing.T) {
	g := mustBuild(t, 3, 3, flat)
	cases := []struct {
		c    navgrid.Coord
		want int
	}{
		{navgrid.Coord{X: 0, Z: 0}, 3},
		{navgrid.Coord{X: 1, Z: 0}, 5},
		{navgrid.Coord{X: 1, Z: 1}, 8},
		{navgrid.Coord{X: 2, Z: 2}, 3},
		{navgrid.Coord{X: 3, Z: 3}, 0},
	}
	for _, tc := range cases {
		got := collect(g, tc.c, heuristic.Chebyshev)
		assert.Len(t, got, tc.want, tc.c)
		assert.NotContains(t, got, tc.c, "cell must not neighbor itself")
	}
}

func TestNeighbors_SingleCell(t *testing.T) {
	g := mustBuild(t, 1, 1, flat)
	assert.Empty(t, collect(g, navgrid.Coord{}, heuristic.Manhattan))
}

func TestNeighbors_EdgeCostUsesFunc(t *testing.T) {
	// column x=1 sits one unit higher
	g := mustBuild(t, 2, 1, func(x, z int) r3.Vec {
		return r3.Vec{X: float64(x), Y: float64(x), Z: float64(z)}
	})
	wf := heuristic.Params{Kind: heuristic.KindWeightedEuclidean, Coefficient: 10}.Func()

	up := collect(g, navgrid.Coord{X: 0, Z: 0}, wf)[navgrid.Coord{X: 1, Z: 0}]
	down := collect(g, navgrid.Coord{X: 1, Z: 0}, wf)[navgrid.Coord{X: 0, Z: 0}]
	assert.InDelta(t, math.Sqrt2+10, up, 1e-9)
	assert.InDelta(t, math.Sqrt2+5, down, 1e-9)
}

func TestNeighbors_FreshAndStoppable(t *testing.T) {
	g := mustBuild(t, 3, 3, flat)
	seq := g.Neighbors(navgrid.Coord{X: 1, Z: 1}, heuristic.Chebyshev)

	n := 0
	for range seq {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)

	// a second call recomputes the full set
	assert.Len(t, collect(g, navgrid.Coord{X: 1, Z: 1}, heuristic.Chebyshev), 8)
}

//----------------------------------------------------------------------------//
// Walkability and state
//----------------------------------------------------------------------------//

func TestRefreshWalkability(t *testing.T) {
	g := mustBuild(t, 4, 4, flat)
	wall := func(p r3.Vec) bool { return p.X == 2 }

	g.RefreshWalkability(wall)
	for c, n := range g.All() {
		if c.X == 2 {
			assert.Equal(t, navgrid.Obstructed, n.State(), c)
			assert.False(t, n.Walkable())
		} else {
			assert.Equal(t, navgrid.Walkable, n.State(), c)
		}
	}
	assert.Equal(t, 4, g.Count(navgrid.Obstructed))

	// obstacle removed: everything walkable again
	g.RefreshWalkability(nil)
	assert.Zero(t, g.Count(navgrid.Obstructed))
}

func TestRefreshWalkability_ClearsHighlights(t *testing.T) {
	g := mustBuild(t, 2, 2, flat)
	g.MustNode(navgrid.Coord{X: 1, Z: 1}).Illuminate(navgrid.OnPathAStar)
	g.RefreshWalkability(func(r3.Vec) bool { return false })
	assert.Equal(t, navgrid.Walkable, g.MustNode(navgrid.Coord{X: 1, Z: 1}).State())
}

func TestNode_StateUnion(t *testing.T) {
	g := mustBuild(t, 1, 1, flat)
	n := g.MustNode(navgrid.Coord{})

	n.Illuminate(navgrid.OnPathAStar)
	assert.Equal(t, navgrid.OnPathAStar, n.State())
	n.Illuminate(navgrid.OnPathDijkstra)
	assert.Equal(t, navgrid.OnPathBoth, n.State())
	n.Illuminate(navgrid.OnPathAStar)
	assert.Equal(t, navgrid.OnPathAStar, n.State(), "both is only formed from the two single states")

	n.Fade()
	n.Illuminate(navgrid.OnPathDijkstra)
	n.Illuminate(navgrid.OnPathAStar)
	assert.Equal(t, navgrid.OnPathBoth, n.State())
}

func TestNode_ObstructedIsSticky(t *testing.T) {
	g := mustBuild(t, 1, 1, flat)
	n := g.MustNode(navgrid.Coord{})
	n.SetState(navgrid.Obstructed)

	n.Illuminate(navgrid.OnPathDijkstra)
	assert.Equal(t, navgrid.Obstructed, n.State())
	n.Fade()
	assert.Equal(t, navgrid.Obstructed, n.State())
	g.ClearHighlights()
	assert.Equal(t, navgrid.Obstructed, n.State())
}

func TestState_Color(t *testing.T) {
	want := map[navgrid.State]string{
		navgrid.Walkable:       "blue",
		navgrid.Obstructed:     "red",
		navgrid.OnPathAStar:    "green",
		navgrid.OnPathDijkstra: "yellow",
		navgrid.OnPathBoth:     "lime",
	}
	for s, c := range want {
		assert.Equal(t, c, s.Color(), s.String())
	}
	assert.Equal(t, "unknown", navgrid.State(42).Color())
	assert.Equal(t, "State(42)", navgrid.State(42).String())
	assert.True(t, navgrid.OnPathBoth.OnPath())
	assert.False(t, navgrid.Obstructed.OnPath())
}

//----------------------------------------------------------------------------//
// Search state
//----------------------------------------------------------------------------//

func TestResetSearchState_Idempotent(t *testing.T) {
	g := mustBuild(t, 3, 3, flat)
	g.MustNode(navgrid.Coord{X: 1, Z: 1}).Distance = 4
	g.SetPredecessor(navgrid.Coord{X: 1, Z: 1}, navgrid.Coord{X: 0, Z: 0})

	for round := 0; round < 2; round++ {
		g.ResetSearchState()
		for c, n := range g.All() {
			assert.True(t, math.IsInf(n.Distance, 1), "round %d %v", round, c)
			_, ok := g.Predecessor(c)
			assert.False(t, ok, "round %d %v", round, c)
		}
	}
}

func TestPathTo(t *testing.T) {
	g := mustBuild(t, 3, 3, flat)
	a, b, c := navgrid.Coord{X: 0, Z: 0}, navgrid.Coord{X: 1, Z: 1}, navgrid.Coord{X: 2, Z: 2}
	g.SetPredecessor(b, a)
	g.SetPredecessor(c, b)

	assert.Equal(t, []navgrid.Coord{a, b, c}, g.PathTo(c))
	p, ok := g.Predecessor(c)
	require.True(t, ok)
	assert.Equal(t, b, p)

	// no links: just the goal itself
	assert.Equal(t, []navgrid.Coord{{X: 2, Z: 0}}, g.PathTo(navgrid.Coord{X: 2, Z: 0}))
	assert.Nil(t, g.PathTo(navgrid.Coord{X: 9, Z: 9}))
}
