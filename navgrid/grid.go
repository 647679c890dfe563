package navgrid

import (
	"fmt"
	"iter"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/elevpath/heuristic"
)

// Build allocates a width×height grid. Every node starts Walkable with
// Distance +Inf, no predecessor, and the position returned by positionFor.
// Returns ErrEmptyGrid for non-positive dimensions and ErrNilPositionFunc
// if positionFor is nil.
// Complexity: O(W×H) time and memory.
func Build(width, height int, positionFor PositionFunc) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyGrid, width, height)
	}
	if positionFor == nil {
		return nil, ErrNilPositionFunc
	}
	g := &Grid{
		width:  width,
		height: height,
		nodes:  make([]Node, width*height),
	}
	for z := 0; z < height; z++ {
		for x := 0; x < width; x++ {
			g.nodes[g.index(x, z)] = newNode(positionFor(x, z))
		}
	}

	return g, nil
}

// Width returns the number of cells along x.
func (g *Grid) Width() int { return g.width }

// Height returns the number of cells along z.
func (g *Grid) Height() int { return g.height }

// Len returns the total number of cells.
func (g *Grid) Len() int { return len(g.nodes) }

// InBounds reports whether c lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.width && c.Z >= 0 && c.Z < g.height
}

// index maps (x,z) to a row-major index: z*width + x.
func (g *Grid) index(x, z int) int {
	return z*g.width + x
}

// Index returns the row-major index of c. c must be in bounds.
func (g *Grid) Index(c Coord) int {
	return g.index(c.X, c.Z)
}

// Coord converts a row-major index back to a coordinate.
func (g *Grid) Coord(idx int) Coord {
	return Coord{X: idx % g.width, Z: idx / g.width}
}

// Node returns the node at c, or an error wrapping ErrOutOfRange.
func (g *Grid) Node(c Coord) (*Node, error) {
	if !g.InBounds(c) {
		return nil, fmt.Errorf("%w: %v not in %dx%d", ErrOutOfRange, c, g.width, g.height)
	}
	return &g.nodes[g.index(c.X, c.Z)], nil
}

// MustNode is like Node but panics on an out-of-range coordinate.
func (g *Grid) MustNode(c Coord) *Node {
	n, err := g.Node(c)
	if err != nil {
		panic(err)
	}
	return n
}

// All yields every coordinate with its node in row-major order.
func (g *Grid) All() iter.Seq2[Coord, *Node] {
	return func(yield func(Coord, *Node) bool) {
		for i := range g.nodes {
			if !yield(g.Coord(i), &g.nodes[i]) {
				return
			}
		}
	}
}

// RefreshWalkability sets every node to Obstructed where isObstructed holds
// at its position, and to Walkable elsewhere. Path highlights are cleared.
// A nil predicate marks the whole grid Walkable.
// Complexity: O(W×H) predicate calls.
func (g *Grid) RefreshWalkability(isObstructed func(r3.Vec) bool) {
	for i := range g.nodes {
		n := &g.nodes[i]
		if isObstructed != nil && isObstructed(n.Position) {
			n.SetState(Obstructed)
		} else {
			n.SetState(Walkable)
		}
	}
}

// ClearHighlights fades every path highlight, leaving obstructions intact.
func (g *Grid) ClearHighlights() {
	for i := range g.nodes {
		g.nodes[i].Fade()
	}
}

// ResetSearchState sets Distance=+Inf and clears the predecessor on every node.
// It is idempotent and must run before each independent search.
func (g *Grid) ResetSearchState() {
	inf := math.Inf(1)
	for i := range g.nodes {
		g.nodes[i].Distance = inf
		g.nodes[i].pred = noPredecessor
	}
}

// Neighbors yields the in-bounds Moore neighbors of c together with the edge
// cost cost(pos(c), pos(neighbor)). The sequence is computed fresh on every
// call. Walkability is not filtered here. Yields nothing if c is out of range.
func (g *Grid) Neighbors(c Coord, cost heuristic.Func) iter.Seq2[Coord, float64] {
	return func(yield func(Coord, float64) bool) {
		if !g.InBounds(c) {
			return
		}
		from := g.nodes[g.index(c.X, c.Z)].Position
		for _, d := range moore {
			nc := Coord{X: c.X + d[0], Z: c.Z + d[1]}
			if !g.InBounds(nc) {
				continue
			}
			to := g.nodes[g.index(nc.X, nc.Z)].Position
			if !yield(nc, cost(from, to)) {
				return
			}
		}
	}
}

// SetPredecessor records from as the predecessor of c. Both must be in bounds.
func (g *Grid) SetPredecessor(c, from Coord) {
	g.nodes[g.index(c.X, c.Z)].pred = g.index(from.X, from.Z)
}

// Predecessor returns the predecessor of c, if any.
func (g *Grid) Predecessor(c Coord) (Coord, bool) {
	if !g.InBounds(c) {
		return Coord{}, false
	}
	p := g.nodes[g.index(c.X, c.Z)].pred
	if p == noPredecessor {
		return Coord{}, false
	}
	return g.Coord(p), true
}

// PathTo walks predecessor links back from goal and returns the chain
// start-first. The walk stops at the first node without a predecessor, so
// for an unreachable goal the result is just [goal]. Returns nil if goal is
// out of range.
func (g *Grid) PathTo(goal Coord) []Coord {
	if !g.InBounds(goal) {
		return nil
	}
	var path []Coord
	// bounded by Len to stay finite even if links were corrupted by hand
	for at, steps := g.index(goal.X, goal.Z), 0; at != noPredecessor && steps <= len(g.nodes); steps++ {
		path = append(path, g.Coord(at))
		at = g.nodes[at].pred
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Count returns the number of nodes currently in state s.
func (g *Grid) Count(s State) int {
	n := 0
	for i := range g.nodes {
		if g.nodes[i].state == s {
			n++
		}
	}
	return n
}
