package navgrid

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// State is the closed set of node states. The renderer colour is a pure
// function of it (see Color).
type State uint8

const (
	// Walkable marks a free cell.
	Walkable State = iota
	// Obstructed marks a cell overlapping an obstacle. It is never traversed.
	Obstructed
	// OnPathAStar marks a cell on the last A* path.
	OnPathAStar
	// OnPathDijkstra marks a cell on the last Dijkstra path.
	OnPathDijkstra
	// OnPathBoth marks a cell on both paths.
	OnPathBoth
)

var stateNames = [...]string{
	Walkable:       "walkable",
	Obstructed:     "obstructed",
	OnPathAStar:    "on-path-astar",
	OnPathDijkstra: "on-path-dijkstra",
	OnPathBoth:     "on-path-both",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", s)
}

// Color names the display colour for s.
func (s State) Color() string {
	switch s {
	case Walkable:
		return "blue"
	case Obstructed:
		return "red"
	case OnPathAStar:
		return "green"
	case OnPathDijkstra:
		return "yellow"
	case OnPathBoth:
		return "lime"
	}
	return "unknown"
}

// OnPath reports whether s is one of the path highlight states.
func (s State) OnPath() bool {
	return s == OnPathAStar || s == OnPathDijkstra || s == OnPathBoth
}

// MarshalText implements encoding.TextMarshaler.
func (s State) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Coord addresses a grid cell.
type Coord struct {
	X, Z int
}

func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Z) }

// noPredecessor is the predecessor index of a node with no recorded parent.
const noPredecessor = -1

// Node is one grid cell.
//
// Distance is +Inf and the predecessor is unset outside of a search, except
// for the start node of the running search which has Distance 0.
type Node struct {
	Position r3.Vec
	Distance float64

	state State
	pred  int // row-major index into the owning grid, or noPredecessor
}

func newNode(pos r3.Vec) Node {
	return Node{
		Position: pos,
		Distance: math.Inf(1),
		state:    Walkable,
		pred:     noPredecessor,
	}
}

// State returns the current state.
func (n *Node) State() State { return n.state }

// Walkable reports whether the node may be traversed.
func (n *Node) Walkable() bool { return n.state != Obstructed }

// SetState writes s. Writing one single-algorithm path state over the other
// yields OnPathBoth.
func (n *Node) SetState(s State) {
	if (n.state == OnPathAStar && s == OnPathDijkstra) ||
		(n.state == OnPathDijkstra && s == OnPathAStar) {
		n.state = OnPathBoth
		return
	}
	n.state = s
}

// Illuminate highlights the node with s unless it is Obstructed.
func (n *Node) Illuminate(s State) {
	if n.state == Obstructed {
		return
	}
	n.SetState(s)
}

// Fade clears any highlight back to Walkable unless the node is Obstructed.
func (n *Node) Fade() {
	if n.state == Obstructed {
		return
	}
	n.state = Walkable
}

// HasPredecessor reports whether a predecessor link is set.
func (n *Node) HasPredecessor() bool { return n.pred != noPredecessor }

// PositionFunc returns the world position of cell (x, z).
type PositionFunc func(x, z int) r3.Vec

// Grid owns a rectangular array of nodes stored row-major by z.
type Grid struct {
	width, height int
	nodes         []Node
}

// moore lists the 8 neighbor offsets in x-major order (dx outer, dz inner).
var moore = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}
