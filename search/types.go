package search

import (
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/elevpath/heuristic"
	"github.com/katalvlaran/elevpath/navgrid"
)

// Sentinel errors returned by the search runners.
var (
	// ErrNilGrid indicates a nil *navgrid.Grid.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrUnknownAlgorithm indicates an Algorithm value outside the supported set.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

	// ErrBadCoefficient indicates a negative or NaN elevation coefficient.
	ErrBadCoefficient = errors.New("search: coefficient must be a non-negative number")
)

// Algorithm selects the search strategy.
type Algorithm int

const (
	// AlgorithmAStar orders the frontier by distance plus heuristic estimate.
	AlgorithmAStar Algorithm = iota
	// AlgorithmDijkstra orders the frontier by accumulated distance only.
	AlgorithmDijkstra
)

func (a Algorithm) String() string {
	switch a {
	case AlgorithmAStar:
		return "A*"
	case AlgorithmDijkstra:
		return "Dijkstra"
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// PathState is the node state used to highlight this algorithm's path.
func (a Algorithm) PathState() navgrid.State {
	if a == AlgorithmAStar {
		return navgrid.OnPathAStar
	}
	return navgrid.OnPathDijkstra
}

// Result summarises one search run.
type Result struct {
	Algorithm Algorithm
	Start     navgrid.Coord
	Goal      navgrid.Coord
	// Cost is the goal's final Distance, +Inf when unreachable.
	Cost float64
	// Visited counts settled (closed) nodes.
	Visited int
	// Path is the predecessor chain, start first. For an unreachable goal it
	// holds only the goal.
	Path []navgrid.Coord
}

// Reachable reports whether the goal was reached.
func (r Result) Reachable() bool { return !math.IsInf(r.Cost, 1) }

// String returns the log summary, e.g. "A* dist: 12.5, nodes visited: 40".
func (r Result) String() string {
	return fmt.Sprintf("%s dist: %g, nodes visited: %d", r.Algorithm, r.Cost, r.Visited)
}

// Options configures a search run.
//
// Heuristic – A* goal estimate (ignored by Dijkstra).
// EdgeCost  – cost of moving between adjacent cells.
// Mark      – highlight the resulting path on the grid.
// Logger    – receives a Debug summary per run.
type Options struct {
	Heuristic heuristic.Params
	EdgeCost  heuristic.Params
	Mark      bool
	Logger    zerolog.Logger
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// DefaultOptions returns weighted Euclidean edge costs and heuristic with
// heuristic.DefaultCoefficient, path marking on and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Heuristic: heuristic.DefaultParams(),
		EdgeCost:  heuristic.DefaultParams(),
		Mark:      true,
		Logger:    zerolog.Nop(),
	}
}

// WithHeuristic selects the A* estimate function.
func WithHeuristic(kind heuristic.Kind) Option {
	return func(o *Options) {
		o.Heuristic.Kind = kind
	}
}

// WithEdgeCost selects the adjacent-cell cost function.
func WithEdgeCost(kind heuristic.Kind) Option {
	return func(o *Options) {
		o.EdgeCost.Kind = kind
	}
}

// WithCoefficient sets the elevation coefficient for both the edge cost and
// the heuristic. Panics on negative or NaN input.
func WithCoefficient(c float64) Option {
	return func(o *Options) {
		if c < 0 || math.IsNaN(c) || math.IsInf(c, 0) {
			panic(ErrBadCoefficient.Error())
		}
		o.Heuristic.Coefficient = c
		o.EdgeCost.Coefficient = c
	}
}

// WithParams sets the heuristic selection and coefficient in one go.
// Edge cost keeps its kind but adopts p.Coefficient.
func WithParams(p heuristic.Params) Option {
	return func(o *Options) {
		WithCoefficient(p.Coefficient)(o)
		o.Heuristic.Kind = p.Kind
	}
}

// WithoutMarking leaves node states untouched.
func WithoutMarking() Option {
	return func(o *Options) {
		o.Mark = false
	}
}

// WithLogger routes run summaries to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}
