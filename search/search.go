package search

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/elevpath/heuristic"
	"github.com/katalvlaran/elevpath/navgrid"
	"github.com/katalvlaran/elevpath/pqueue"
)

// Dijkstra finds the cheapest path from start to goal ordering the frontier
// by accumulated edge cost.
func Dijkstra(g *navgrid.Grid, start, goal navgrid.Coord, opts ...Option) (Result, error) {
	return Run(AlgorithmDijkstra, g, start, goal, opts...)
}

// AStar finds a path from start to goal ordering the frontier by accumulated
// cost plus the heuristic estimate to the goal.
func AStar(g *navgrid.Grid, start, goal navgrid.Coord, opts ...Option) (Result, error) {
	return Run(AlgorithmAStar, g, start, goal, opts...)
}

// Run executes alg on g. It mutates node Distance, predecessor and (unless
// WithoutMarking) state. Callers must not run searches on the same grid
// concurrently.
func Run(alg Algorithm, g *navgrid.Grid, start, goal navgrid.Coord, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if alg != AlgorithmAStar && alg != AlgorithmDijkstra {
		return Result{}, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(alg))
	}
	if g == nil {
		return Result{}, ErrNilGrid
	}
	if _, err := g.Node(start); err != nil {
		return Result{}, fmt.Errorf("search: start: %w", err)
	}
	if _, err := g.Node(goal); err != nil {
		return Result{}, fmt.Errorf("search: goal: %w", err)
	}

	r := &runner{
		alg:    alg,
		g:      g,
		start:  start,
		goal:   goal,
		edge:   cfg.EdgeCost.Func(),
		h:      cfg.Heuristic.Func(),
		closed: bitset.New(uint(g.Len())),
		pq:     pqueue.New[navgrid.Coord, float64](g.Len()),
	}
	r.init()
	r.process()

	goalNode := g.MustNode(goal)
	res := Result{
		Algorithm: alg,
		Start:     start,
		Goal:      goal,
		Cost:      goalNode.Distance,
		Visited:   int(r.closed.Count()),
		Path:      g.PathTo(goal),
	}
	if cfg.Mark {
		markPath(g, res.Path, alg.PathState())
	}

	cfg.Logger.Debug().
		Str("algorithm", alg.String()).
		Stringer("start", start).
		Stringer("goal", goal).
		Float64("dist", res.Cost).
		Int("visited", res.Visited).
		Int("path_len", len(res.Path)).
		Msg(res.String())

	return res, nil
}

// runner holds the mutable state for a single search execution.
type runner struct {
	alg         Algorithm
	g           *navgrid.Grid
	start, goal navgrid.Coord
	edge        heuristic.Func // adjacent-cell cost
	h           heuristic.Func // A* estimate
	closed      *bitset.BitSet // settled cells by row-major index
	pq          *pqueue.Queue[navgrid.Coord, float64]
}

// init resets node search state and seeds the queue with the start cell.
func (r *runner) init() {
	r.g.ResetSearchState()
	r.g.MustNode(r.start).Distance = 0

	key := 0.0
	if r.alg == AlgorithmAStar {
		key = r.estimate(r.start)
	}
	r.pq.Enqueue(key, r.start)
}

// estimate returns h(c, goal).
func (r *runner) estimate(c navgrid.Coord) float64 {
	return r.h(r.g.MustNode(c).Position, r.g.MustNode(r.goal).Position)
}

// process pops until the goal is dequeued or the frontier is exhausted.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		key, c := r.pq.Dequeue()
		if c == r.goal {
			return
		}
		idx := uint(r.g.Index(c))
		if r.closed.Test(idx) {
			continue // stale entry
		}

		// Dijkstra's key is the accumulated distance; A*'s includes h.
		dist := key
		if r.alg == AlgorithmAStar {
			dist = r.g.MustNode(c).Distance
		}
		r.relax(c, dist)
		r.closed.Set(idx)
	}
}

// relax improves every walkable neighbor of c reachable for less than its
// current Distance.
func (r *runner) relax(c navgrid.Coord, dist float64) {
	for nc, w := range r.g.Neighbors(c, r.edge) {
		n := r.g.MustNode(nc)
		if !n.Walkable() {
			continue
		}
		newDist := dist + w
		if newDist >= n.Distance {
			continue
		}
		n.Distance = newDist
		r.g.SetPredecessor(nc, c)

		key := newDist
		if r.alg == AlgorithmAStar {
			key += r.estimate(nc)
		}
		r.pq.Enqueue(key, nc)
	}
}

// markPath highlights every cell of path with s. Obstructed cells keep their state.
func markPath(g *navgrid.Grid, path []navgrid.Coord, s navgrid.State) {
	for _, c := range path {
		g.MustNode(c).Illuminate(s)
	}
}
