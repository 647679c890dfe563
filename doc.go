// Package elevpath computes shortest paths over regular grids laid on
// elevated terrain, comparing A* against Dijkstra on the same grid.
//
// What is elevpath?
//
//	A small, layered toolkit for elevation-aware grid pathfinding:
//		• pqueue    generic binary min-heap keyed by any ordered priority
//		• heuristic weighted Euclidean (uphill costs more), Manhattan, Chebyshev
//		• navgrid   row-major Node grid with 8-connected neighbours and states
//		• search    A* and Dijkstra with path highlighting
//		• terrain   height samplers and the layout that places cells on them
//		• obstacle  R-tree index of spheres and prisms deciding walkability
//		• config    YAML scenario files
//		• planner   refresh → A* → Dijkstra pipeline with a tick schedule
//
// Quick start:
//
//	g, _ := navgrid.Build(w, h, terrain.DefaultLayout().PositionFunc(field))
//	res, _ := search.AStar(g, navgrid.Coord{}, navgrid.Coord{X: w - 1, Z: h - 1},
//		search.WithCoefficient(40))
//	fmt.Println(res)                     // "A* dist: ..., nodes visited: ..."
//
// The elevpath command (cmd/elevpath) runs a scenario file end to end and
// prints both paths over a coloured state map.
//
// Elevation weighting:
//
//	cost(a, b) = |b - a| + c·dy      when climbing (dy > 0)
//	cost(a, b) = |b - a| + c/2·|dy|  otherwise
//
// where dy is the height change from a to b and c the coefficient. Climbing
// is charged twice the descent rate, so the heuristic is asymmetric and A*
// is not guaranteed to match Dijkstra's cost.
package elevpath
