// Package navgrid holds the navigation grid: a rectangular array of nodes
// laid over sampled terrain, with per-node walkability and search state.
//
// What:
//
//   - Grid owns width×height Nodes indexed by Coord{X, Z}.
//   - Each Node carries a world Position (y is elevation), a State, the best
//     known Distance from the current search start and a predecessor link.
//   - Neighbors enumerates the 8 Moore neighbors of a cell with an edge cost
//     computed by a caller-supplied distance function.
//   - RefreshWalkability rewrites states from an external obstruction oracle.
//   - ResetSearchState clears Distance/predecessor before every search.
//
// State model:
//
//	Walkable ──Illuminate──▶ OnPathAStar ──Illuminate(Dijkstra)──▶ OnPathBoth
//	         └─Illuminate──▶ OnPathDijkstra ─Illuminate(A*)──────▶ OnPathBoth
//	Obstructed is sticky: Illuminate and Fade never override it.
//
// Complexity:
//
//   - Build, RefreshWalkability, ResetSearchState: O(W×H).
//   - Node, Neighbors (per call): O(1), at most 8 entries.
//
// Errors:
//
//   - ErrEmptyGrid: width or height is not positive.
//   - ErrNilPositionFunc: Build called without a position function.
//   - ErrOutOfRange: a coordinate lies outside the grid.
//
// A Grid is not safe for concurrent searches: the search state lives on the
// shared nodes. Callers must serialize runs.
package navgrid
