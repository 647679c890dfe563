// Package search runs A* and Dijkstra over a navgrid.Grid.
//
// Both algorithms share one runner:
//
//  1. Reset every node's Distance/predecessor; the start gets Distance 0.
//  2. Push the start onto a pqueue.Queue (key 0 for Dijkstra, h(start, goal)
//     for A*).
//  3. Pop the cheapest coordinate. Stop if it is the goal; skip it if it was
//     already closed (lazy deletion, the queue has no decrease-key).
//  4. Relax each walkable neighbor whose new distance is strictly smaller,
//     record the predecessor and push it (key new for Dijkstra,
//     h(neighbor, goal)+new for A*). Close the popped coordinate.
//  5. Walk the predecessor chain from the goal and highlight it with the
//     algorithm's path state.
//
// An unreachable goal is not an error: Result.Cost stays +Inf and the
// highlighted chain is just the goal itself.
//
// Complexity:
//
//   - Time:  O(W·H·log(W·H)); each cell has at most 8 neighbors.
//   - Space: O(W·H) for the queue (duplicates included) and the closed set.
//
// Edge costs default to the weighted Euclidean distance with
// heuristic.DefaultCoefficient. A* with the asymmetric weighted Euclidean
// heuristic is not guaranteed to return the cheapest path.
//
// Errors:
//
//   - ErrNilGrid: the grid is nil.
//   - navgrid.ErrOutOfRange (wrapped): start or goal outside the grid.
//   - ErrUnknownAlgorithm: Run called with an unsupported Algorithm.
package search
