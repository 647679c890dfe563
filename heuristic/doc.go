// Package heuristic implements the distance functions used both as grid edge
// costs and as A* goal estimates.
//
// All functions take two 3D positions (y is elevation) and return a
// non-negative score:
//
//   - WeightedEuclidean: straight-line 3D distance plus an elevation penalty
//     of coefficient*dy when climbing and (coefficient/2)*|dy| when descending.
//     It is asymmetric on purpose: climbing costs more than descending.
//   - Manhattan: sum of the absolute axis differences.
//   - Chebyshev: largest absolute axis difference.
//
// The elevation coefficient is passed explicitly (see Params) so two searches
// with different coefficients never observe each other.
//
// Note: because WeightedEuclidean is asymmetric, using it as an A* heuristic
// does not guarantee admissibility or consistency.
package heuristic
