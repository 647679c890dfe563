// Package obstacle answers "is this position blocked?" for walkability
// refreshes.
//
// Obstacles are 3D shapes indexed by their bounding boxes in an R-tree:
//
//   - Sphere: a ball around a centre point.
//   - Prism: a vertical extrusion of a polygon footprint in the x/z plane
//     between MinY and MaxY (buildings, walls, no-go zones).
//
// Index.Obstructed probes a small sphere (ProbeRadius, default 1) around a
// position and reports whether it touches any obstacle. The method value
// idx.Obstructed can be passed straight to navgrid.Grid.RefreshWalkability.
//
// Complexity: Obstructed is O(log n + k) for n obstacles and k bounding-box
// candidates.
package obstacle
