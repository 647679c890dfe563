package obstacle

import (
	"errors"
	"fmt"
	"math"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"gonum.org/v1/gonum/spatial/r3"
)

var (
	// ErrBadShape indicates an obstacle with a degenerate or invalid geometry.
	ErrBadShape = errors.New("obstacle: invalid shape")
	// ErrBadProbe indicates a negative or NaN probe radius.
	ErrBadProbe = errors.New("obstacle: probe radius must be non-negative")
)

// minExtent keeps R-tree rectangles non-degenerate.
const minExtent = 1e-9

// Shape is an obstacle geometry.
type Shape interface {
	// Box returns the axis-aligned bounding box (x, y, z).
	Box() (lo, hi r3.Vec)
	// Touches reports whether a sphere of radius r around p overlaps the shape.
	Touches(p r3.Vec, r float64) bool
	// Validate reports ErrBadShape for degenerate geometry.
	Validate() error
}

// Sphere is a ball obstacle.
type Sphere struct {
	Center r3.Vec
	Radius float64
}

// Box implements Shape.
func (s Sphere) Box() (lo, hi r3.Vec) {
	d := r3.Vec{X: s.Radius, Y: s.Radius, Z: s.Radius}
	return r3.Sub(s.Center, d), r3.Add(s.Center, d)
}

// Touches implements Shape.
func (s Sphere) Touches(p r3.Vec, r float64) bool {
	return r3.Norm(r3.Sub(p, s.Center)) <= s.Radius+r
}

// Validate implements Shape.
func (s Sphere) Validate() error {
	if !(s.Radius > 0) || math.IsInf(s.Radius, 0) {
		return fmt.Errorf("%w: sphere radius %v", ErrBadShape, s.Radius)
	}
	return nil
}

// Prism is a polygon footprint in the x/z plane (orb X = world x, orb Y =
// world z) extruded from MinY to MaxY. Only the outer ring is required;
// further rings are holes.
type Prism struct {
	Footprint orb.Polygon
	MinY      float64
	MaxY      float64
}

// Box implements Shape.
func (p Prism) Box() (lo, hi r3.Vec) {
	b := p.Footprint.Bound()
	return r3.Vec{X: b.Min[0], Y: p.MinY, Z: b.Min[1]}, r3.Vec{X: b.Max[0], Y: p.MaxY, Z: b.Max[1]}
}

// Touches implements Shape. The vertical and horizontal clearances are
// checked independently, which slightly over-reports near the top and
// bottom edges.
func (p Prism) Touches(q r3.Vec, r float64) bool {
	if q.Y < p.MinY-r || q.Y > p.MaxY+r {
		return false
	}
	pt := orb.Point{q.X, q.Z}
	if planar.PolygonContains(p.Footprint, pt) {
		return true
	}
	if r <= 0 {
		return false
	}
	for _, ring := range p.Footprint {
		for i := 1; i < len(ring); i++ {
			if planar.DistanceFromSegment(ring[i-1], ring[i], pt) <= r {
				return true
			}
		}
	}
	return false
}

// Validate implements Shape.
func (p Prism) Validate() error {
	if len(p.Footprint) == 0 || len(p.Footprint[0]) < 3 {
		return fmt.Errorf("%w: prism footprint needs at least 3 points", ErrBadShape)
	}
	if !(p.MaxY >= p.MinY) {
		return fmt.Errorf("%w: prism height range [%v, %v]", ErrBadShape, p.MinY, p.MaxY)
	}
	return nil
}

// boxRect converts a bounding box into an R-tree rectangle, padding
// degenerate axes.
func boxRect(lo, hi r3.Vec) (rtreego.Rect, error) {
	lengths := []float64{
		math.Max(hi.X-lo.X, minExtent),
		math.Max(hi.Y-lo.Y, minExtent),
		math.Max(hi.Z-lo.Z, minExtent),
	}
	return rtreego.NewRect(rtreego.Point{lo.X, lo.Y, lo.Z}, lengths)
}
