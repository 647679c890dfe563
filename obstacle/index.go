package obstacle

import (
	"fmt"
	"math"

	"github.com/dhconnelly/rtreego"
	"gonum.org/v1/gonum/spatial/r3"
)

// DefaultProbeRadius is the clearance checked around each grid node.
const DefaultProbeRadius = 1.0

// entry wraps a Shape for R-tree storage.
type entry struct {
	shape Shape
	bbox  rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *entry) Bounds() rtreego.Rect { return e.bbox }

// Index is an R-tree of obstacle shapes. It is not safe for concurrent
// mutation; concurrent Obstructed calls without Insert are fine.
type Index struct {
	tree  *rtreego.Rtree
	probe float64
	n     int
}

// NewIndex builds an index with the given probe radius and initial shapes.
func NewIndex(probeRadius float64, shapes ...Shape) (*Index, error) {
	if probeRadius < 0 || math.IsNaN(probeRadius) {
		return nil, fmt.Errorf("%w: %v", ErrBadProbe, probeRadius)
	}
	idx := &Index{
		tree:  rtreego.NewTree(3, 25, 50), // 3D, min 25, max 50 entries per node
		probe: probeRadius,
	}
	for i, s := range shapes {
		if err := idx.Insert(s); err != nil {
			return nil, fmt.Errorf("obstacle %d: %w", i, err)
		}
	}
	return idx, nil
}

// Insert adds s to the index.
func (idx *Index) Insert(s Shape) error {
	if s == nil {
		return fmt.Errorf("%w: nil shape", ErrBadShape)
	}
	if err := s.Validate(); err != nil {
		return err
	}
	bbox, err := boxRect(s.Box())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadShape, err)
	}
	idx.tree.Insert(&entry{shape: s, bbox: bbox})
	idx.n++
	return nil
}

// Len returns the number of indexed shapes.
func (idx *Index) Len() int { return idx.n }

// ProbeRadius returns the clearance checked by Obstructed.
func (idx *Index) ProbeRadius() float64 { return idx.probe }

// Obstructed reports whether a sphere of ProbeRadius around p touches any
// indexed shape.
func (idx *Index) Obstructed(p r3.Vec) bool {
	if idx.n == 0 {
		return false
	}
	r := idx.probe
	query, err := boxRect(r3.Sub(p, r3.Vec{X: r, Y: r, Z: r}), r3.Add(p, r3.Vec{X: r, Y: r, Z: r}))
	if err != nil {
		return false
	}
	for _, item := range idx.tree.SearchIntersect(query) {
		if item.(*entry).shape.Touches(p, r) {
			return true
		}
	}
	return false
}
