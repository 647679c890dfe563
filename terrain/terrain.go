// Package terrain samples elevation for grid construction.
//
// A HeightField is a rectangular table of height samples spaced CellSize
// apart in world units; SampleHeight interpolates bilinearly between them
// and clamps outside the table. Layout turns any Sampler into the
// navgrid.PositionFunc used by navgrid.Build: cell (x, z) sits at
// (x*Spacing, height+Lift, z*Spacing).
package terrain

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/elevpath/navgrid"
)

// Defaults match the grid step and node lift used by the scenario files.
const (
	DefaultSpacing = 20.0
	DefaultLift    = 25.0
)

var (
	// ErrEmptyField indicates a height table with no rows or no columns.
	ErrEmptyField = errors.New("terrain: height field must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("terrain: all rows must have the same length")
	// ErrBadSpacing indicates a non-positive cell size or grid spacing.
	ErrBadSpacing = errors.New("terrain: spacing must be positive")
)

// Sampler returns the terrain height at world coordinates (x, z).
type Sampler interface {
	SampleHeight(x, z float64) float64
}

// Flat is a Sampler with constant height.
type Flat float64

// SampleHeight implements Sampler.
func (f Flat) SampleHeight(_, _ float64) float64 { return float64(f) }

// HeightField is an immutable table of height samples. heights[row][col]
// is the height at world (col*CellSize, row*CellSize).
type HeightField struct {
	heights  [][]float64
	cellSize float64
}

// NewHeightField deep-copies heights and validates the table.
func NewHeightField(heights [][]float64, cellSize float64) (*HeightField, error) {
	if len(heights) == 0 || len(heights[0]) == 0 {
		return nil, ErrEmptyField
	}
	if cellSize <= 0 || math.IsNaN(cellSize) {
		return nil, fmt.Errorf("%w: cell size %v", ErrBadSpacing, cellSize)
	}
	w := len(heights[0])
	rows := make([][]float64, len(heights))
	for z, row := range heights {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d samples, want %d", ErrNonRectangular, z, len(row), w)
		}
		rows[z] = append([]float64(nil), row...)
	}
	return &HeightField{heights: rows, cellSize: cellSize}, nil
}

// Size returns the world extent covered by the samples along x and z.
func (h *HeightField) Size() (sizeX, sizeZ float64) {
	return float64(len(h.heights[0])-1) * h.cellSize, float64(len(h.heights)-1) * h.cellSize
}

// SampleHeight implements Sampler with bilinear interpolation. Coordinates
// outside the table are clamped to its edge.
func (h *HeightField) SampleHeight(x, z float64) float64 {
	cols, rows := len(h.heights[0]), len(h.heights)
	fx := clamp(x/h.cellSize, 0, float64(cols-1))
	fz := clamp(z/h.cellSize, 0, float64(rows-1))

	x0, z0 := int(fx), int(fz)
	x1, z1 := min(x0+1, cols-1), min(z0+1, rows-1)
	tx, tz := fx-float64(x0), fz-float64(z0)

	top := lerp(h.heights[z0][x0], h.heights[z0][x1], tx)
	bottom := lerp(h.heights[z1][x0], h.heights[z1][x1], tx)
	return lerp(top, bottom, tz)
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}

// Layout places grid cells over a terrain.
type Layout struct {
	// Spacing is the world distance between adjacent cells along x and z.
	Spacing float64
	// Lift raises each node above the sampled terrain height.
	Lift float64
}

// DefaultLayout returns Spacing=DefaultSpacing, Lift=DefaultLift.
func DefaultLayout() Layout {
	return Layout{Spacing: DefaultSpacing, Lift: DefaultLift}
}

// Validate reports ErrBadSpacing for a non-positive spacing.
func (l Layout) Validate() error {
	if l.Spacing <= 0 || math.IsNaN(l.Spacing) {
		return fmt.Errorf("%w: grid spacing %v", ErrBadSpacing, l.Spacing)
	}
	return nil
}

// Dimensions returns how many cells fit along a terrain of the given size.
func (l Layout) Dimensions(sizeX, sizeZ float64) (width, height int) {
	return int(sizeX / l.Spacing), int(sizeZ / l.Spacing)
}

// PositionFunc returns the navgrid position callback for s.
func (l Layout) PositionFunc(s Sampler) navgrid.PositionFunc {
	return func(x, z int) r3.Vec {
		wx, wz := float64(x)*l.Spacing, float64(z)*l.Spacing
		return r3.Vec{X: wx, Y: s.SampleHeight(wx, wz) + l.Lift, Z: wz}
	}
}
