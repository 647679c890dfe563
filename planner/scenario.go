package planner

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/elevpath/config"
	"github.com/katalvlaran/elevpath/navgrid"
	"github.com/katalvlaran/elevpath/obstacle"
	"github.com/katalvlaran/elevpath/terrain"
)

// FromScenario builds the terrain, grid, obstacle index and planner
// described by s. Extra options are applied after the scenario's own
// settings, so callers can override them (e.g. from CLI flags).
func FromScenario(s *config.Scenario, logger zerolog.Logger, extra ...Option) (*Planner, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil scenario", config.ErrInvalidScenario)
	}

	var (
		sampler      terrain.Sampler
		sizeX, sizeZ float64
	)
	if s.Terrain.Flat != nil {
		sampler = terrain.Flat(*s.Terrain.Flat)
		sizeX, sizeZ = s.Terrain.SizeX, s.Terrain.SizeZ
	} else {
		hf, err := terrain.NewHeightField(s.Terrain.Heights, s.Terrain.CellSize)
		if err != nil {
			return nil, err
		}
		sampler = hf
		sizeX, sizeZ = hf.Size()
	}

	layout := terrain.Layout{Spacing: s.Layout.Spacing, Lift: s.Layout.Lift}
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	w, h := layout.Dimensions(sizeX, sizeZ)
	g, err := navgrid.Build(w, h, layout.PositionFunc(sampler))
	if err != nil {
		return nil, fmt.Errorf("building %dx%d grid: %w", w, h, err)
	}

	probe := obstacle.DefaultProbeRadius
	if s.ProbeRadius != nil {
		probe = *s.ProbeRadius
	}
	shapes, err := shapesOf(s.Obstacles)
	if err != nil {
		return nil, err
	}
	idx, err := obstacle.NewIndex(probe, shapes...)
	if err != nil {
		return nil, err
	}

	opts := []Option{
		WithHeuristic(s.Heuristic),
		WithCoefficient(s.CoefficientValue()),
		WithRefreshEvery(s.RefreshEvery),
		WithLogger(logger),
	}
	if s.Start != nil {
		opts = append(opts, WithStart(navgrid.Coord{X: s.Start[0], Z: s.Start[1]}))
	}
	if s.Goal != nil {
		opts = append(opts, WithGoal(navgrid.Coord{X: s.Goal[0], Z: s.Goal[1]}))
	}
	opts = append(opts, extra...)

	logger.Debug().
		Int("width", w).
		Int("height", h).
		Int("obstacles", idx.Len()).
		Float64("probe_radius", probe).
		Msg("scenario loaded")

	return New(g, idx.Obstructed, opts...)
}

func shapesOf(obs []config.Obstacle) ([]obstacle.Shape, error) {
	shapes := make([]obstacle.Shape, 0, len(obs))
	for i, o := range obs {
		switch {
		case o.Sphere != nil:
			c := o.Sphere.Center
			shapes = append(shapes, obstacle.Sphere{
				Center: r3.Vec{X: c[0], Y: c[1], Z: c[2]},
				Radius: o.Sphere.Radius,
			})
		case o.Prism != nil:
			shapes = append(shapes, obstacle.Prism{
				Footprint: orb.Polygon{ringOf(o.Prism.Footprint)},
				MinY:      o.Prism.MinY,
				MaxY:      o.Prism.MaxY,
			})
		default:
			return nil, fmt.Errorf("%w: obstacles[%d] has no shape", config.ErrInvalidScenario, i)
		}
	}
	return shapes, nil
}

// ringOf converts footprint vertices to a closed orb.Ring.
func ringOf(pts [][2]float64) orb.Ring {
	ring := make(orb.Ring, 0, len(pts)+1)
	for _, p := range pts {
		ring = append(ring, orb.Point{p[0], p[1]})
	}
	if len(ring) > 0 && !ring.Closed() {
		ring = append(ring, ring[0])
	}
	return ring
}
