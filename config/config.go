// Package config loads scenario files and parses operator input.
//
// A scenario is a YAML document describing the terrain, grid layout,
// obstacles, endpoints and search parameters for one planner:
//
//	terrain:
//	  cell_size: 20
//	  heights: [[0, 0, 0], [0, 12, 0], [0, 0, 0]]
//	layout: {spacing: 20, lift: 25}
//	heuristic: manhattan
//	coefficient: 40
//	refresh_every: 1000
//	obstacles:
//	  - sphere: {center: [40, 30, 40], radius: 5}
//	  - prism: {footprint: [[0, 0], [10, 0], [10, 10]], min_y: 0, max_y: 60}
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/elevpath/heuristic"
)

// DefaultRefreshEvery is the number of ticks between pipeline runs.
const DefaultRefreshEvery = 1000

var (
	// ErrInvalidScenario wraps every scenario validation failure.
	ErrInvalidScenario = errors.New("config: invalid scenario")
	// ErrBadCoefficient indicates coefficient text that is not a finite,
	// non-negative decimal number.
	ErrBadCoefficient = errors.New("config: coefficient must be a non-negative decimal number")
)

// Terrain describes the height samples. Either Heights (with CellSize) or
// Flat with SizeX/SizeZ must be given.
type Terrain struct {
	CellSize float64     `yaml:"cell_size"`
	Heights  [][]float64 `yaml:"heights"`
	Flat     *float64    `yaml:"flat"`
	SizeX    float64     `yaml:"size_x"`
	SizeZ    float64     `yaml:"size_z"`
}

// Layout mirrors terrain.Layout.
type Layout struct {
	Spacing float64 `yaml:"spacing"`
	Lift    float64 `yaml:"lift"`
}

// Point is an [x, z] grid coordinate.
type Point [2]int

// Sphere is a ball obstacle in world coordinates.
type Sphere struct {
	Center [3]float64 `yaml:"center"`
	Radius float64    `yaml:"radius"`
}

// Prism is an extruded x/z footprint.
type Prism struct {
	Footprint [][2]float64 `yaml:"footprint"`
	MinY      float64      `yaml:"min_y"`
	MaxY      float64      `yaml:"max_y"`
}

// Obstacle holds exactly one shape.
type Obstacle struct {
	Sphere *Sphere `yaml:"sphere,omitempty"`
	Prism  *Prism  `yaml:"prism,omitempty"`
}

// Scenario is the root YAML document.
type Scenario struct {
	Terrain      Terrain        `yaml:"terrain"`
	Layout       Layout         `yaml:"layout"`
	Start        *Point         `yaml:"start,omitempty"`
	Goal         *Point         `yaml:"goal,omitempty"`
	Heuristic    heuristic.Kind `yaml:"heuristic"`
	Coefficient  *float64       `yaml:"coefficient,omitempty"`
	RefreshEvery int            `yaml:"refresh_every"`
	ProbeRadius  *float64       `yaml:"probe_radius,omitempty"`
	Obstacles    []Obstacle     `yaml:"obstacles"`
	LogLevel     string         `yaml:"log_level"`
}

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML, applies defaults and validates the result.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing scenario YAML: %w", err)
	}
	s.applyDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Scenario) applyDefaults() {
	if s.Layout.Spacing == 0 {
		s.Layout.Spacing = 20
	}
	if s.Terrain.CellSize == 0 {
		s.Terrain.CellSize = s.Layout.Spacing
	}
	if s.RefreshEvery == 0 {
		s.RefreshEvery = DefaultRefreshEvery
	}
	if s.Coefficient == nil {
		c := heuristic.DefaultCoefficient
		s.Coefficient = &c
	}
}

// CoefficientValue returns the configured coefficient or the default.
func (s *Scenario) CoefficientValue() float64 {
	if s.Coefficient == nil {
		return heuristic.DefaultCoefficient
	}
	return *s.Coefficient
}

// Validate checks internal consistency. Grid-dependent checks (endpoints in
// range) happen when the planner is built.
func (s *Scenario) Validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalidScenario, fmt.Sprintf(format, args...))
	}

	t := s.Terrain
	switch {
	case len(t.Heights) > 0 && t.Flat != nil:
		return invalid("terrain: heights and flat are mutually exclusive")
	case len(t.Heights) == 0 && t.Flat == nil:
		return invalid("terrain: one of heights or flat is required")
	case t.Flat != nil && (t.SizeX <= 0 || t.SizeZ <= 0):
		return invalid("terrain: flat terrain needs positive size_x and size_z")
	}
	if t.CellSize <= 0 {
		return invalid("terrain: cell_size must be positive")
	}
	if s.Layout.Spacing <= 0 {
		return invalid("layout: spacing must be positive")
	}
	if !s.Heuristic.Valid() {
		return invalid("heuristic: %v", s.Heuristic)
	}
	if c := s.CoefficientValue(); c < 0 || math.IsNaN(c) || math.IsInf(c, 0) {
		return invalid("coefficient: %v", c)
	}
	if s.RefreshEvery < 0 {
		return invalid("refresh_every must be non-negative")
	}
	if s.ProbeRadius != nil && *s.ProbeRadius < 0 {
		return invalid("probe_radius must be non-negative")
	}
	for i, o := range s.Obstacles {
		if (o.Sphere == nil) == (o.Prism == nil) {
			return invalid("obstacles[%d]: exactly one of sphere or prism is required", i)
		}
	}
	return nil
}

// ParseCoefficient parses operator-entered coefficient text using
// invariant-culture decimal notation ("12.5", "1e2"). On malformed, NaN,
// infinite or negative input it returns previous together with an error
// wrapping ErrBadCoefficient, so callers can keep the previous value.
func ParseCoefficient(text string, previous float64) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return previous, fmt.Errorf("%w: %q", ErrBadCoefficient, text)
	}
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return previous, fmt.Errorf("%w: %q", ErrBadCoefficient, text)
	}
	return v, nil
}
