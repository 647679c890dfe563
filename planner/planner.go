// Package planner drives the refresh-then-search pipeline over one grid.
//
// A Planner owns a navgrid.Grid and an obstruction oracle. Each run it
// refreshes walkability (which also clears old path highlights), then runs
// A* and Dijkstra between the configured endpoints, leaving both paths
// highlighted on the grid. Tick rate-limits runs to once every RefreshEvery
// frames for callers driven by a periodic clock.
//
// All methods are serialized by an internal mutex, so one Planner may be
// shared between goroutines; the grid itself must not be touched by other
// code while a run is in progress.
package planner

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/elevpath/config"
	"github.com/katalvlaran/elevpath/heuristic"
	"github.com/katalvlaran/elevpath/navgrid"
	"github.com/katalvlaran/elevpath/search"
)

var (
	// ErrNilGrid indicates New was given a nil grid.
	ErrNilGrid = errors.New("planner: grid is nil")
	// ErrBadInterval indicates a negative refresh interval.
	ErrBadInterval = errors.New("planner: refresh interval must be non-negative")
)

// Oracle reports whether a world position is obstructed.
type Oracle func(p r3.Vec) bool

// Report is the outcome of one pipeline run.
type Report struct {
	RunID       ulid.ULID
	Heuristic   heuristic.Kind
	Coefficient float64
	AStar       search.Result
	Dijkstra    search.Result
}

// Options configures a Planner.
type Options struct {
	Start        *navgrid.Coord
	Goal         *navgrid.Coord
	Params       heuristic.Params
	RefreshEvery int
	Logger       zerolog.Logger
}

// Option represents a functional option for configuring a Planner.
type Option func(*Options)

// DefaultOptions returns corner-to-corner endpoints, weighted Euclidean
// with the default coefficient, config.DefaultRefreshEvery and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Params:       heuristic.DefaultParams(),
		RefreshEvery: config.DefaultRefreshEvery,
		Logger:       zerolog.Nop(),
	}
}

// WithStart sets the start cell (default (0,0)).
func WithStart(c navgrid.Coord) Option {
	return func(o *Options) { o.Start = &c }
}

// WithGoal sets the goal cell (default (width-1, height-1)).
func WithGoal(c navgrid.Coord) Option {
	return func(o *Options) { o.Goal = &c }
}

// WithHeuristic sets the A* heuristic.
func WithHeuristic(k heuristic.Kind) Option {
	return func(o *Options) { o.Params.Kind = k }
}

// WithCoefficient sets the elevation coefficient.
func WithCoefficient(c float64) Option {
	return func(o *Options) { o.Params.Coefficient = c }
}

// WithRefreshEvery sets the number of ticks between runs.
func WithRefreshEvery(n int) Option {
	return func(o *Options) { o.RefreshEvery = n }
}

// WithLogger routes planner and search logs to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// Planner runs the pipeline over one grid.
type Planner struct {
	mu           sync.Mutex
	grid         *navgrid.Grid
	oracle       Oracle
	params       heuristic.Params
	start, goal  navgrid.Coord
	refreshEvery int
	nextFrame    int
	logger       zerolog.Logger
}

// New validates the options against g and returns a Planner. A nil oracle
// treats every cell as walkable.
func New(g *navgrid.Grid, oracle Oracle, opts ...Option) (*Planner, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGrid
	}
	if cfg.RefreshEvery < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadInterval, cfg.RefreshEvery)
	}
	if err := checkCoefficient(cfg.Params.Coefficient); err != nil {
		return nil, err
	}
	if !cfg.Params.Kind.Valid() {
		return nil, fmt.Errorf("%w: %d", heuristic.ErrUnknownKind, int(cfg.Params.Kind))
	}

	start := navgrid.Coord{}
	if cfg.Start != nil {
		start = *cfg.Start
	}
	goal := navgrid.Coord{X: g.Width() - 1, Z: g.Height() - 1}
	if cfg.Goal != nil {
		goal = *cfg.Goal
	}
	if _, err := g.Node(start); err != nil {
		return nil, fmt.Errorf("planner: start: %w", err)
	}
	if _, err := g.Node(goal); err != nil {
		return nil, fmt.Errorf("planner: goal: %w", err)
	}

	return &Planner{
		grid:         g,
		oracle:       oracle,
		params:       cfg.Params,
		start:        start,
		goal:         goal,
		refreshEvery: cfg.RefreshEvery,
		logger:       cfg.Logger,
	}, nil
}

func checkCoefficient(c float64) error {
	if c < 0 || math.IsNaN(c) || math.IsInf(c, 0) {
		return fmt.Errorf("%w: %v", config.ErrBadCoefficient, c)
	}
	return nil
}

// Grid returns the planner's grid for rendering. Do not mutate it while a
// run may be in progress.
func (p *Planner) Grid() *navgrid.Grid { return p.grid }

// Endpoints returns the start and goal cells.
func (p *Planner) Endpoints() (start, goal navgrid.Coord) { return p.start, p.goal }

// Params returns the current heuristic selection and coefficient.
func (p *Planner) Params() heuristic.Params {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.params
}

// Tick runs the pipeline if frame has reached the next scheduled frame and
// schedules the following run RefreshEvery frames later. ran is false when
// the tick was skipped.
func (p *Planner) Tick(frame int) (rep Report, ran bool, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if frame < p.nextFrame {
		return Report{}, false, nil
	}
	p.nextFrame = frame + p.refreshEvery
	rep, err = p.run()
	return rep, err == nil, err
}

// RunOnce runs the pipeline immediately, ignoring the tick schedule.
func (p *Planner) RunOnce() (Report, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.run()
}

func (p *Planner) run() (Report, error) {
	rep := Report{
		RunID:       ulid.Make(),
		Heuristic:   p.params.Kind,
		Coefficient: p.params.Coefficient,
	}
	logger := p.logger.With().Stringer("run_id", rep.RunID).Logger()

	p.grid.RefreshWalkability(p.oracle)

	opts := []search.Option{search.WithParams(p.params), search.WithLogger(logger)}
	var err error
	if rep.AStar, err = search.AStar(p.grid, p.start, p.goal, opts...); err != nil {
		return Report{}, err
	}
	if rep.Dijkstra, err = search.Dijkstra(p.grid, p.start, p.goal, opts...); err != nil {
		return Report{}, err
	}

	logger.Info().
		Str("heuristic", rep.Heuristic.String()).
		Float64("coefficient", rep.Coefficient).
		Int("obstructed", p.grid.Count(navgrid.Obstructed)).
		Float64("astar_dist", rep.AStar.Cost).
		Int("astar_visited", rep.AStar.Visited).
		Float64("dijkstra_dist", rep.Dijkstra.Cost).
		Int("dijkstra_visited", rep.Dijkstra.Visited).
		Msg("paths updated")

	return rep, nil
}

// SetHeuristic switches the A* heuristic for subsequent runs.
func (p *Planner) SetHeuristic(k heuristic.Kind) error {
	if !k.Valid() {
		return fmt.Errorf("%w: %d", heuristic.ErrUnknownKind, int(k))
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.params.Kind = k
	p.logger.Info().Str("heuristic", k.String()).Msgf("switched heuristic to %s", k)
	return nil
}

// CycleHeuristic advances to the next heuristic in toggle order and returns it.
func (p *Planner) CycleHeuristic() heuristic.Kind {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.params.Kind = p.params.Kind.Next()
	p.logger.Info().Str("heuristic", p.params.Kind.String()).Msgf("switched heuristic to %s", p.params.Kind)
	return p.params.Kind
}

// Coefficient returns the current elevation coefficient.
func (p *Planner) Coefficient() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.params.Coefficient
}

// SetCoefficient sets the elevation coefficient for subsequent runs.
func (p *Planner) SetCoefficient(c float64) error {
	if err := checkCoefficient(c); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.params.Coefficient = c
	return nil
}

// SetCoefficientText parses operator text with config.ParseCoefficient. On
// invalid input the previous coefficient is kept, a warning is logged and
// the parse error is returned.
func (p *Planner) SetCoefficientText(text string) (float64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	c, err := config.ParseCoefficient(text, p.params.Coefficient)
	if err != nil {
		p.logger.Warn().Err(err).Float64("coefficient", c).Msg("coefficient input rejected")
		return c, err
	}
	p.params.Coefficient = c
	p.logger.Info().Float64("coefficient", c).Msg("coefficient updated")
	return c, nil
}
