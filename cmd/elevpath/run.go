package main

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/elevpath/config"
	"github.com/katalvlaran/elevpath/heuristic"
	"github.com/katalvlaran/elevpath/planner"
)

type runFlags struct {
	heuristic   string
	coefficient string
	ticks       int
	logLevel    string
	json        bool
}

// newLogger builds a console logger. An explicit flag level wins over the
// scenario's log_level; both empty means info.
func newLogger(w io.Writer, flagLevel, scenarioLevel string) (zerolog.Logger, error) {
	name := flagLevel
	if name == "" {
		name = scenarioLevel
	}
	if name == "" {
		name = zerolog.LevelInfoValue
	}
	lvl, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("log level: %w", err)
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		Level(lvl).
		With().Timestamp().
		Logger(), nil
}

// loadPlanner loads the scenario and builds a planner, applying any CLI
// overrides on top of the scenario settings.
func loadPlanner(path string, errOut io.Writer, f runFlags) (*planner.Planner, error) {
	s, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading scenario: %w", err)
	}
	logger, err := newLogger(errOut, f.logLevel, s.LogLevel)
	if err != nil {
		return nil, err
	}

	var extra []planner.Option
	if f.heuristic != "" {
		k, err := heuristic.ParseKind(f.heuristic)
		if err != nil {
			return nil, err
		}
		extra = append(extra, planner.WithHeuristic(k))
	}

	p, err := planner.FromScenario(s, logger, extra...)
	if err != nil {
		return nil, fmt.Errorf("building planner: %w", err)
	}
	if f.coefficient != "" {
		// rejected text is logged by the planner and the scenario value stays
		_, _ = p.SetCoefficientText(f.coefficient)
	}
	return p, nil
}

func runScenario(out, errOut io.Writer, path string, f runFlags) error {
	p, err := loadPlanner(path, errOut, f)
	if err != nil {
		return err
	}

	var (
		rep  planner.Report
		runs int
	)
	if f.ticks > 0 {
		for frame := 0; frame < f.ticks; frame++ {
			r, ran, err := p.Tick(frame)
			if err != nil {
				return fmt.Errorf("frame %d: %w", frame, err)
			}
			if ran {
				rep = r
				runs++
			}
		}
	} else {
		if rep, err = p.RunOnce(); err != nil {
			return err
		}
		runs = 1
	}

	if f.json {
		return printJSON(out, p, rep, runs)
	}
	printReport(out, p, rep, runs)
	return nil
}

func runValidate(out io.Writer, path string) error {
	s, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("loading scenario: %w", err)
	}
	p, err := planner.FromScenario(s, zerolog.Nop())
	if err != nil {
		return fmt.Errorf("building planner: %w", err)
	}
	g := p.Grid()
	start, goal := p.Endpoints()
	fmt.Fprintf(out, "Result: VALID (%dx%d grid, %d obstacles, %v -> %v, %s c=%g)\n",
		g.Width(), g.Height(), len(s.Obstacles), start, goal, s.Heuristic, s.CoefficientValue())
	return nil
}
