package main

import (
	"fmt"
	"io"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/muesli/termenv"

	"github.com/katalvlaran/elevpath/heuristic"
	"github.com/katalvlaran/elevpath/navgrid"
	"github.com/katalvlaran/elevpath/planner"
	"github.com/katalvlaran/elevpath/search"
)

// stateColors maps navgrid.State.Color names onto terminal colors.
var stateColors = map[string]termenv.Color{
	"blue":   termenv.ANSIBlue,
	"red":    termenv.ANSIRed,
	"green":  termenv.ANSIGreen,
	"yellow": termenv.ANSIYellow,
	"lime":   termenv.ANSIBrightGreen,
}

func stateGlyph(s navgrid.State) string {
	switch s {
	case navgrid.Obstructed:
		return "#"
	case navgrid.OnPathAStar:
		return "a"
	case navgrid.OnPathDijkstra:
		return "d"
	case navgrid.OnPathBoth:
		return "*"
	}
	return "."
}

// cellGlyph returns the map glyph for c, drawing start and goal as S and G.
func cellGlyph(g *navgrid.Grid, c, start, goal navgrid.Coord) (string, navgrid.State) {
	st := g.MustNode(c).State()
	switch c {
	case start:
		return "S", st
	case goal:
		return "G", st
	}
	return stateGlyph(st), st
}

// renderMap returns one line per grid row, highest z first so the map reads
// like a top-down view.
func renderMap(g *navgrid.Grid, start, goal navgrid.Coord) []string {
	rows := make([]string, 0, g.Height())
	for z := g.Height() - 1; z >= 0; z-- {
		var b strings.Builder
		for x := 0; x < g.Width(); x++ {
			glyph, _ := cellGlyph(g, navgrid.Coord{X: x, Z: z}, start, goal)
			b.WriteString(glyph)
		}
		rows = append(rows, b.String())
	}
	return rows
}

func printReport(w io.Writer, p *planner.Planner, rep planner.Report, runs int) {
	out := termenv.NewOutput(w)
	g := p.Grid()
	start, goal := p.Endpoints()

	fmt.Fprintf(w, "Run %s (%d run(s), heuristic %s, coefficient %g)\n", rep.RunID, runs, rep.Heuristic, rep.Coefficient)
	for _, r := range []search.Result{rep.AStar, rep.Dijkstra} {
		fmt.Fprintf(w, "  %s\n", r)
		if r.Reachable() {
			fmt.Fprintf(w, "    path %v\n", r.Path)
		} else {
			fmt.Fprintf(w, "    goal %v unreachable\n", r.Goal)
		}
	}
	fmt.Fprintln(w)

	for z := g.Height() - 1; z >= 0; z-- {
		for x := 0; x < g.Width(); x++ {
			glyph, st := cellGlyph(g, navgrid.Coord{X: x, Z: z}, start, goal)
			fmt.Fprint(w, out.String(glyph).Foreground(stateColors[st.Color()]))
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "\n%s A*  %s Dijkstra  %s both  %s obstructed\n",
		out.String("a").Foreground(termenv.ANSIGreen),
		out.String("d").Foreground(termenv.ANSIYellow),
		out.String("*").Foreground(termenv.ANSIBrightGreen),
		out.String("#").Foreground(termenv.ANSIRed))
}

type resultView struct {
	Algorithm string   `json:"algorithm"`
	Reachable bool     `json:"reachable"`
	Cost      *float64 `json:"cost,omitempty"`
	Visited   int      `json:"visited"`
	Path      [][2]int `json:"path"`
}

type reportView struct {
	RunID       string         `json:"run_id"`
	Runs        int            `json:"runs"`
	Heuristic   heuristic.Kind `json:"heuristic"`
	Coefficient float64        `json:"coefficient"`
	Width       int            `json:"width"`
	Height      int            `json:"height"`
	AStar       resultView     `json:"astar"`
	Dijkstra    resultView     `json:"dijkstra"`
	Map         []string       `json:"map"`
}

// viewOf drops the +Inf cost of unreachable results, which JSON cannot encode.
func viewOf(r search.Result) resultView {
	v := resultView{
		Algorithm: r.Algorithm.String(),
		Reachable: r.Reachable(),
		Visited:   r.Visited,
		Path:      make([][2]int, 0, len(r.Path)),
	}
	if v.Reachable {
		cost := r.Cost
		v.Cost = &cost
		for _, c := range r.Path {
			v.Path = append(v.Path, [2]int{c.X, c.Z})
		}
	}
	return v
}

func printJSON(w io.Writer, p *planner.Planner, rep planner.Report, runs int) error {
	g := p.Grid()
	start, goal := p.Endpoints()
	view := reportView{
		RunID:       rep.RunID.String(),
		Runs:        runs,
		Heuristic:   rep.Heuristic,
		Coefficient: rep.Coefficient,
		Width:       g.Width(),
		Height:      g.Height(),
		AStar:       viewOf(rep.AStar),
		Dijkstra:    viewOf(rep.Dijkstra),
		Map:         renderMap(g, start, goal),
	}
	data, err := json.MarshalIndent(view, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

func printHeuristics(w io.Writer, kinds []heuristic.Kind) {
	def := heuristic.DefaultParams().Kind
	for i, k := range kinds {
		mark := " "
		if k == def {
			mark = "*"
		}
		fmt.Fprintf(w, "%s %d %s\n", mark, i, k)
	}
}
