package script

import (
	"context"
	"fmt"

	"github.com/danieljhkim/gridcmd/internal/engine"
	"github.com/danieljhkim/gridcmd/internal/grid"
)

// Outcome records what a single goto or show statement produced.
type Outcome struct {
	// Line is the source line of the statement
	Line int `json:"line"`

	// Plan is set for goto statements
	Plan *engine.PlanResult `json:"plan,omitempty"`

	// Render is set for show statements
	Render string `json:"render,omitempty"`
}

// Runner executes statements against an engine.
type Runner struct {
	Engine *engine.Engine

	// DryRun plans without delivering commands
	DryRun bool

	// OnOutcome, if set, is called after each goto or show statement.
	OnOutcome func(Outcome)

	outcomes []Outcome
}

// NewRunner creates a Runner for eng.
func NewRunner(eng *engine.Engine) *Runner {
	return &Runner{Engine: eng}
}

// Outcomes returns everything recorded so far.
func (r *Runner) Outcomes() []Outcome {
	return r.outcomes
}

func (p *Point) coord() grid.Coord {
	return grid.C(p.X, p.Y)
}

// Exec runs every statement in order and stops at the first error. A goto
// that finds no route is not an error.
func (s *Script) Exec(ctx context.Context, r *Runner) error {
	for _, stmt := range s.Statements {
		if err := stmt.exec(ctx, r); err != nil {
			return fmt.Errorf("%s: %w", stmt.Pos, err)
		}
	}
	return nil
}

func (st *Statement) exec(ctx context.Context, r *Runner) error {
	eng := r.Engine
	switch {
	case st.Tile != nil:
		_, err := eng.ToggleMarker(&engine.ToggleRequest{Coord: st.Tile.coord(), Marker: grid.Tile})
		return err
	case st.Enemy != nil:
		_, err := eng.ToggleMarker(&engine.ToggleRequest{Coord: st.Enemy.coord(), Marker: grid.Enemy})
		return err
	case st.Agent != nil:
		return eng.RelocateAgent(&engine.RelocateRequest{Coord: st.Agent.coord()})
	case st.Set != nil:
		state, err := grid.ParseCellState(st.Set.State)
		if err != nil {
			return err
		}
		return eng.SetCell(&engine.SetCellRequest{Coord: st.Set.At.coord(), State: state})
	case st.Goto != nil:
		res, err := eng.Plan(ctx, &engine.PlanRequest{Target: st.Goto.coord(), DryRun: r.DryRun})
		if err != nil {
			return err
		}
		r.record(Outcome{Line: st.Pos.Line, Plan: res})
		return nil
	case st.Show:
		r.record(Outcome{Line: st.Pos.Line, Render: eng.Grid().RenderPath(eng.LastPath())})
		return nil
	default:
		return fmt.Errorf("empty statement")
	}
}

func (r *Runner) record(o Outcome) {
	r.outcomes = append(r.outcomes, o)
	if r.OnOutcome != nil {
		r.OnOutcome(o)
	}
}
