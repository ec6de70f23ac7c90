// Package engine runs a gridcmd planning session.
//
// The engine owns the occupancy grid and connects it to the path finder, the
// command encoder and the delivery sink. Every call runs to completion
// before returning; an Engine is meant to be driven by a single goroutine.
//
// Key operations:
//   - SetCell/ToggleMarker/RelocateAgent: edit the grid
//   - Plan: search from the agent to a target, encode and deliver the command
package engine

import (
	"context"
	"fmt"

	"github.com/danieljhkim/gridcmd/internal/config"
	"github.com/danieljhkim/gridcmd/internal/encoder"
	"github.com/danieljhkim/gridcmd/internal/grid"
	"github.com/danieljhkim/gridcmd/internal/nonce"
	"github.com/danieljhkim/gridcmd/internal/pathfind"
	"github.com/danieljhkim/gridcmd/internal/sink"
)

// Engine orchestrates editing and planning on one grid.
type Engine struct {
	grid     *grid.Grid
	nonce    nonce.Source
	sink     sink.Sink
	lastPath pathfind.Path
}

// New creates an Engine whose grid is built from layout. A nil src uses
// nonce.RandomSource and a nil out discards commands.
func New(layout config.Layout, src nonce.Source, out sink.Sink) (*Engine, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	g, err := grid.New(layout.Width, layout.Height, layout.Start.Coord())
	if err != nil {
		return nil, fmt.Errorf("failed to create grid: %w", err)
	}
	if err := place(g, layout.Tiles, grid.Tile); err != nil {
		return nil, err
	}
	if err := place(g, layout.Enemies, grid.Enemy); err != nil {
		return nil, err
	}

	if src == nil {
		src = &nonce.RandomSource{}
	}
	if out == nil {
		out = sink.Discard{}
	}
	return &Engine{grid: g, nonce: src, sink: out}, nil
}

func place(g *grid.Grid, points []config.Point, state grid.CellState) error {
	for _, p := range points {
		if err := g.SetCell(p.Coord(), state); err != nil {
			return fmt.Errorf("failed to place %s: %w", state, err)
		}
	}
	return nil
}

// Grid returns the engine's grid for read access (rendering, queries).
func (e *Engine) Grid() *grid.Grid {
	return e.grid
}

// Agent returns the current agent position.
func (e *Engine) Agent() grid.Coord {
	return e.grid.Agent()
}

// LastPath returns the path of the most recent successful plan, or nil if
// the most recent plan found no route.
func (e *Engine) LastPath() pathfind.Path {
	return e.lastPath
}

// Query returns the state of a cell.
func (e *Engine) Query(c grid.Coord) (grid.CellState, error) {
	return e.grid.Query(c)
}

// SetCell writes a cell state without legality checks.
func (e *Engine) SetCell(req *SetCellRequest) error {
	if req == nil {
		return fmt.Errorf("%w: nil set request", ErrInvalidRequest)
	}
	if req.State == grid.Agent {
		// keep the stored position and the Agent cell in step
		return e.grid.RelocateAgent(req.Coord)
	}
	return e.grid.SetCell(req.Coord, req.State)
}

// ToggleMarker toggles a Tile or Enemy marker and reports the new state.
func (e *Engine) ToggleMarker(req *ToggleRequest) (*ToggleResult, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: nil toggle request", ErrInvalidRequest)
	}
	if err := e.grid.ToggleMarker(req.Coord, req.Marker); err != nil {
		return nil, err
	}
	state, err := e.grid.Query(req.Coord)
	if err != nil {
		return nil, err
	}
	return &ToggleResult{Coord: req.Coord, State: state}, nil
}

// RelocateAgent moves the agent to the requested cell.
func (e *Engine) RelocateAgent(req *RelocateRequest) error {
	if req == nil {
		return fmt.Errorf("%w: nil relocate request", ErrInvalidRequest)
	}
	return e.grid.RelocateAgent(req.Coord)
}

// Plan searches from the agent to req.Target. When a route exists the
// command is encoded and, unless req.DryRun or the sink is sink.Discard,
// delivered to the sink. When no route exists the result has Found == false,
// nothing is encoded and the error is nil.
func (e *Engine) Plan(ctx context.Context, req *PlanRequest) (*PlanResult, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: nil plan request", ErrInvalidRequest)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, err := e.grid.Query(req.Target); err != nil {
		return nil, fmt.Errorf("invalid target: %w", err)
	}

	result := &PlanResult{
		Start:  e.grid.Agent(),
		Target: req.Target,
	}

	path, ok := pathfind.Find(e.grid, result.Start, req.Target)
	if !ok {
		e.lastPath = nil
		return result, nil
	}

	runs, err := encoder.Runs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to encode path: %w", err)
	}
	result.Found = true
	result.Path = path
	result.Runs = runs
	result.Command = encoder.EncodeRuns(runs, e.nonce.Uint32())
	e.lastPath = path

	if req.DryRun {
		return result, nil
	}
	if _, discard := e.sink.(sink.Discard); discard {
		return result, nil
	}
	if err := e.sink.Deliver(result.Command); err != nil {
		return result, fmt.Errorf("%w: %w", ErrDelivery, err)
	}
	result.Delivered = true
	return result, nil
}
