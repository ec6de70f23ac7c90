package engine

import "github.com/danieljhkim/gridcmd/internal/grid"

// SetCellRequest writes a state into a cell unconditionally.
type SetCellRequest struct {
	// Coord is the cell to write
	Coord grid.Coord

	// State is the new cell state
	State grid.CellState
}

// ToggleRequest toggles a Tile or Enemy marker on a cell.
type ToggleRequest struct {
	// Coord is the cell to toggle
	Coord grid.Coord

	// Marker is grid.Tile or grid.Enemy
	Marker grid.CellState
}

// RelocateRequest moves the agent.
type RelocateRequest struct {
	// Coord is the agent's new cell
	Coord grid.Coord
}

// PlanRequest asks for a route from the agent to Target.
type PlanRequest struct {
	// Target is the destination cell; it must be Empty to be reachable
	Target grid.Coord

	// DryRun encodes the command but does not deliver it to the sink
	DryRun bool
}
