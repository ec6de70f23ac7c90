package engine

import (
	"github.com/danieljhkim/gridcmd/internal/encoder"
	"github.com/danieljhkim/gridcmd/internal/grid"
	"github.com/danieljhkim/gridcmd/internal/pathfind"
)

// PlanResult is the outcome of a planning request. Found is false when no
// route exists; that is a normal outcome, not an error.
type PlanResult struct {
	// Start is the agent position the search started from
	Start grid.Coord `json:"start"`

	// Target is the requested destination
	Target grid.Coord `json:"target"`

	// Found reports whether a route exists
	Found bool `json:"found"`

	// Path is the route including both endpoints (nil when not found)
	Path pathfind.Path `json:"path,omitempty"`

	// Runs is the run-length form of Path
	Runs []encoder.Run `json:"runs,omitempty"`

	// Command is the encoded command string (empty when not found)
	Command string `json:"command,omitempty"`

	// Delivered reports whether Command was handed to a sink that keeps it
	Delivered bool `json:"delivered"`
}

// Steps returns the number of moves in the path.
func (r *PlanResult) Steps() int {
	return r.Path.Len()
}

// ToggleResult reports the state a toggle left behind.
type ToggleResult struct {
	// Coord is the toggled cell
	Coord grid.Coord `json:"coord"`

	// State is the cell state after the toggle
	State grid.CellState `json:"state"`
}
