package pathfind

import (
	"errors"
	"fmt"

	"github.com/danieljhkim/gridcmd/internal/grid"
)

var (
	// ErrEmptyPath indicates a path with no coordinates.
	ErrEmptyPath = errors.New("empty path")

	// ErrBrokenPath indicates consecutive coordinates that are not unit 4-connected steps.
	ErrBrokenPath = errors.New("path is not 4-connected")

	// ErrRepeatedCell indicates a path visiting the same coordinate twice.
	ErrRepeatedCell = errors.New("path revisits a cell")
)

// Path is an ordered route from the agent to a target, both included.
type Path []grid.Coord

// Len returns the number of edges (steps) in the path.
func (p Path) Len() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Start returns the first coordinate. It panics on an empty path.
func (p Path) Start() grid.Coord { return p[0] }

// Target returns the last coordinate. It panics on an empty path.
func (p Path) Target() grid.Coord { return p[len(p)-1] }

// Valid checks that p is non-empty, simple, and moves one unit along exactly
// one axis per step.
func (p Path) Valid() error {
	if len(p) == 0 {
		return ErrEmptyPath
	}
	seen := make(map[grid.Coord]struct{}, len(p))
	for i, c := range p {
		if _, dup := seen[c]; dup {
			return fmt.Errorf("%w: %s at step %d", ErrRepeatedCell, c, i)
		}
		seen[c] = struct{}{}
		if i > 0 && p[i-1].Manhattan(c) != 1 {
			return fmt.Errorf("%w: %s -> %s", ErrBrokenPath, p[i-1], c)
		}
	}
	return nil
}
