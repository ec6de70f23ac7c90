package grid

import (
	"fmt"
	"strings"
)

// CellState is the occupancy of a single cell.
type CellState int

const (
	Empty CellState = iota
	Tile            // static obstacle
	Enemy           // dynamic obstacle
	Agent
)

// String returns the lower-case name of the state.
func (s CellState) String() string {
	switch s {
	case Empty:
		return "empty"
	case Tile:
		return "tile"
	case Enemy:
		return "enemy"
	case Agent:
		return "agent"
	default:
		return fmt.Sprintf("CellState(%d)", int(s))
	}
}

// Glyph returns the single character used when rendering the state.
func (s CellState) Glyph() byte {
	switch s {
	case Empty:
		return '.'
	case Tile:
		return '#'
	case Enemy:
		return 'E'
	case Agent:
		return '@'
	default:
		return '?'
	}
}

// MarshalText encodes the state by name.
func (s CellState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// IsMarker reports whether s can be toggled by ToggleMarker.
func (s CellState) IsMarker() bool {
	return s == Tile || s == Enemy
}

// ParseCellState parses a state name as produced by String.
func ParseCellState(name string) (CellState, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "empty":
		return Empty, nil
	case "tile":
		return Tile, nil
	case "enemy":
		return Enemy, nil
	case "agent":
		return Agent, nil
	default:
		return Empty, fmt.Errorf("unknown cell state %q", name)
	}
}
