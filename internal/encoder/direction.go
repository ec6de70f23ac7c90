package encoder

import (
	"errors"
	"fmt"

	"github.com/danieljhkim/gridcmd/internal/grid"
)

// ErrInvalidStep indicates consecutive coordinates that are not a unit
// 4-connected step.
var ErrInvalidStep = errors.New("invalid step")

// Direction is one of the four movement directions of the wire format.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Byte returns the wire token for d: 'l', 'r', 'u' or 'd'.
func (d Direction) Byte() byte {
	switch d {
	case Left:
		return 'l'
	case Right:
		return 'r'
	case Up:
		return 'u'
	case Down:
		return 'd'
	default:
		panic(fmt.Sprintf("encoder: unknown direction %d", int(d)))
	}
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// MarshalText encodes the direction by name.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// DirectionBetween maps the step from a to b to a direction. Y grows
// downward, so an increasing Y is Down.
func DirectionBetween(a, b grid.Coord) (Direction, error) {
	dx, dy := b.X-a.X, b.Y-a.Y
	switch {
	case dx == 1 && dy == 0:
		return Right, nil
	case dx == -1 && dy == 0:
		return Left, nil
	case dx == 0 && dy == 1:
		return Down, nil
	case dx == 0 && dy == -1:
		return Up, nil
	default:
		return 0, fmt.Errorf("%w: %s -> %s", ErrInvalidStep, a, b)
	}
}
