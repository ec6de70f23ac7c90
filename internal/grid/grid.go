// Package grid holds the occupancy model that the path finder searches.
//
// A Grid is a fixed W x H rectangle of cells, each Empty, Tile, Enemy or Agent,
// plus the stored agent position. All operations validate bounds and report
// ErrOutOfBounds rather than clamping; clamping belongs to the input layer.
//
// Editing is deliberately permissive: ToggleMarker may overwrite the agent's
// cell and RelocateAgent may move onto an obstacle. Callers that want stricter
// rules must check Query first.
package grid

import (
	"errors"
	"fmt"
	"strings"
)

// MaxCells bounds width*height.
const MaxCells = 1 << 24

var (
	// ErrOutOfBounds indicates a coordinate outside [0,W) x [0,H).
	ErrOutOfBounds = errors.New("coordinate out of bounds")

	// ErrInvalidSize indicates non-positive grid dimensions or more than
	// MaxCells cells.
	ErrInvalidSize = errors.New("invalid grid size")

	// ErrInvalidMarker indicates a toggle with a state other than Tile or Enemy.
	ErrInvalidMarker = errors.New("invalid marker")
)

// Grid is the occupancy model. It is not safe for concurrent use.
type Grid struct {
	width  int
	height int
	cells  []CellState // row-major, len = width*height
	agent  Coord
}

// New creates a grid with every cell Empty except start, which holds the Agent.
func New(width, height int, start Coord) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if width > MaxCells/height {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d cells", ErrInvalidSize, width, height, MaxCells)
	}
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]CellState, width*height),
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("agent start %s: %w", start, ErrOutOfBounds)
	}
	g.agent = start
	g.cells[g.index(start)] = Agent
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Agent returns the stored agent position.
func (g *Grid) Agent() Coord { return g.agent }

// InBounds reports whether c addresses a cell of g.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

func (g *Grid) index(c Coord) int {
	return c.Y*g.width + c.X
}

func (g *Grid) checkBounds(c Coord) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%s on %dx%d grid: %w", c, g.width, g.height, ErrOutOfBounds)
	}
	return nil
}

// Query returns the state of the cell at c.
func (g *Grid) Query(c Coord) (CellState, error) {
	if err := g.checkBounds(c); err != nil {
		return Empty, err
	}
	return g.cells[g.index(c)], nil
}

// SetCell writes state into the cell at c without any legality check.
// Writing Agent does not move the stored agent position; use RelocateAgent.
func (g *Grid) SetCell(c Coord, state CellState) error {
	if err := g.checkBounds(c); err != nil {
		return err
	}
	g.cells[g.index(c)] = state
	return nil
}

// ToggleMarker clears the cell if it already holds marker, otherwise sets it
// to marker, overwriting whatever was there (including the agent).
func (g *Grid) ToggleMarker(c Coord, marker CellState) error {
	if !marker.IsMarker() {
		return fmt.Errorf("%w: %s", ErrInvalidMarker, marker)
	}
	current, err := g.Query(c)
	if err != nil {
		return err
	}
	if current == marker {
		return g.SetCell(c, Empty)
	}
	return g.SetCell(c, marker)
}

// RelocateAgent empties the agent's current cell and places the agent at c.
// The previous content of c is overwritten.
func (g *Grid) RelocateAgent(c Coord) error {
	if err := g.checkBounds(c); err != nil {
		return err
	}
	g.cells[g.index(g.agent)] = Empty
	g.cells[g.index(c)] = Agent
	g.agent = c
	return nil
}

// Count returns the number of cells holding state.
func (g *Grid) Count(state CellState) int {
	n := 0
	for _, s := range g.cells {
		if s == state {
			n++
		}
	}
	return n
}

// Render draws the grid one row per line using each state's glyph.
func (g *Grid) Render() string {
	return g.RenderPath(nil)
}

// RenderPath draws the grid with the cells of path overlaid: intermediate
// cells as '*' and the final cell as 'X'. The first cell keeps its glyph.
func (g *Grid) RenderPath(path []Coord) string {
	overlay := make(map[Coord]byte, len(path))
	for i, c := range path {
		switch {
		case i == 0:
			continue
		case i == len(path)-1:
			overlay[c] = 'X'
		default:
			overlay[c] = '*'
		}
	}

	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := Coord{X: x, Y: y}
			if mark, ok := overlay[c]; ok {
				b.WriteByte(mark)
				continue
			}
			b.WriteByte(g.cells[g.index(c)].Glyph())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
