// Package config loads grid layouts for gridcmd.
//
// A layout fixes the grid dimensions, the agent's start cell and any
// obstacles present at startup. Layouts are YAML files:
//
//	width: 19
//	height: 13
//	start: [0, 0]
//	tiles: [[3, 4], [3, 5]]
//	enemies: [[7, 2]]
//
// The layout path can be given per command or through the GRIDCMD_LAYOUT
// environment variable. Without either, DefaultLayout is used.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/danieljhkim/gridcmd/internal/grid"
)

const (
	// DefaultWidth is the column count of the reference deployment.
	DefaultWidth = 19

	// DefaultHeight is the row count of the reference deployment.
	DefaultHeight = 13

	// LayoutEnv names the environment variable holding a layout path.
	LayoutEnv = "GRIDCMD_LAYOUT"
)

// ErrInvalidLayout indicates a layout that cannot be turned into a grid.
var ErrInvalidLayout = errors.New("invalid layout")

// Point is a cell coordinate in a layout file, written as [x, y].
type Point struct {
	X int
	Y int
}

// Coord converts p to a grid coordinate.
func (p Point) Coord() grid.Coord {
	return grid.C(p.X, p.Y)
}

// PointOf converts a grid coordinate to a Point.
func PointOf(c grid.Coord) Point {
	return Point{X: c.X, Y: c.Y}
}

// UnmarshalYAML accepts either [x, y] or {x: .., y: ..}.
func (p *Point) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var xy []int
		if err := node.Decode(&xy); err != nil {
			return err
		}
		if len(xy) != 2 {
			return fmt.Errorf("line %d: point needs 2 values, got %d", node.Line, len(xy))
		}
		p.X, p.Y = xy[0], xy[1]
		return nil
	case yaml.MappingNode:
		var m struct {
			X int `yaml:"x"`
			Y int `yaml:"y"`
		}
		if err := node.Decode(&m); err != nil {
			return err
		}
		p.X, p.Y = m.X, m.Y
		return nil
	default:
		return fmt.Errorf("line %d: point must be [x, y] or {x, y}", node.Line)
	}
}

// Layout describes the initial grid.
type Layout struct {
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	Start   Point   `yaml:"start"`
	Tiles   []Point `yaml:"tiles,omitempty"`
	Enemies []Point `yaml:"enemies,omitempty"`
}

// DefaultLayout returns the 19x13 layout with the agent in the top-left
// corner and no obstacles.
func DefaultLayout() Layout {
	return Layout{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Start:  Point{X: 0, Y: 0},
	}
}

// LoadLayout reads and validates a YAML layout file. Missing dimensions
// fall back to the defaults.
func LoadLayout(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout file %s: %w", path, err)
	}

	layout, err := ParseLayout(data)
	if err != nil {
		return nil, fmt.Errorf("layout %s: %w", path, err)
	}
	return layout, nil
}

// ParseLayout decodes and validates YAML layout data.
func ParseLayout(data []byte) (*Layout, error) {
	var layout Layout
	if err := yaml.Unmarshal(data, &layout); err != nil {
		return nil, fmt.Errorf("failed to parse layout YAML: %w", err)
	}

	applyDefaults(&layout)

	if err := layout.Validate(); err != nil {
		return nil, err
	}
	return &layout, nil
}

func applyDefaults(l *Layout) {
	if l.Width == 0 {
		l.Width = DefaultWidth
	}
	if l.Height == 0 {
		l.Height = DefaultHeight
	}
}

func (l *Layout) inBounds(p Point) bool {
	return p.X >= 0 && p.X < l.Width && p.Y >= 0 && p.Y < l.Height
}

// Validate checks dimensions, bounds and overlaps.
func (l *Layout) Validate() error {
	if l.Width < 1 || l.Height < 1 {
		return fmt.Errorf("%w: dimensions %dx%d must be positive", ErrInvalidLayout, l.Width, l.Height)
	}
	if !l.inBounds(l.Start) {
		return fmt.Errorf("%w: start %v outside %dx%d grid", ErrInvalidLayout, l.Start.Coord(), l.Width, l.Height)
	}

	seen := make(map[Point]string, len(l.Tiles)+len(l.Enemies))
	check := func(kind string, points []Point) error {
		for _, p := range points {
			if !l.inBounds(p) {
				return fmt.Errorf("%w: %s %v outside %dx%d grid", ErrInvalidLayout, kind, p.Coord(), l.Width, l.Height)
			}
			if p == l.Start {
				return fmt.Errorf("%w: %s %v covers the agent start", ErrInvalidLayout, kind, p.Coord())
			}
			if prev, dup := seen[p]; dup && prev != kind {
				return fmt.Errorf("%w: %v is both %s and %s", ErrInvalidLayout, p.Coord(), prev, kind)
			}
			seen[p] = kind
		}
		return nil
	}
	if err := check("tile", l.Tiles); err != nil {
		return err
	}
	return check("enemy", l.Enemies)
}

// ResolveLayoutPath picks the layout file: the explicit path if set, else
// $GRIDCMD_LAYOUT. An empty result means the default layout.
func ResolveLayoutPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	return os.Getenv(LayoutEnv)
}

// Resolve loads the layout named by ResolveLayoutPath, or DefaultLayout.
func Resolve(explicit string) (*Layout, error) {
	path := ResolveLayoutPath(explicit)
	if path == "" {
		layout := DefaultLayout()
		return &layout, nil
	}
	return LoadLayout(path)
}
