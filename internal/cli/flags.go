package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/danieljhkim/gridcmd/internal/grid"
)

// parseCoord parses "x,y".
func parseCoord(s string) (grid.Coord, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return grid.Coord{}, fmt.Errorf("invalid coordinate %q: want x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return grid.Coord{}, fmt.Errorf("invalid coordinate %q: bad x: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return grid.Coord{}, fmt.Errorf("invalid coordinate %q: bad y: %w", s, err)
	}
	return grid.C(x, y), nil
}

// coordValue is a pflag.Value holding one coordinate.
type coordValue struct {
	c   grid.Coord
	set bool
}

var _ pflag.Value = (*coordValue)(nil)

func (v *coordValue) String() string {
	if !v.set {
		return ""
	}
	return fmt.Sprintf("%d,%d", v.c.X, v.c.Y)
}

func (v *coordValue) Set(s string) error {
	c, err := parseCoord(s)
	if err != nil {
		return err
	}
	v.c, v.set = c, true
	return nil
}

func (v *coordValue) Type() string { return "x,y" }

// coordListValue is a repeatable coordinate flag. Each occurrence may also
// hold several coordinates separated by ';'.
type coordListValue struct {
	coords []grid.Coord
}

var _ pflag.Value = (*coordListValue)(nil)

func (v *coordListValue) String() string {
	parts := make([]string, len(v.coords))
	for i, c := range v.coords {
		parts[i] = fmt.Sprintf("%d,%d", c.X, c.Y)
	}
	return strings.Join(parts, ";")
}

func (v *coordListValue) Set(s string) error {
	for _, part := range strings.Split(s, ";") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		c, err := parseCoord(part)
		if err != nil {
			return err
		}
		v.coords = append(v.coords, c)
	}
	return nil
}

func (v *coordListValue) Type() string { return "x,y" }

// gridFlags are the layout flags shared by every planning command.
type gridFlags struct {
	layout  string
	agent   coordValue
	tiles   coordListValue
	enemies coordListValue
}

func (f *gridFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.layout, "layout", "l", "", "YAML layout file (default $GRIDCMD_LAYOUT or built-in)")
	cmd.Flags().Var(&f.agent, "agent", "Agent start, overriding the layout")
	cmd.Flags().Var(&f.tiles, "tile", "Add a tile (repeatable)")
	cmd.Flags().Var(&f.enemies, "enemy", "Add an enemy (repeatable)")
}

// deliveryFlags select the nonce source and output sinks.
type deliveryFlags struct {
	seed   uint64
	out    string
	dryRun bool
}

func (f *deliveryFlags) register(cmd *cobra.Command) {
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "Seed the nonce generator for reproducible commands")
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "Also write each command to this file")
	cmd.Flags().BoolVar(&f.dryRun, "dry-run", false, "Plan and encode without delivering")
}
