package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/gridcmd/internal/grid"
)

var showGrid gridFlags

// gridView is the JSON form of a rendered grid.
type gridView struct {
	Width   int        `json:"width"`
	Height  int        `json:"height"`
	Agent   grid.Coord `json:"agent"`
	Tiles   int        `json:"tiles"`
	Enemies int        `json:"enemies"`
	Rows    []string   `json:"rows"`
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Draw the resolved layout",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine(cmd, &showGrid, nil)
		if err != nil {
			return err
		}
		g := eng.Grid()
		rendered := g.Render()

		if jsonOutput {
			return outputJSON(gridView{
				Width:   g.Width(),
				Height:  g.Height(),
				Agent:   g.Agent(),
				Tiles:   g.Count(grid.Tile),
				Enemies: g.Count(grid.Enemy),
				Rows:    strings.Split(strings.TrimSuffix(rendered, "\n"), "\n"),
			})
		}

		PrintSection("Grid")
		PrintGrid(rendered)
		PrintLabelValue("Size", PrintCount(g.Width(), "column", "columns")+" x "+PrintCount(g.Height(), "row", "rows"))
		PrintLabelValue("Agent", g.Agent().String())
		PrintLabelValue("Obstacles", PrintCount(g.Count(grid.Tile), "tile", "tiles")+", "+PrintCount(g.Count(grid.Enemy), "enemy", "enemies"))
		return nil
	},
}

func init() {
	showGrid.register(showCmd)
}
