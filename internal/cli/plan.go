package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/gridcmd/internal/encoder"
	"github.com/danieljhkim/gridcmd/internal/engine"
)

var (
	planGrid     gridFlags
	planDelivery deliveryFlags
	planTarget   coordValue
	planShow     bool
)

var planCmd = &cobra.Command{
	Use:   "plan --target x,y",
	Short: "Plan a route to a target and emit its command",
	Long: `Plan the shortest route from the agent to --target and emit the encoded command.

The command is written to stdout and, with --out, to a file. A target that cannot
be reached is reported as a warning and is not an error.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !planTarget.set {
			return errors.New("--target is required")
		}

		eng, err := newEngine(cmd, &planGrid, &planDelivery)
		if err != nil {
			return err
		}

		result, err := eng.Plan(context.Background(), &engine.PlanRequest{
			Target: planTarget.c,
			DryRun: planDelivery.dryRun,
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		if !result.Found {
			PrintWarning(fmt.Sprintf("No path from %s to %s", result.Start, result.Target))
			return nil
		}
		PrintVerbose("path: %s (%s)", formatRuns(result.Runs), PrintCount(result.Steps(), "step", "steps"))

		if planDelivery.dryRun {
			PrintSection("Dry Run")
			PrintLabelValue("Command", result.Command)
			PrintLabelValue("Steps", fmt.Sprint(result.Steps()))
		}
		if planShow {
			PrintGrid(eng.Grid().RenderPath(result.Path))
		}
		return nil
	},
}

// formatRuns describes runs as "right 2, down 2".
func formatRuns(runs []encoder.Run) string {
	parts := make([]string, len(runs))
	for i, r := range runs {
		parts[i] = fmt.Sprintf("%s %d", r.Dir, r.Count)
	}
	return strings.Join(parts, ", ")
}

func init() {
	planGrid.register(planCmd)
	planDelivery.register(planCmd)
	planCmd.Flags().VarP(&planTarget, "target", "t", "Destination cell (required)")
	planCmd.Flags().BoolVar(&planShow, "show", false, "Draw the grid with the planned route")
}
