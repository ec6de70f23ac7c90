package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/gridcmd/internal/script"
)

var (
	runGrid     gridFlags
	runDelivery deliveryFlags
)

var runCmd = &cobra.Command{
	Use:   "run <script>",
	Short: "Replay an editing and planning script",
	Long: `Run a gridcmd script against the layout.

Scripts toggle tiles and enemies, move the agent and request routes:

  tile 3,0; tile 3,1
  agent 1,1
  goto 6,4
  show

Every goto that finds a route emits its command, exactly as plan does.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		src, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read script: %w", err)
		}
		prog, err := script.Parse(path, string(src))
		if err != nil {
			return err
		}
		PrintVerbose("script: %s", PrintCount(len(prog.Statements), "statement", "statements"))

		eng, err := newEngine(cmd, &runGrid, &runDelivery)
		if err != nil {
			return err
		}

		runner := script.NewRunner(eng)
		runner.DryRun = runDelivery.dryRun
		if !jsonOutput {
			runner.OnOutcome = printOutcome
		}

		if err := prog.Exec(context.Background(), runner); err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(runner.Outcomes())
		}
		return nil
	},
}

func printOutcome(o script.Outcome) {
	switch {
	case o.Plan != nil && !o.Plan.Found:
		PrintWarning(fmt.Sprintf("line %d: no path from %s to %s", o.Line, o.Plan.Start, o.Plan.Target))
	case o.Plan != nil:
		PrintVerbose("line %d: %s (%s)", o.Line, formatRuns(o.Plan.Runs), PrintCount(o.Plan.Steps(), "step", "steps"))
		if !o.Plan.Delivered {
			PrintLabelValue(fmt.Sprintf("line %d", o.Line), o.Plan.Command)
		}
	default:
		PrintGrid(o.Render)
	}
}

func init() {
	runGrid.register(runCmd)
	runDelivery.register(runCmd)
}
