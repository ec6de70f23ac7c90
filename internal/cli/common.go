package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/gridcmd/internal/config"
	"github.com/danieljhkim/gridcmd/internal/engine"
	"github.com/danieljhkim/gridcmd/internal/nonce"
	"github.com/danieljhkim/gridcmd/internal/sink"
)

// resolveLayout loads the layout and applies the flag overrides.
func resolveLayout(g *gridFlags) (*config.Layout, error) {
	layout, err := config.Resolve(g.layout)
	if err != nil {
		return nil, err
	}
	if path := config.ResolveLayoutPath(g.layout); path != "" {
		PrintVerbose("layout: %s", path)
	} else {
		PrintVerbose("layout: built-in %dx%d", layout.Width, layout.Height)
	}

	if g.agent.set {
		layout.Start = config.PointOf(g.agent.c)
	}
	for _, c := range g.tiles.coords {
		layout.Tiles = append(layout.Tiles, config.PointOf(c))
	}
	for _, c := range g.enemies.coords {
		layout.Enemies = append(layout.Enemies, config.PointOf(c))
	}
	return layout, nil
}

// newNonceSource returns a seeded source when --seed was given.
func newNonceSource(cmd *cobra.Command, d *deliveryFlags) nonce.Source {
	if f := cmd.Flags().Lookup("seed"); f != nil && f.Changed {
		PrintVerbose("nonce: seeded with %d", d.seed)
		return nonce.NewSeededSource(d.seed)
	}
	return &nonce.RandomSource{}
}

// newSink builds the delivery chain. Commands go to stdout unless JSON output
// is requested, and to --out when set.
func newSink(stdout io.Writer, d *deliveryFlags) sink.Sink {
	var sinks []sink.Sink
	if !jsonOutput {
		sinks = append(sinks, sink.NewWriterSink(stdout))
	}
	if d.out != "" {
		PrintVerbose("sink: %s", d.out)
		sinks = append(sinks, sink.NewFileSink(d.out))
	}
	if len(sinks) == 0 {
		return sink.Discard{}
	}
	return sink.Multi(sinks...)
}

// newEngine creates an engine from the command's flags.
func newEngine(cmd *cobra.Command, g *gridFlags, d *deliveryFlags) (*engine.Engine, error) {
	layout, err := resolveLayout(g)
	if err != nil {
		return nil, err
	}

	var (
		src nonce.Source
		out sink.Sink
	)
	if d != nil {
		src = newNonceSource(cmd, d)
		out = newSink(cmd.OutOrStdout(), d)
	}

	eng, err := engine.New(*layout, src, out)
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}
	return eng, nil
}

// FormatError formats an error for display.
func FormatError(err error) string {
	return errorColor.Sprintf("Error: %v", err)
}

// outputJSON outputs a value as JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
