package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/danieljhkim/gridcmd/internal/config"
	"github.com/danieljhkim/gridcmd/internal/engine"
	"github.com/danieljhkim/gridcmd/internal/nonce"
	"github.com/danieljhkim/gridcmd/internal/sink"
)

// testSession wires an engine to a recorder and a file sink in a temp dir.
type testSession struct {
	eng      *engine.Engine
	recorder *sink.Recorder
	outPath  string
}

// writeLayout writes YAML layout data into dir and returns the path.
func writeLayout(t *testing.T, dir, data string) string {
	t.Helper()
	path := filepath.Join(dir, "layout.yaml")
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("failed to write layout: %v", err)
	}
	return path
}

// setupSession loads the layout at path and builds an engine that delivers
// to both a Recorder and a FileSink. Nonces are drawn from values in order.
func setupSession(t *testing.T, layoutPath string, values ...uint32) *testSession {
	t.Helper()

	layout, err := config.Resolve(layoutPath)
	if err != nil {
		t.Fatalf("failed to resolve layout: %v", err)
	}

	rec := sink.NewRecorder()
	outPath := filepath.Join(t.TempDir(), "out", "command.txt")
	src := nonce.NewSequenceSource(values...)

	eng, err := engine.New(*layout, src, sink.Multi(rec, sink.NewFileSink(outPath)))
	if err != nil {
		t.Fatalf("failed to create engine: %v", err)
	}

	return &testSession{eng: eng, recorder: rec, outPath: outPath}
}

// lastFileCommand reads the command file written by the file sink.
func (s *testSession) lastFileCommand(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(s.outPath)
	if err != nil {
		t.Fatalf("failed to read command file: %v", err)
	}
	return string(data)
}
