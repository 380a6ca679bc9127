package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

const houseGraph = `name: house
nodes: 4
source: 0
edges:
  - {from: 0, to: 1, weight: 4}
  - {from: 0, to: 2, weight: 5}
  - {from: 1, to: 2, weight: -3}
  - {from: 2, to: 3, weight: 2}
`

const cycleGraph = `name: cycle
nodes: 3
source: 0
edges:
  - {from: 0, to: 1, weight: 1}
  - {from: 1, to: 2, weight: -1}
  - {from: 2, to: 1, weight: -1}
`

const positiveGraph = `name: positive
nodes: 3
source: 0
edges:
  - {from: 0, to: 1, weight: 7}
  - {from: 0, to: 2, weight: 2}
  - {from: 2, to: 1, weight: 3}
`

// resetFlags restores every flag of every command to its default, since
// cobra keeps flag values between Execute calls.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// execute runs the CLI in-process against a private session directory.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())

	return out.String(), err
}

func setup(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("BELLMANFORD_STORE_BACKEND", "file")
	t.Setenv("BELLMANFORD_STORE_DIR", filepath.Join(dir, "sessions"))
	t.Setenv("BELLMANFORD_DELAY", "0s")
	for name, body := range map[string]string{
		"house.yaml":    houseGraph,
		"cycle.yaml":    cycleGraph,
		"positive.yaml": positiveGraph,
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}

	return dir
}

func TestRunStreamsStepsAndReports(t *testing.T) {
	dir := setup(t)
	out, err := execute(t, "run", filepath.Join(dir, "house.yaml"))
	require.NoError(t, err)
	require.Contains(t, out, "Initializing source node distance to 0")
	require.Contains(t, out, "Relaxing edge 1 → 2 with weight -3")
	require.Contains(t, out, "Algorithm completed!")
	require.Contains(t, out, "Status: completed")
}

func TestRunSeveralFilesConcurrently(t *testing.T) {
	dir := setup(t)
	out, err := execute(t, "run", "--verify", "--format", "markdown",
		filepath.Join(dir, "house.yaml"), filepath.Join(dir, "cycle.yaml"), filepath.Join(dir, "positive.yaml"))
	require.NoError(t, err)

	// Output keeps argument order regardless of completion order.
	h := strings.Index(out, "== house")
	c := strings.Index(out, "== cycle")
	p := strings.Index(out, "== positive")
	require.True(t, h >= 0 && h < c && c < p, out)

	require.Contains(t, out, "WARNING: negative cycle")
	require.Contains(t, out, "verify: reachability ok; dijkstra skipped (negative weights)")
	require.Contains(t, out, "verify: reachability ok; dijkstra skipped (negative cycle)")
	require.Contains(t, out, "verify: reachability ok; dijkstra ok (3 nodes match)")
}

func TestRunRejectsBadInput(t *testing.T) {
	dir := setup(t)
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("nodes: 2\nedges:\n  - {from: 0, to: 5, weight: 1}\n"), 0o644))

	_, err := execute(t, "run", bad)
	require.ErrorContains(t, err, "edge 0")

	_, err = execute(t, "run", "--format", "csv", filepath.Join(dir, "house.yaml"))
	require.ErrorContains(t, err, "unknown format")
}

func TestSessionLifecycle(t *testing.T) {
	dir := setup(t)

	out, err := execute(t, "new", "--name", "demo", filepath.Join(dir, "house.yaml"))
	require.NoError(t, err)
	id := strings.TrimSpace(out)
	require.Len(t, id, 36)

	out, err = execute(t, "step", id, "-n", "2")
	require.NoError(t, err)
	require.Equal(t, "Relaxing edge 0 → 1 with weight 4\nRelaxing edge 0 → 2 with weight 5\n", out)

	out, err = execute(t, "show", id, "--query", ".distances")
	require.NoError(t, err)
	var dist []any
	require.NoError(t, json.Unmarshal([]byte(out), &dist))
	require.Equal(t, []any{float64(0), float64(4), float64(5), "inf"}, dist)

	out, err = execute(t, "step", id, "-n", "0")
	require.NoError(t, err)
	require.Contains(t, out, "status: completed")

	out, err = execute(t, "report", id, "-f", "json")
	require.NoError(t, err)
	var rep map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	require.Equal(t, []any{float64(0), float64(4), float64(1), float64(3)}, rep["distances"])

	out, err = execute(t, "sessions")
	require.NoError(t, err)
	require.Contains(t, out, "demo")
	require.Contains(t, out, "completed")

	out, err = execute(t, "sessions", "delete", id)
	require.NoError(t, err)
	require.Equal(t, "deleted "+id+"\n", out)

	out, err = execute(t, "sessions")
	require.NoError(t, err)
	require.Equal(t, "No saved sessions.\n", out)
}

func TestRunSave(t *testing.T) {
	dir := setup(t)
	out, err := execute(t, "run", "-q", "--save", filepath.Join(dir, "positive.yaml"))
	require.NoError(t, err)
	require.Contains(t, out, "saved session ")

	out, err = execute(t, "sessions")
	require.NoError(t, err)
	require.Contains(t, out, "positive")
}

func TestCheck(t *testing.T) {
	setup(t)
	out, err := execute(t, "check", "--graphs", "40", "--nodes", "6", "--workers", "3")
	require.NoError(t, err)
	require.Equal(t, "40/40 graphs match dijkstra\n", out)
}

func TestShowUnknownSession(t *testing.T) {
	setup(t)
	_, err := execute(t, "show", "00000000-0000-0000-0000-000000000000")
	require.ErrorContains(t, err, "session not found")
}

func TestGenerateThenRun(t *testing.T) {
	dir := setup(t)
	path := filepath.Join(dir, "gen.yaml")

	out, err := execute(t, "generate", "-t", "cycle", "-n", "3", "--min-weight", "-1", "--max-weight", "-1", "-o", path)
	require.NoError(t, err)
	require.Equal(t, "wrote "+path+" (3 nodes, 3 edges)\n", out)

	out, err = execute(t, "run", "-q", path)
	require.NoError(t, err)
	require.Contains(t, out, "WARNING: negative cycle")
	require.Contains(t, out, "Unbounded nodes: [0 1 2]")

	out, err = execute(t, "generate", "-t", "path", "-n", "2", "--min-weight", "5", "--max-weight", "5")
	require.NoError(t, err)
	require.Contains(t, out, "name: path-2-1")
	require.Contains(t, out, "nodes: 2")
	require.Contains(t, out, "weight: 5")

	out, err = execute(t, "generate", "-t", "path", "-n", "2", "--weights", "normal", "--mean", "-4", "--stddev", "0")
	require.NoError(t, err)
	require.Contains(t, out, "weight: -4")

	_, err = execute(t, "generate", "--weights", "pareto")
	require.ErrorContains(t, err, "unknown --weights")
	_, err = execute(t, "generate", "--weights", "normal", "--stddev", "-1")
	require.ErrorContains(t, err, "--stddev -1 is negative")
	_, err = execute(t, "generate", "-t", "hexagram")
	require.ErrorContains(t, err, "unknown topology")
	_, err = execute(t, "generate", "--min-weight", "3", "--max-weight", "1")
	require.ErrorContains(t, err, "below --min-weight")
}
