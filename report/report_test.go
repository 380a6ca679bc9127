// SPDX-License-Identifier: MIT
package report_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bellmanford/bellmanford"
	"github.com/katalvlaran/bellmanford/report"
)

func finished(t *testing.T, n int, edges []bellmanford.Edge) bellmanford.State {
	t.Helper()
	st, err := bellmanford.Reset(n, edges, 0)
	require.NoError(t, err)

	return bellmanford.Run(st, 0)
}

func TestFromStateIsDetached(t *testing.T) {
	st, err := bellmanford.Reset(3, []bellmanford.Edge{{From: 0, To: 1, Weight: 2}, {From: 1, To: 2, Weight: 2}}, 0)
	require.NoError(t, err)

	r := report.FromState("partial", st)
	require.Equal(t, "running", r.Status)
	require.Len(t, r.History, 1)

	r.Distances[0] = bellmanford.Finite(99)
	require.Equal(t, bellmanford.Finite(0), st.Distance(0))
}

func TestWriteTable(t *testing.T) {
	st := finished(t, 3, []bellmanford.Edge{{From: 0, To: 1, Weight: 2}})
	var buf bytes.Buffer
	require.NoError(t, report.WriteTable(&buf, report.FromState("", st)))

	out := buf.String()
	require.Contains(t, out, "Status: completed")
	require.Contains(t, out, "Distances")
	require.Contains(t, out, "∞") // node 2 is unreachable
	require.NotContains(t, out, "WARNING")
}

func TestWriteMarkdownFlagsNegativeCycle(t *testing.T) {
	st := finished(t, 3, []bellmanford.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: -1},
		{From: 2, To: 1, Weight: -1},
	})
	require.Equal(t, bellmanford.NegativeCycleDetected, st.Status())

	var buf bytes.Buffer
	require.NoError(t, report.WriteMarkdown(&buf, report.FromState("cycle", st)))
	out := buf.String()
	require.True(t, strings.HasPrefix(out, "# Bellman-Ford report: cycle"))
	require.Contains(t, out, "WARNING: negative cycle")
	require.Contains(t, out, "Unbounded nodes: [1 2]")
	require.Contains(t, out, "| Node 2 |")
}

func TestWriteJSON(t *testing.T) {
	st := finished(t, 2, nil)
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, report.FromState("", st), report.FormatJSON))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.Equal(t, []any{float64(0), "inf"}, doc["distances"])
	require.Equal(t, false, doc["negativeCycle"])
}

func TestWriteUnknownFormat(t *testing.T) {
	err := report.Write(&bytes.Buffer{}, report.Report{}, "yaml")
	require.ErrorIs(t, err, report.ErrUnknownFormat)
}
