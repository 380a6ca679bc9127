// SPDX-License-Identifier: MIT
package graphfile_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bellmanford/bellmanford"
	"github.com/katalvlaran/bellmanford/core"
	"github.com/katalvlaran/bellmanford/graphfile"
)

const house = `
name: house
nodes: 4
source: 0
edges:
  - {from: 0, to: 1, weight: 4}
  - {from: 0, to: 2, weight: 5}
  - {from: 1, to: 2, weight: -3}
  - {from: 2, to: 3, weight: 2}
`

func TestParseAndBuild(t *testing.T) {
	def, err := graphfile.Parse([]byte(house))
	require.NoError(t, err)
	require.Equal(t, "house", def.Name)

	g, err := def.Build(0)
	require.NoError(t, err)
	require.Equal(t, 4, g.NodeCount())
	require.Equal(t, []core.Edge{
		{From: 0, To: 1, Weight: 4},
		{From: 0, To: 2, Weight: 5},
		{From: 1, To: 2, Weight: -3},
		{From: 2, To: 3, Weight: 2},
	}, g.Edges())

	st, err := bellmanford.ResetGraph(g, def.Source)
	require.NoError(t, err)
	final := bellmanford.Run(st, 0)
	require.Equal(t, bellmanford.Completed, final.Status())
	require.Equal(t, bellmanford.Finite(3), final.Distance(3))
}

func TestBuildRejectsLikeInteractiveInput(t *testing.T) {
	cases := map[string]string{
		"missing weight": "nodes: 2\nedges:\n  - {from: 0, to: 1}\n",
		"null field":     "nodes: 2\nedges:\n  - {from: 0, to: ~, weight: 1}\n",
		"non-numeric":    "nodes: 2\nedges:\n  - {from: 0, to: 1, weight: heavy}\n",
		"fractional":     "nodes: 2\nedges:\n  - {from: 0, to: 1, weight: 1.5}\n",
		"out of range":   "nodes: 2\nedges:\n  - {from: 0, to: 2, weight: 1}\n",
		"duplicate pair": "nodes: 2\nedges:\n  - {from: 0, to: 1, weight: 1}\n  - {from: 0, to: 1, weight: 2}\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			def, err := graphfile.Parse([]byte(doc))
			require.NoError(t, err)
			_, err = def.Build(0)
			require.ErrorIs(t, err, core.ErrInvalidEdge)
		})
	}
}

func TestParseRejects(t *testing.T) {
	for name, doc := range map[string]string{
		"empty":          "",
		"unknown key":    "nodes: 2\ncolour: red\n",
		"negative nodes": "nodes: -1\n",
		"list field":     "nodes: 2\nedges:\n  - {from: [0], to: 1, weight: 1}\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := graphfile.Parse([]byte(doc))
			require.ErrorIs(t, err, graphfile.ErrInvalid)
		})
	}
}

func TestBuildHonoursNodeLimit(t *testing.T) {
	def, err := graphfile.Parse([]byte(house))
	require.NoError(t, err)
	_, err = def.Build(3)
	require.ErrorIs(t, err, core.ErrNodeLimit)
}

func TestLoadAndRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "house.yaml")
	require.NoError(t, os.WriteFile(path, []byte(house), 0o644))

	def, err := graphfile.Load(path)
	require.NoError(t, err)
	g, err := def.Build(0)
	require.NoError(t, err)

	out, err := graphfile.FromGraph(def.Name, g, def.Source).Marshal()
	require.NoError(t, err)
	require.False(t, strings.Contains(string(out), `"4"`), "integers must not be quoted")

	again, err := graphfile.Parse(out)
	require.NoError(t, err)
	require.Equal(t, def, again)
}

func TestLoadDefaultsNameToPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.yaml")
	require.NoError(t, os.WriteFile(path, []byte("nodes: 1\n"), 0o644))
	def, err := graphfile.Load(path)
	require.NoError(t, err)
	require.Equal(t, path, def.Name)
}
