// SPDX-License-Identifier: MIT
package snapshot_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bellmanford/bellmanford"
	"github.com/katalvlaran/bellmanford/snapshot"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	s, err := bellmanford.Reset(3, []bellmanford.Edge{{From: 0, To: 1, Weight: 4}, {From: 0, To: 2, Weight: 5}, {From: 1, To: 2, Weight: -3}}, 0)
	require.NoError(t, err)

	for !s.Status().Terminal() {
		data, err := snapshot.Encode(s)
		require.NoError(t, err)
		got, err := snapshot.Decode(data)
		require.NoError(t, err)
		require.Empty(t, cmp.Diff(s, got, cmp.AllowUnexported(bellmanford.State{}, bellmanford.Distance{})))
		s = bellmanford.Step(s)
	}
}

func TestEncodeUsesTaggedUnreachable(t *testing.T) {
	s, err := bellmanford.Reset(2, nil, 0)
	require.NoError(t, err)
	data, err := snapshot.Encode(s)
	require.NoError(t, err)
	require.Contains(t, string(data), `"inf"`)
	require.NotContains(t, string(data), "9007199254740991")
}

const validDoc = `{
  "nodes": 2,
  "edges": [[0,1,1],[1,0,-3]],
  "distances": [0,"inf"],
  "currentStep": -1,
  "iteration": 0,
  "sourceNode": 0,
  "distanceHistory": [[0,"inf"]],
  "currentAction": "",
  "lastEdge": null,
  "status": "running"
}`

func TestDecodeValid(t *testing.T) {
	s, err := snapshot.Decode([]byte(validDoc))
	require.NoError(t, err)
	require.Equal(t, 2, s.NodeCount())
	require.Equal(t, bellmanford.Running, s.Status())

	s = bellmanford.Run(s, 0)
	require.Equal(t, bellmanford.NegativeCycleDetected, s.Status())
}

func TestDecodeRejects(t *testing.T) {
	cases := map[string]string{
		"not json":             `{"nodes": 2,`,
		"missing field":        strings.Replace(validDoc, `"status": "running"`, `"currentAction2": ""`, 1),
		"unknown status":       strings.Replace(validDoc, `"running"`, `"paused"`, 1),
		"short edge tuple":     strings.Replace(validDoc, `[0,1,1]`, `[0,1]`, 1),
		"bad sentinel":         strings.Replace(validDoc, `"distances": [0,"inf"]`, `"distances": [0,"infinity"]`, 1),
		"fraction":             strings.Replace(validDoc, `[[0,"inf"]]`, `[[0.5,"inf"]]`, 1),
		"length mismatch":      strings.Replace(validDoc, `"distances": [0,"inf"]`, `"distances": [0]`, 1),
		"source out of range":  strings.Replace(validDoc, `"sourceNode": 0`, `"sourceNode": 2`, 1),
		"edge out of range":    strings.Replace(validDoc, `[1,0,-3]`, `[1,4,-3]`, 1),
		"empty history":        strings.Replace(validDoc, `[[0,"inf"]]`, `[]`, 1),
		"unexpected property":  strings.Replace(validDoc, `"nodes": 2,`, `"nodes": 2, "extra": true,`, 1),
		"negative cursor (-2)": strings.Replace(validDoc, `"currentStep": -1`, `"currentStep": -2`, 1),
	}
	for name, doc := range cases {
		_, err := snapshot.Decode([]byte(doc))
		require.ErrorIs(t, err, bellmanford.ErrMalformedState, name)
	}
}
