// SPDX-License-Identifier: MIT

package bellmanford

import (
	"github.com/katalvlaran/bellmanford/core"
	"github.com/katalvlaran/bellmanford/dfs"
)

// ImprovingEdges returns the indices of edges that would still lower a
// distance under s's current distances, in edge order.
// Complexity: O(E).
func ImprovingEdges(s State) []int {
	var out []int
	for i, e := range s.edges {
		from := s.dist[e.From]
		if from.Reachable() && from.Plus(e.Weight).Less(s.dist[e.To]) {
			out = append(out, i)
		}
	}

	return out
}

// AffectedNodes lists, in ascending order, the nodes whose shortest distance
// is unbounded below because a negative cycle reachable from the source leads
// to them. It is nil unless s is NegativeCycleDetected.
//
// After the relaxation passes every edge that still improves lies downstream
// of such a cycle, so the answer is the set reachable from their heads.
// Complexity: O(V + E).
func AffectedNodes(s State) []int {
	if s.status != NegativeCycleDetected {
		return nil
	}
	g := core.NewGraph(core.WithNodes(s.nodes))
	for _, e := range s.edges {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil
		}
	}
	var seeds []int
	for _, i := range ImprovingEdges(s) {
		seeds = append(seeds, s.edges[i].To)
	}
	reach, err := dfs.Reach(g, seeds...)
	if err != nil {
		return nil
	}

	out := make([]int, 0, len(reach))
	for v, ok := range reach {
		if ok {
			out = append(out, v)
		}
	}

	return out
}
