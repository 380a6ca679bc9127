// SPDX-License-Identifier: MIT

package bellmanford

import (
	"fmt"

	"github.com/katalvlaran/bellmanford/core"
)

// State is one snapshot of a stepwise Bellman–Ford run.
//
// State is a value: Step never modifies its argument and two States never
// share a slice that either could write to. Accessors return copies.
type State struct {
	nodes   int
	edges   []Edge
	source  int
	dist    []Distance
	history [][]Distance

	cursor    int // index of the last examined edge; -1 before the first step
	iteration int // completed full passes over the edge list
	lastEdge  int // edge examined by the latest step; -1 for none
	status    Status
	action    string
}

// Reset builds a fresh State for the graph (nodeCount, edges) rooted at source.
//
// distances[source] = 0 and every other node is Unreachable; history holds
// that single vector. Graphs with at most one node have nothing to relax and
// start Completed.
//
// Errors:
//   - core.ErrBadNodeCount / core.ErrInvalidEdge for a bad graph.
//   - ErrWeightRange (wrapping core.ErrInvalidEdge) when nodeCount·|E|·max|w|
//     overflows int64, so every distance the run can form stays exact.
//   - ErrSourceOutOfRange when nodeCount > 0 and source ∉ [0, nodeCount).
//
// Complexity: O(V + E).
func Reset(nodeCount int, edges []Edge, source int) (State, error) {
	if err := core.ValidateEdges(nodeCount, edges); err != nil {
		return State{}, err
	}
	if err := checkWeightRange(nodeCount, edges); err != nil {
		return State{}, err
	}
	if nodeCount > 0 && (source < 0 || source >= nodeCount) {
		return State{}, fmt.Errorf("%w: %d (have %d nodes)", ErrSourceOutOfRange, source, nodeCount)
	}
	if nodeCount == 0 {
		source = 0
	}

	s := State{
		nodes:     nodeCount,
		edges:     make([]Edge, len(edges)),
		source:    source,
		dist:      initialDistances(nodeCount, source),
		cursor:    -1,
		iteration: 0,
		lastEdge:  -1,
		status:    Running,
		action:    actionInit,
	}
	copy(s.edges, edges)
	s.history = [][]Distance{cloneDistances(s.dist)}
	if nodeCount <= 1 {
		s.status = Completed
		s.action = actionCompleted
	}

	return s, nil
}

// ResetGraph is Reset over a snapshot of g's nodes and edges.
func ResetGraph(g *core.Graph, source int) (State, error) {
	return Reset(g.NodeCount(), g.Edges(), source)
}

// Step advances the run by exactly one edge examination and returns the new State.
//
// Passes 0..N-2 relax edges in insertion order, cyclically. Pass N-1 is the
// verification pass: an edge that would still improve a distance there is
// proof of a negative cycle reachable from the source. Wrapping into pass N
// completes the run. Terminal states are returned unchanged.
//
// Complexity: O(V) when a distance changes (snapshot copy), O(1) otherwise.
func Step(s State) State {
	if s.status.Terminal() {
		return s
	}
	if len(s.edges) == 0 {
		s.status = Completed
		s.action = actionNoEdges

		return s
	}

	// 1) Next edge; wrapping past the last edge closes a full pass.
	idx := (s.cursor + 1) % len(s.edges)
	iter := s.iteration
	if s.cursor != -1 && idx == 0 {
		iter++
	}

	// 2) All relaxation passes and the verification pass are done.
	if iter >= s.nodes {
		s.iteration = iter
		s.lastEdge = -1
		s.status = Completed
		s.action = actionCompleted

		return s
	}

	e := s.edges[idx]
	candidate := s.dist[e.From].Plus(e.Weight)
	improves := s.dist[e.From].Reachable() && candidate.Less(s.dist[e.To])

	s.cursor = idx
	s.iteration = iter
	s.lastEdge = idx

	// 3) Negative-cycle guard on the verification pass.
	if improves && iter == s.nodes-1 {
		s.status = NegativeCycleDetected
		s.action = actionCycle(e)

		return s
	}

	// 4) Relax.
	if improves {
		s.dist = cloneDistances(s.dist)
		s.dist[e.To] = candidate
		s.history = append(s.history[:len(s.history):len(s.history)], cloneDistances(s.dist))
		s.action = actionRelax(e)

		return s
	}
	s.action = actionCheck(e)

	return s
}

// Run steps s until it is terminal or maxSteps steps were taken
// (maxSteps <= 0 means no limit). A run always terminates within
// N·|E| + 1 steps.
func Run(s State, maxSteps int) State {
	for n := 0; !s.status.Terminal() && (maxSteps <= 0 || n < maxSteps); n++ {
		s = Step(s)
	}

	return s
}

// NodeCount returns the number of nodes.
func (s State) NodeCount() int { return s.nodes }

// Edges returns a copy of the edge list in visiting order.
func (s State) Edges() []Edge {
	out := make([]Edge, len(s.edges))
	copy(out, s.edges)

	return out
}

// Source returns the source node index.
func (s State) Source() int { return s.source }

// Distances returns a copy of the current distance vector.
func (s State) Distances() []Distance { return cloneDistances(s.dist) }

// Distance returns the current distance of node v (Unreachable if v is out of range).
func (s State) Distance(v int) Distance {
	if v < 0 || v >= len(s.dist) {
		return Unreachable
	}

	return s.dist[v]
}

// History returns a copy of every state-changing snapshot, oldest first.
func (s State) History() [][]Distance {
	out := make([][]Distance, len(s.history))
	for i, h := range s.history {
		out[i] = cloneDistances(h)
	}

	return out
}

// HistoryLen returns the number of snapshots without copying them.
func (s State) HistoryLen() int { return len(s.history) }

// Cursor returns the index of the last examined edge, or -1 before the first step.
func (s State) Cursor() int { return s.cursor }

// Iteration returns the number of completed full passes.
func (s State) Iteration() int { return s.iteration }

// LastEdge returns the index of the edge examined by the latest step.
func (s State) LastEdge() (int, bool) { return s.lastEdge, s.lastEdge >= 0 }

// Status returns the lifecycle position.
func (s State) Status() Status { return s.status }

// Action describes the latest transition in human-readable form.
func (s State) Action() string { return s.action }

// ActiveNodes returns the endpoints of the last examined edge, or the source
// before the first step. Completed states report none.
func (s State) ActiveNodes() []int {
	switch {
	case s.status == Completed || s.nodes == 0:
		return nil
	case s.lastEdge >= 0:
		e := s.edges[s.lastEdge]
		if e.From == e.To {
			return []int{e.From}
		}

		return []int{e.From, e.To}
	default:
		return []int{s.source}
	}
}

func initialDistances(n, source int) []Distance {
	d := make([]Distance, n)
	if n > 0 {
		d[source] = Finite(0)
	}

	return d
}

func cloneDistances(d []Distance) []Distance {
	out := make([]Distance, len(d))
	copy(out, d)

	return out
}
