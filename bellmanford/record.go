// SPDX-License-Identifier: MIT

package bellmanford

import (
	"fmt"
	"math"

	"github.com/katalvlaran/bellmanford/core"
)

// Record is the transportable form of a State, laid out for the save/load file:
//
//	{ "nodes": 3, "edges": [[0,1,4], ...], "distances": [0, 4, "inf"],
//	  "currentStep": 1, "iteration": 0, "sourceNode": 0,
//	  "distanceHistory": [[0,"inf","inf"], ...], "currentAction": "...",
//	  "lastEdge": 1, "status": "running" }
//
// Unreachable distances are the string "inf", never a magic number.
type Record struct {
	Nodes           int          `json:"nodes"`
	Edges           [][3]int64   `json:"edges"`
	Distances       []Distance   `json:"distances"`
	CurrentStep     int          `json:"currentStep"`
	Iteration       int          `json:"iteration"`
	SourceNode      int          `json:"sourceNode"`
	DistanceHistory [][]Distance `json:"distanceHistory"`
	CurrentAction   string       `json:"currentAction"`
	LastEdge        *int         `json:"lastEdge"`
	Status          string       `json:"status"`
}

// Serialize captures s as an independent Record.
// Complexity: O(V·H + E) where H is the history length.
func Serialize(s State) Record {
	r := Record{
		Nodes:           s.nodes,
		Edges:           make([][3]int64, len(s.edges)),
		Distances:       cloneDistances(s.dist),
		CurrentStep:     s.cursor,
		Iteration:       s.iteration,
		SourceNode:      s.source,
		DistanceHistory: s.History(),
		CurrentAction:   s.action,
		Status:          s.status.String(),
	}
	for i, e := range s.edges {
		r.Edges[i] = [3]int64{int64(e.From), int64(e.To), e.Weight}
	}
	if idx, ok := s.LastEdge(); ok {
		r.LastEdge = &idx
	}

	return r
}

// Deserialize rebuilds a State from r, checking that r describes a state the
// engine could actually have produced. Any violation returns an error wrapping
// ErrMalformedState and no State.
//
// Checks, in order: status, node count, source, edges and their weight range,
// distance lengths and magnitudes, history lengths, history shape (initial vector first, one strictly improving entry
// per snapshot, last snapshot equals distances), cursor, iteration, lastEdge.
//
// Complexity: O(V·H + E).
func Deserialize(r Record) (State, error) {
	status, err := ParseStatus(r.Status)
	if err != nil {
		return State{}, err
	}
	if r.Nodes < 0 {
		return State{}, malformed("nodes = %d", r.Nodes)
	}
	if r.Nodes > 0 && (r.SourceNode < 0 || r.SourceNode >= r.Nodes) {
		return State{}, malformed("sourceNode %d out of range [0,%d)", r.SourceNode, r.Nodes)
	}
	if r.Nodes == 0 && r.SourceNode != 0 {
		return State{}, malformed("sourceNode %d on an empty graph", r.SourceNode)
	}

	edges, err := recordEdges(r.Nodes, r.Edges)
	if err != nil {
		return State{}, err
	}

	if len(r.Distances) != r.Nodes {
		return State{}, malformed("distances has %d entries, want %d", len(r.Distances), r.Nodes)
	}
	bound, _ := walkBound(r.Nodes, edges)
	for v, d := range r.Distances {
		if x, ok := d.Value(); ok && absU(x) > bound {
			return State{}, malformed("distances[%d] = %d exceeds the walk bound %d", v, x, bound)
		}
	}
	if err := checkHistory(r); err != nil {
		return State{}, err
	}

	if r.CurrentStep < -1 || r.CurrentStep >= len(edges) {
		return State{}, malformed("currentStep %d out of range [-1,%d)", r.CurrentStep, len(edges))
	}
	if r.Iteration < 0 || r.Iteration > r.Nodes {
		return State{}, malformed("iteration %d out of range [0,%d]", r.Iteration, r.Nodes)
	}
	if r.CurrentStep == -1 && r.Iteration != 0 {
		return State{}, malformed("iteration %d before the first step", r.Iteration)
	}
	lastEdge := -1
	if r.LastEdge != nil {
		lastEdge = *r.LastEdge
		if lastEdge != r.CurrentStep || lastEdge < 0 {
			return State{}, malformed("lastEdge %d does not match currentStep %d", lastEdge, r.CurrentStep)
		}
	}
	if status == Running && (r.Nodes <= 1 || r.Iteration >= r.Nodes) {
		return State{}, malformed("status running with %d nodes at iteration %d", r.Nodes, r.Iteration)
	}

	s := State{
		nodes:     r.Nodes,
		edges:     edges,
		source:    r.SourceNode,
		dist:      cloneDistances(r.Distances),
		history:   make([][]Distance, len(r.DistanceHistory)),
		cursor:    r.CurrentStep,
		iteration: r.Iteration,
		lastEdge:  lastEdge,
		status:    status,
		action:    r.CurrentAction,
	}
	for i, h := range r.DistanceHistory {
		s.history[i] = cloneDistances(h)
	}

	return s, nil
}

func recordEdges(nodes int, raw [][3]int64) ([]Edge, error) {
	edges := make([]Edge, len(raw))
	for i, t := range raw {
		if t[0] < 0 || t[0] > math.MaxInt32 || t[1] < 0 || t[1] > math.MaxInt32 {
			return nil, malformed("edge #%d: node index out of range", i)
		}
		edges[i] = Edge{From: int(t[0]), To: int(t[1]), Weight: t[2]}
	}
	if err := core.ValidateEdges(nodes, edges); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedState, err)
	}
	if err := checkWeightRange(nodes, edges); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedState, err)
	}

	return edges, nil
}

func checkHistory(r Record) error {
	h := r.DistanceHistory
	if len(h) == 0 {
		return malformed("distanceHistory is empty")
	}
	for i, snap := range h {
		if len(snap) != r.Nodes {
			return malformed("distanceHistory[%d] has %d entries, want %d", i, len(snap), r.Nodes)
		}
	}
	if !equalDistances(h[0], initialDistances(r.Nodes, r.SourceNode)) {
		return malformed("distanceHistory[0] is not the initial vector")
	}
	for i := 1; i < len(h); i++ {
		changed := 0
		for v := range h[i] {
			switch {
			case h[i][v] == h[i-1][v]:
			case h[i][v].Less(h[i-1][v]):
				changed++
			default:
				return malformed("distanceHistory[%d][%d] increased", i, v)
			}
		}
		if changed != 1 {
			return malformed("distanceHistory[%d] changes %d entries, want 1", i, changed)
		}
	}
	if !equalDistances(h[len(h)-1], r.Distances) {
		return malformed("distances differ from the last history entry")
	}

	return nil
}

func equalDistances(a, b []Distance) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrMalformedState}, args...)...)
}
