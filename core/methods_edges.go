// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/AddEdgeText/RemoveEdge/HasEdge/Edges/EdgeCount,
//       plus the shared ValidateEdges check.
// Determinism:
//   - Edges() returns edges in insertion order.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import (
	"fmt"
	"strconv"
	"strings"
)

// AddEdge appends the directed edge from→to with the given weight.
//
// Steps:
//  1. Validate both indices against the current node count.
//  2. Reject a second edge for an existing (from,to) pair.
//  3. Append and index the edge.
//
// A rejected request leaves the graph untouched.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, weight int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := checkEndpoints(g.nodes, from, to); err != nil {
		return err
	}
	key := [2]int{from, to}
	if _, dup := g.index[key]; dup {
		return fmt.Errorf("%w: duplicate edge %d→%d", ErrInvalidEdge, from, to)
	}
	g.index[key] = len(g.edges)
	g.edges = append(g.edges, Edge{From: from, To: to, Weight: weight})

	return nil
}

// AddEdgeText parses form-style input and forwards to AddEdge.
//
// All three fields are required; weight must be a base-10 integer.
// Surrounding whitespace is ignored.
func (g *Graph) AddEdgeText(from, to, weight string) error {
	from, to, weight = strings.TrimSpace(from), strings.TrimSpace(to), strings.TrimSpace(weight)
	if from == "" || to == "" || weight == "" {
		return fmt.Errorf("%w: please fill all edge fields", ErrInvalidEdge)
	}
	f, err := strconv.Atoi(from)
	if err != nil {
		return fmt.Errorf("%w: node index %q is not a number", ErrInvalidEdge, from)
	}
	t, err := strconv.Atoi(to)
	if err != nil {
		return fmt.Errorf("%w: node index %q is not a number", ErrInvalidEdge, to)
	}
	w, err := strconv.ParseInt(weight, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: weight %q is not a number", ErrInvalidEdge, weight)
	}

	return g.AddEdge(f, t, w)
}

// RemoveEdge deletes the edge from→to, preserving the order of the rest.
// Complexity: O(E) to shift and reindex.
func (g *Graph) RemoveEdge(from, to int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	pos, ok := g.index[[2]int{from, to}]
	if !ok {
		return fmt.Errorf("%w: %d→%d", ErrEdgeNotFound, from, to)
	}
	g.edges = append(g.edges[:pos], g.edges[pos+1:]...)
	delete(g.index, [2]int{from, to})
	for i := pos; i < len(g.edges); i++ {
		g.index[[2]int{g.edges[i].From, g.edges[i].To}] = i
	}

	return nil
}

// HasEdge reports whether an edge from→to exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.index[[2]int{from, to}]

	return ok
}

// Edges returns a copy of the edge list in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// ValidateEdges checks an externally supplied edge list against nodeCount:
// every index must lie in [0, nodeCount) and no (from,to) pair may repeat.
// The first violation is returned wrapped in ErrInvalidEdge.
// Complexity: O(E).
func ValidateEdges(nodeCount int, edges []Edge) error {
	if nodeCount < 0 {
		return fmt.Errorf("%w: %d", ErrBadNodeCount, nodeCount)
	}
	seen := make(map[[2]int]struct{}, len(edges))
	for i, e := range edges {
		if err := checkEndpoints(nodeCount, e.From, e.To); err != nil {
			return fmt.Errorf("edge #%d: %w", i, err)
		}
		key := [2]int{e.From, e.To}
		if _, dup := seen[key]; dup {
			return fmt.Errorf("edge #%d: %w: duplicate edge %d→%d", i, ErrInvalidEdge, e.From, e.To)
		}
		seen[key] = struct{}{}
	}

	return nil
}

// checkEndpoints rejects indices outside [0, n).
func checkEndpoints(n, from, to int) error {
	if from < 0 || from >= n || to < 0 || to >= n {
		return fmt.Errorf("%w: invalid node indices %d→%d (have %d nodes)", ErrInvalidEdge, from, to, n)
	}

	return nil
}
