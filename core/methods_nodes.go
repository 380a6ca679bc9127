// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node lifecycle & cloning.

package core

// AddNode appends a node and returns its index.
// Returns ErrNodeLimit when the graph was built WithMaxNodes and is full.
// Complexity: O(1).
func (g *Graph) AddNode() (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.maxNodes > 0 && g.nodes >= g.maxNodes {
		return -1, ErrNodeLimit
	}
	g.nodes++

	return g.nodes - 1, nil
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nodes
}

// MaxNodes returns the node cap, or 0 when unlimited.
func (g *Graph) MaxNodes() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.maxNodes
}

// Clone returns an independent deep copy with the same cap, nodes and edges.
// Complexity: O(E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph(WithMaxNodes(g.maxNodes))
	clone.nodes = g.nodes
	clone.edges = make([]Edge, len(g.edges))
	copy(clone.edges, g.edges)
	for k, v := range g.index {
		clone.index[k] = v
	}

	return clone
}
