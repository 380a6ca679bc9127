// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Edge, Graph, GraphOption, sentinel errors and the NewGraph constructor.
// Concurrency:
//   - A single sync.RWMutex guards the node counter and the edge list.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidEdge indicates an add-edge request that cannot be accepted:
	// an empty field, a non-numeric weight, an out-of-range node index or a
	// duplicate (from,to) pair. Every rejection wraps this error.
	ErrInvalidEdge = errors.New("core: invalid edge")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNodeLimit indicates AddNode was called on a graph already at its node cap.
	ErrNodeLimit = errors.New("core: node limit reached")

	// ErrBadNodeCount indicates a negative node count.
	ErrBadNodeCount = errors.New("core: node count must be non-negative")
)

// Edge is a directed, weighted connection From→To between two node indices.
type Edge struct {
	// From is the tail node index.
	From int

	// To is the head node index.
	To int

	// Weight is the signed cost of traversing the edge.
	Weight int64
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithNodes starts the graph with n nodes (indices 0..n-1).
// Negative values are ignored.
func WithNodes(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.nodes = n
		}
	}
}

// WithMaxNodes caps the number of nodes AddNode may create.
// Zero (the default) means unlimited.
func WithMaxNodes(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.maxNodes = n
		}
	}
}

// Graph is a directed graph over nodes identified by 0-based indices.
//
// Edges keep their insertion order; parallel edges between the same ordered
// pair are rejected. Nodes carry no attributes besides their index.
type Graph struct {
	mu sync.RWMutex // guards nodes and edges

	maxNodes int // 0 = unlimited

	nodes int    // node count; valid indices are [0, nodes)
	edges []Edge // insertion order

	// index[from][to] = position in edges
	index map[[2]int]int
}

// NewGraph creates an empty Graph configured by opts.
// If WithNodes exceeds WithMaxNodes, the cap wins.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		edges: make([]Edge, 0),
		index: make(map[[2]int]int),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.maxNodes > 0 && g.nodes > g.maxNodes {
		g.nodes = g.maxNodes
	}

	return g
}
