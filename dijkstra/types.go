// Package dijkstra defines the sentinel errors and the unreachable marker
// for the Dijkstra reference solver.
package dijkstra

import (
	"errors"
	"math"
)

// Unreachable marks a node with no path from the source.
const Unreachable int64 = math.MaxInt64

// Sentinel errors returned by Dijkstra.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source index is outside the graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)
