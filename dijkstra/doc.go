// Package dijkstra is a one-shot Dijkstra solver over core.Graph, kept as a
// reference oracle for the stepwise Bellman–Ford engine.
//
// Overview:
//
//   - Computes single-source shortest paths in O((V + E) log V) using a
//     min-heap with lazy decrease-key.
//   - Requires non-negative weights; a fast O(E) pre-scan rejects negative
//     edges with ErrNegativeWeight before any work is done.
//   - Unreachable nodes report the Unreachable constant (math.MaxInt64).
//
// When to use:
//
//   - Cross-checking Bellman–Ford results on graphs whose weights are all
//     non-negative (the two must agree exactly).
//   - The CLI --verify flag runs it after a completed run.
//
// Errors (sentinel):
//
//   - ErrNilGraph:       nil graph.
//   - ErrVertexNotFound: source index outside [0, NodeCount()).
//   - ErrNegativeWeight: any edge with weight < 0.
//
// Thread safety: Dijkstra reads a snapshot of the graph's edges and keeps all
// working state local, so concurrent calls on the same graph are safe.
package dijkstra
