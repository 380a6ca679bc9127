// Package core provides the thread-safe, index-based directed Graph that the
// relaxation engine runs over.
//
// A Graph G = (V,E) here is deliberately small:
//
//   - Nodes are 0-based integer indices in [0, NodeCount()); they carry no data.
//   - Edges are directed (From, To, Weight) triples with signed int64 weights.
//   - Edge order is insertion order and is preserved by RemoveEdge; the
//     relaxation engine visits edges in exactly this order.
//   - At most one edge per ordered (From, To) pair. Self-loops are allowed.
//
// Configuration Options (GraphOption):
//
//	– WithNodes(n)     start with n nodes.
//	– WithMaxNodes(n)  cap AddNode; a full graph returns ErrNodeLimit.
//
// Core Methods:
//
//	AddNode() (int, error)                       // O(1)
//	AddEdge(from, to int, weight int64) error    // O(1)
//	AddEdgeText(from, to, weight string) error   // form-style parsing, O(1)
//	RemoveEdge(from, to int) error               // O(E)
//	HasEdge(from, to int) bool                   // O(1)
//	Edges() []Edge                               // copy, O(E)
//	Clone() *Graph                               // O(E)
//	ValidateEdges(nodeCount int, edges []Edge)   // O(E), shared with the engine
//
// Errors:
//
//	ErrInvalidEdge   - empty field, non-numeric weight, index out of range, duplicate pair.
//	ErrEdgeNotFound  - RemoveEdge on a missing pair.
//	ErrNodeLimit     - AddNode on a full graph.
//	ErrBadNodeCount  - negative node count handed to ValidateEdges.
//
// A rejected mutation never changes the graph.
//
// Concurrency: one sync.RWMutex guards all state; every method is safe for
// concurrent use.
package core
