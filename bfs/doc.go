// Package bfs provides breadth-first search over a core.Graph,
// returning fewest-edge distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing edge count from a start node.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: node → edges from start (Unvisited if never reached)
//   - Parent: node → predecessor in the BFS tree
//   - OnVisit hook may abort the search with an error.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//   - Reachable(g, source) is the reachability set the relaxation engine must
//     agree with: after the relaxation passes a node has a finite distance
//     exactly when it is reachable.
//
// Determinism
//
//	Neighbors are enqueued in edge insertion order, so the visit sequence is
//	fully reproducible.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V + E)   (each node and edge seen at most once)
//   - Memory: O(V + E)   (adjacency, queue, result slices)
package bfs
