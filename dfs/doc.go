// Package dfs implements depth-first search on the index-based core.Graph.
//
// What:
//
//   - DFS(g, starts, opts...): explores as far as possible along each branch
//     before backtracking, from every start node in order. Supports:
//   - Pre-order and post-order hooks
//   - Cancellation via context.Context
//   - Depth limiting
//   - Edge filtering
//   - Reach(g, seeds...): the set of nodes reachable from any seed.
//
// Why:
//
//   - A negative cycle makes every distance downstream of it unbounded.
//     Reach, seeded with the heads of edges that still improve after the
//     relaxation passes, yields exactly the nodes whose distances are not final.
//
// Complexity:
//
//   - Time:   O(V + E), plus the cost of hooks and filters.
//   - Memory: O(V) for the recursion stack and per-node metadata.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if a start index is out of range.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs
