package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/bellmanford/core"
)

// Dijkstra computes shortest distances from source to every node of g.
//
// Returns:
//
//   - dist: dist[v] is the minimum distance, or Unreachable.
//   - err:  ErrNilGraph, ErrVertexNotFound, or ErrNegativeWeight (wrapped with the
//     offending edge).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, source int) ([]int64, error) {
	// 1) Validate inputs.
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.NodeCount()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, source)
	}

	// 2) Pre-scan for negative weights and build the adjacency list in edge order.
	edges := g.Edges()
	adj := make([][]core.Edge, n)
	for _, e := range edges {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
		adj[e.From] = append(adj[e.From], e)
	}

	// 3) Run.
	r := &runner{
		adj:     adj,
		dist:    make([]int64, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	r.init(source)
	r.process()

	return r.dist, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	adj     [][]core.Edge // outgoing edges per node
	dist    []int64       // best distance per node
	visited []bool        // finalized nodes
	pq      nodePQ        // lazy min-heap
}

// init sets every distance to Unreachable and pushes the source at 0.
func (r *runner) init(source int) {
	for v := range r.dist {
		r.dist[v] = Unreachable
	}
	r.dist[source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: source, dist: 0})
}

// process pops the closest unfinalized node until the heap is empty.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue // stale entry
		}
		r.visited[item.id] = true
		r.relax(item.id)
	}
}

// relax improves the neighbors of the finalized node u.
func (r *runner) relax(u int) {
	for _, e := range r.adj[u] {
		nd := r.dist[u] + e.Weight
		if nd < r.dist[u] { // overflow: treat as no path
			continue
		}
		// Strict "<" avoids pushing duplicates for equal distances.
		if nd >= r.dist[e.To] {
			continue
		}
		r.dist[e.To] = nd
		heap.Push(&r.pq, &nodeItem{id: e.To, dist: nd})
	}
}

// nodeItem is a heap entry: a node and the distance it was pushed with.
type nodeItem struct {
	id   int
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist. Outdated entries stay in
// the heap and are skipped when popped ("lazy decrease-key").
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
