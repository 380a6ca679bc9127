package dfs

import (
	"fmt"

	"github.com/katalvlaran/bellmanford/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	adj  [][]core.Edge // out-edges per node, in insertion order
	opts DFSOptions    // traversal options
	res  *DFSResult    // result collector
}

// DFS performs depth-first search on graph g from each start node in turn,
// skipping starts already reached by an earlier tree. Neighbors are explored
// in edge insertion order, so the result is deterministic.
// Returns DFSResult, or an error if aborted by context or hook; on abort the
// partial result is returned with an empty Order.
func DFS(g *core.Graph, starts []int, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	n := g.NodeCount()
	for _, s := range starts {
		if s < 0 || s >= n {
			return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, s)
		}
	}

	adj := make([][]core.Edge, n)
	for _, e := range g.Edges() {
		adj[e.From] = append(adj[e.From], e)
	}
	res := &DFSResult{
		Order:  make([]int, 0, n),
		Depth:  make([]int, n),
		Parent: make([]int, n),
	}
	for v := 0; v < n; v++ {
		res.Depth[v] = Unvisited
		res.Parent[v] = Unvisited
	}

	walker := &dfsWalker{adj: adj, opts: dopts, res: res}
	for _, s := range starts {
		if res.Depth[s] != Unvisited {
			continue
		}
		if err := walker.traverse(s, 0); err != nil {
			res.SkippedEdges = walker.opts.SkippedEdges
			return res, err
		}
	}
	res.SkippedEdges = walker.opts.SkippedEdges

	return res, nil
}

// traverse visits node v at given depth, recursing to out-neighbors.
func (w *dfsWalker) traverse(v, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		w.res.Order = nil
		return w.opts.Ctx.Err()
	default:
	}

	w.res.Depth[v] = depth

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for %d: %w", v, err)
		}
	}

	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		for _, e := range w.adj[v] {
			if w.opts.FilterEdge != nil && !w.opts.FilterEdge(e.From, e.To, e.Weight) {
				w.opts.SkippedEdges++
				continue
			}
			if w.res.Depth[e.To] != Unvisited {
				continue
			}
			w.res.Parent[e.To] = v
			if err := w.traverse(e.To, depth+1); err != nil {
				return err
			}
		}
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(v); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnExit hook for %d: %w", v, err)
		}
	}
	w.res.Order = append(w.res.Order, v)

	return nil
}

// Reach returns, for every node of g, whether it lies on a directed path
// starting at one of seeds. Complexity: O(V + E).
func Reach(g *core.Graph, seeds ...int) ([]bool, error) {
	res, err := DFS(g, seeds)
	if err != nil {
		return nil, err
	}
	out := make([]bool, len(res.Depth))
	for v := range out {
		out[v] = res.Visited(v)
	}

	return out, nil
}
