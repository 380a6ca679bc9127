package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/bellmanford/core"
)

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	v     int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	adj   [][]int // out-neighbors per node, in edge insertion order
	opts  BFSOptions
	ctx   context.Context
	queue []queueItem
	res   *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ctx.Err() on cancellation,
// or any user-supplied hook error.
func BFS(g *core.Graph, start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.NodeCount()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	// Prepare walker
	adj := make([][]int, n)
	for _, e := range g.Edges() {
		adj[e.From] = append(adj[e.From], e.To)
	}
	w := &walker{
		adj:   adj,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &BFSResult{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for v := 0; v < n; v++ {
		w.res.Depth[v] = Unvisited
		w.res.Parent[v] = Unvisited
	}

	// Seed queue with start node (no parent)
	w.enqueue(start, 0, Unvisited)

	return w.res, w.loop()
}

// enqueue marks v visited at depth d, records its parent and adds it to the queue.
func (w *walker) enqueue(v, d, parent int) {
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.queue = append(w.queue, queueItem{v: v, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.v)
		if err := w.opts.OnVisit(item.v, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.v, err)
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, nbr := range w.adj[item.v] {
			// first time seen?
			if w.res.Depth[nbr] == Unvisited {
				w.enqueue(nbr, next, item.v)
			}
		}
	}

	return nil
}

// Reachable returns, for every node of g, whether a directed path leads to it
// from source. Complexity: O(V + E).
func Reachable(g *core.Graph, source int) ([]bool, error) {
	res, err := BFS(g, source)
	if err != nil {
		return nil, err
	}
	out := make([]bool, len(res.Depth))
	for v := range out {
		out[v] = res.Reached(v)
	}

	return out, nil
}
