// Package dfs defines types and options for depth-first search traversal,
// including cancellation, pre-/post-order hooks, depth limiting, neighbor
// filtering and multi-source traversal.
package dfs

import (
	"context"
	"errors"
)

// Unvisited marks Depth and Parent entries of nodes the search never reached.
const Unvisited = -1

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS or Reach.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that a start index lies outside the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, starts, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked immediately upon discovering a node (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(v int) error

	// OnExit, if non-nil, is invoked after all descendants of a node
	// have been explored (post-order), before appending to result.Order.
	OnExit func(v int) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start nodes. Default is -1 (no limit).
	MaxDepth int

	// FilterEdge, if non-nil, is called for each out-edge before recursing.
	// Return false to skip it.
	FilterEdge func(from, to int, weight int64) bool

	// SkippedEdges counts edges rejected by FilterEdge.
	SkippedEdges int
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No pre-/post-order hooks
//   - No depth limit (MaxDepth = -1)
//   - No edge filtering
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(v int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit returns an Option that installs fn as a post-order hook.
func WithOnExit(fn func(v int) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the start nodes are visited.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFilterEdge returns an Option that filters out-edges.
// If fn returns false, that edge is skipped and counted in SkippedEdges.
func WithFilterEdge(fn func(from, to int, weight int64) bool) Option {
	return func(o *DFSOptions) {
		o.FilterEdge = fn
	}
}

// DFSResult captures the outcome of a depth-first traversal, indexed by node.
type DFSResult struct {
	// Order records nodes in the sequence they finished (post-order).
	Order []int

	// Depth is the tree depth at discovery, or Unvisited.
	Depth []int

	// Parent is the node each node was first discovered from, or Unvisited
	// for start nodes and nodes never reached.
	Parent []int

	// SkippedEdges reports how many edges FilterEdge rejected.
	SkippedEdges int
}

// Visited reports whether v was reached.
func (r *DFSResult) Visited(v int) bool {
	return v >= 0 && v < len(r.Depth) && r.Depth[v] != Unvisited
}
