// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/shortpath/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start vertex is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// EdgeFilter skips an edge when it returns false for the edge's weight.
	EdgeFilter func(w core.Weight) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns an Options with sane defaults:
//   - context.Background()
//   - no depth limit (MaxDepth == 0)
//   - every edge followed
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		MaxDepth:   0,
		EdgeFilter: func(core.Weight) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithEdgeFilter follows only edges whose weight satisfies keep.
// A nil keep is ignored.
func WithEdgeFilter(keep func(w core.Weight) bool) Option {
	return func(o *Options) {
		if keep != nil {
			o.EdgeFilter = keep
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order:  vertices visited, in visit sequence.
//   - Depth:  map from vertex to its distance (in edges) from the start.
//   - Parent: map from vertex to its predecessor in the BFS tree.
type Result[K comparable] struct {
	Order  []K
	Depth  map[K]int
	Parent map[K]K
}

// Reached reports whether v was visited.
func (r *Result[K]) Reached(v K) bool {
	_, ok := r.Depth[v]
	return ok
}

// PathTo reconstructs the fewest-hops path from the start vertex to dest.
// Returns an error if dest was not reached.
func (r *Result[K]) PathTo(dest K) ([]K, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("bfs: no path to %v", dest)
	}
	// build reversed path
	path := []K{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
