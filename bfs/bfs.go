// Package bfs provides breadth-first search over a core.Graph,
// returning hop distances, parent links, and visit order.
package bfs

import (
	"context"

	"github.com/katalvlaran/shortpath/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem[K comparable] struct {
	id    K
	depth int
}

// walker encapsulates mutable BFS state.
type walker[K comparable] struct {
	graph *core.Graph[K]
	opts  Options
	ctx   context.Context
	queue []queueItem[K]
	res   *Result[K]
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or the context error on cancellation.
func BFS[K comparable](g *core.Graph[K], start K, opts ...Option) (*Result[K], error) {
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

	// Validate start vertex
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	// Prepare walker
	n := g.VertexCount()
	w := &walker[K]{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem[K], 0, n),
		res: &Result[K]{
			Order:  make([]K, 0, n),
			Depth:  make(map[K]int, n),
			Parent: make(map[K]K, n),
		},
	}

	// Seed queue with start vertex (no parent)
	w.res.Depth[start] = 0
	w.queue = append(w.queue, queueItem[K]{id: start})

	// Main loop
	return w.res, w.loop()
}

// loop processes the queue until empty or cancellation.
func (w *walker[K]) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per vertex)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		w.enqueueNeighbors(item)
	}
	return nil
}

// enqueueNeighbors applies the edge filter and MaxDepth, and enqueues each
// unseen out-neighbor.
func (w *walker[K]) enqueueNeighbors(item queueItem[K]) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}

	edges, _ := w.graph.AdjacencyList(item.id)
	for _, e := range edges {
		if !w.opts.EdgeFilter(e.Weight) {
			continue
		}
		// first time seen?
		if _, seen := w.res.Depth[e.To]; seen {
			continue
		}
		w.res.Depth[e.To] = nextDepth
		w.res.Parent[e.To] = item.id
		w.queue = append(w.queue, queueItem[K]{id: e.To, depth: nextDepth})
	}
}
