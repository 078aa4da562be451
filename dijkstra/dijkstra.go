package dijkstra

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/shortpath/core"
	"github.com/katalvlaran/shortpath/pqueue"
)

// ShortestPaths computes shortest distances from start to every vertex of g
// and returns one Node per vertex in settlement order.
//
// Guarantees:
//
//   - The Distance fields are non-decreasing along the result.
//   - Every vertex of g appears exactly once; unreachable ones come last with
//     Unreached and no predecessor.
//   - The first Node is start itself, at distance 0 with no predecessor.
//
// If start is not a vertex of g (or g is nil) the result is empty.
//
// g is only read. Options carrying typed hooks panic with ErrOptionType if
// their vertex type is not K.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
func ShortestPaths[K comparable](g *core.Graph[K], start K, opts ...Option) []Node[K] {
	// 1) Guard: an absent source is answered with an empty sequence.
	if g == nil || !g.HasVertex(start) {
		return []Node[K]{}
	}

	// 2) Resolve options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 3) Build the runner, fill the heap and drain it.
	r := newRunner[K](g, cfg)
	r.init(start)
	r.process()

	return r.result
}

// runner holds the mutable state of a single ShortestPaths call.
type runner[K comparable] struct {
	g        *core.Graph[K]              // read-only input
	options  Options                     // resolved options
	tieBreak func(a, b K) bool           // optional secondary order
	onSettle func(Node[K])               // optional settlement hook
	onRelax  func(K, Distance, Distance) // optional relaxation hook
	log      *slog.Logger                // nil disables logging
	pos      map[K]int                   // vertex → current heap index, unsettled only
	pq       *pqueue.MinHeap[Node[K]]    // one Node per unsettled vertex
	result   []Node[K]                   // settled Nodes in order
}

func newRunner[K comparable](g *core.Graph[K], cfg Options) *runner[K] {
	n := g.VertexCount()
	r := &runner[K]{
		g:       g,
		options: cfg,
		log:     cfg.Logger,
		pos:     make(map[K]int, n),
		result:  make([]Node[K], 0, n),
	}
	r.tieBreak = typedOption[func(a, b K) bool](cfg.tieBreak, "WithTieBreak")
	r.onSettle = typedOption[func(Node[K])](cfg.onSettle, "WithOnSettle")
	r.onRelax = typedOption[func(K, Distance, Distance)](cfg.onRelax, "WithOnRelax")

	r.pq = pqueue.New(r.less,
		pqueue.WithCapacity[Node[K]](n),
		pqueue.WithMoveHook(r.track),
	)

	return r
}

// typedOption recovers the concrete function stored by a generic option.
func typedOption[F any](v any, name string) F {
	var zero F
	if v == nil {
		return zero
	}
	fn, ok := v.(F)
	if !ok {
		panic(fmt.Errorf("%w: %s got %T, want %T", ErrOptionType, name, v, zero))
	}

	return fn
}

// less orders heap Nodes by distance, then by the optional tie-break.
func (r *runner[K]) less(a, b Node[K]) bool {
	if a.Distance.Less(b.Distance) {
		return true
	}
	if r.tieBreak == nil || b.Distance.Less(a.Distance) {
		return false
	}

	return r.tieBreak(a.Vertex, b.Vertex)
}

// track is the heap move hook: it keeps pos pointing at every unsettled Node.
func (r *runner[K]) track(n Node[K], index int) {
	if index < 0 {
		delete(r.pos, n.Vertex)
		return
	}
	r.pos[n.Vertex] = index
}

// init inserts the source at distance 0, then every other vertex as Unreached,
// in graph enumeration order.
func (r *runner[K]) init(start K) {
	r.pq.Insert(Node[K]{Vertex: start, Distance: Reached(0)})
	for _, v := range r.g.Vertices() {
		if v == start {
			continue
		}
		r.pq.Insert(Node[K]{Vertex: v, Distance: Unreached})
	}
}

// process pops the nearest unsettled Node until the heap is empty. Each pop
// finalizes a vertex; its outgoing edges are then relaxed.
func (r *runner[K]) process() {
	for r.pq.Len() > 0 {
		subject, _ := r.pq.Pop()
		r.result = append(r.result, subject)

		if r.log != nil {
			r.log.LogAttrs(context.Background(), slog.LevelDebug, "settled",
				slog.Any("vertex", subject.Vertex),
				slog.String("distance", subject.Distance.String()),
				slog.Int("heap_len", r.pq.Len()),
			)
		}
		if r.onSettle != nil {
			r.onSettle(subject)
		}

		// Nothing can be improved through an unreached vertex, and every
		// vertex still in the heap is unreached as well.
		if !subject.Distance.IsReached() {
			continue
		}
		r.relax(subject)
	}
}

// relax tries to improve every unsettled out-neighbor of subject.
func (r *runner[K]) relax(subject Node[K]) {
	edges, _ := r.g.AdjacencyList(subject.Vertex)

	var (
		i         int
		ok        bool
		candidate Distance
		current   Node[K]
	)
	for _, e := range edges {
		// Impassable edge.
		if r.options.InfEdgeThreshold != 0 && e.Weight >= r.options.InfEdgeThreshold {
			continue
		}

		// Settled (or self-loop): no longer in the heap.
		if i, ok = r.pos[e.To]; !ok {
			continue
		}

		if candidate, ok = subject.Distance.Add(e.Weight); !ok {
			continue
		}
		if d, _ := candidate.Value(); d > r.options.MaxDistance {
			continue
		}

		current = r.pq.At(i)
		if !candidate.Less(current.Distance) {
			continue
		}

		r.pq.DecreaseKey(i, Node[K]{
			Vertex:         e.To,
			Distance:       candidate,
			Predecessor:    subject.Vertex,
			HasPredecessor: true,
		})

		if r.log != nil {
			r.log.LogAttrs(context.Background(), slog.LevelDebug, "relaxed",
				slog.Any("vertex", e.To),
				slog.Any("predecessor", subject.Vertex),
				slog.String("from", current.Distance.String()),
				slog.String("to", candidate.String()),
			)
		}
		if r.onRelax != nil {
			r.onRelax(e.To, current.Distance, candidate)
		}
	}
}
