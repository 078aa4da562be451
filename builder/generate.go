// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// generate.go - implementation of Generate(vertexCount, neighborMin, neighborMax).
//
// Model:
//   - Undirected random graph over int64 vertices 0..vertexCount-1, stored as
//     a directed core.Graph with both directions of every edge (same weight).
//   - Per vertex v (ascending), draw a target degree t ∈ [neighborMin, neighborMax)
//     and add t − deg(v) edges to random distinct vertices u ≠ v that are not yet
//     adjacent to v and still have spare capacity (deg(u)+1 < neighborMax).
//
// Contract:
//   - vertexCount ≥ 1                                  (else ErrTooFewVertices).
//   - neighborMax < vertexCount                        (else ErrInvalidNeighborMax).
//   - 0 ≤ neighborMin < vertexCount                    (else ErrInvalidNeighborMin).
//   - neighborMin < neighborMax, or both 0             (else ErrInvalidNeighborMax).
//   - vertexCount·(vertexCount−1)/2 ≥ neighborMin·vertexCount (else ErrTooManyEdges).
//   - cfg.rng must be non-nil                          (else ErrNeedRandSource).
//   - Every vertex ends with neighborMin ≤ deg < neighborMax. Generate(n, 0, 0)
//     is the edgeless graph.
//   - Neighbors are found by rejection sampling (cfg.maxAttempts draws), then
//     by an exhaustive scan, so a target is only cut short when no admissible
//     neighbor exists at all.
//   - A build that strands a vertex below neighborMin is discarded and started
//     over with the same RNG, up to cfg.maxRestarts builds. Only then does the
//     call fail with ErrConstructFailed (e.g. an odd vertexCount with every
//     degree forced to the same odd value admits no graph at all).
//
// Complexity:
//   - Time: O(maxRestarts·n·neighborMax·(maxAttempts + n)) worst case,
//     O(n·neighborMax) typical.
//   - Space: O(n + m).
//
// Determinism:
//   - Stable fill order: v asc; restarts continue the same RNG stream.
//     Fixed seed and options yield the same graph.

package builder

import (
	"github.com/rhartert/sparsesets"

	"github.com/katalvlaran/shortpath/core"
)

// File-local constants.
const (
	methodGenerate      = "Generate"
	minGenerateVertices = 1
)

// Generate builds a random undirected graph; see the file header for the
// exact model. On error the returned graph is nil.
func Generate(vertexCount, neighborMin, neighborMax int, opts ...BuilderOption) (*core.Graph[int64], error) {
	// 1) Validate parameters (fail fast, nothing allocated on invalid input).
	if err := validateGenerate(vertexCount, neighborMin, neighborMax); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, builderErrorf(methodGenerate, ErrNeedRandSource, "no rng configured")
	}

	gen := &generator{
		cfg:        cfg,
		n:          vertexCount,
		min:        neighborMin,
		max:        neighborMax,
		candidates: sparsesets.New(vertexCount),
	}

	// 2) Build; a stranded vertex discards the attempt and starts over.
	var (
		stuck  int64
		degree int
	)
	for restart := 0; restart < cfg.maxRestarts; restart++ {
		var ok bool
		if stuck, degree, ok = gen.build(); ok {
			return gen.g, nil
		}
	}

	return nil, builderErrorf(methodGenerate, ErrConstructFailed,
		"vertex %d stuck at degree %d < neighborMin=%d after %d builds",
		stuck, degree, neighborMin, cfg.maxRestarts)
}

// validateGenerate checks the numeric domain in a fixed order so the reported
// sentinel is stable for a given input.
func validateGenerate(vertexCount, neighborMin, neighborMax int) error {
	if vertexCount < minGenerateVertices {
		return builderErrorf(methodGenerate, ErrTooFewVertices,
			"vertexCount=%d < min=%d", vertexCount, minGenerateVertices)
	}
	if neighborMax >= vertexCount {
		return builderErrorf(methodGenerate, ErrInvalidNeighborMax,
			"neighborMax=%d ≥ vertexCount=%d", neighborMax, vertexCount)
	}
	if neighborMin >= vertexCount || neighborMin < 0 {
		return builderErrorf(methodGenerate, ErrInvalidNeighborMin,
			"neighborMin=%d not in [0,%d)", neighborMin, vertexCount)
	}
	// [neighborMin, neighborMax) must be non-empty; (0, 0) means no edges.
	if neighborMax < neighborMin || (neighborMax == neighborMin && neighborMin > 0) {
		return builderErrorf(methodGenerate, ErrInvalidNeighborMax,
			"neighborMax=%d ≤ neighborMin=%d", neighborMax, neighborMin)
	}
	n := int64(vertexCount)
	if n*(n-1)/2 < int64(neighborMin)*n {
		return builderErrorf(methodGenerate, ErrTooManyEdges,
			"neighborMin·vertexCount=%d > capacity=%d", int64(neighborMin)*n, n*(n-1)/2)
	}

	return nil
}

// generator carries the state of one Generate call.
type generator struct {
	g          *core.Graph[int64] // current build, replaced on restart
	cfg        builderConfig
	n          int
	min, max   int
	candidates *sparsesets.Set // scratch set for the exhaustive fallback
}

// build starts from a fresh edgeless graph and fills vertices in ascending
// order. On failure it reports the first stranded vertex and its degree.
func (gen *generator) build() (stuck int64, degree int, ok bool) {
	gen.g = core.NewGraph[int64]()
	for v := 0; v < gen.n; v++ {
		gen.g.AddVertex(int64(v))
	}

	for v := 0; v < gen.n; v++ {
		if degree, ok = gen.fill(int64(v)); !ok {
			return int64(v), degree, false
		}
	}

	return 0, 0, true
}

// fill raises v's degree to a freshly drawn target.
//
// When no admissible neighbor is left the target is lowered to the degree
// reached so far, provided that is still ≥ min; otherwise fill reports the
// degree reached and false.
func (gen *generator) fill(v int64) (int, bool) {
	// 1) Draw the target degree; (0, 0) yields 0.
	target := gen.min
	if gen.max > gen.min {
		target += gen.cfg.rng.Intn(gen.max - gen.min)
	}

	// 2) Add target−degree symmetric edges.
	k := gen.degree(v)
	for ; k < target; k++ {
		u, ok := gen.pick(v)
		if !ok {
			return k, k >= gen.min
		}
		gen.g.AddUndirectedEdge(v, u, gen.cfg.weightFn(gen.cfg.rng))
	}

	return k, true
}

// pick draws random vertices until one is admissible for v. Once the attempt
// budget is spent it collects every admissible vertex and draws among them,
// so it only reports false when none exists.
func (gen *generator) pick(v int64) (int64, bool) {
	// 1) Rejection sampling, uniform over the n−1 vertices other than v.
	var u int64
	for attempt := 0; attempt < gen.cfg.maxAttempts; attempt++ {
		u = int64(gen.cfg.rng.Intn(gen.n - 1))
		if u >= v {
			u++
		}
		if gen.admissible(v, u) {
			return u, true
		}
	}

	// 2) Exhaustive fallback in ascending id order.
	gen.candidates.Clear()
	for w := 0; w < gen.n; w++ {
		if int64(w) != v && gen.admissible(v, int64(w)) {
			gen.candidates.Insert(w)
		}
	}
	open := gen.candidates.Content()
	if len(open) == 0 {
		return 0, false
	}

	return int64(open[gen.cfg.rng.Intn(len(open))]), true
}

// admissible reports whether u may become a new neighbor of v.
func (gen *generator) admissible(v, u int64) bool {
	return gen.degree(u)+1 < gen.max && !gen.g.HasEdge(v, u)
}

// degree is the out-degree of v, which equals its undirected degree here.
func (gen *generator) degree(v int64) int {
	edges, _ := gen.g.AdjacencyList(v)
	return len(edges)
}
