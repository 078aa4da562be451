// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// Package builder generates random undirected weighted graphs for the
// shortest-path engine.
//
// The package offers:
//
//   - Generate(vertexCount, neighborMin, neighborMax, opts...):
//     a *core.Graph[int64] over vertices 0..vertexCount-1 where every
//     vertex has between neighborMin and neighborMax-1 distinct neighbors.
//     Every edge is inserted in both directions with the same weight.
//   - Functional options (BuilderOption):
//     – WithSeed / WithRand: RNG source (required; no hidden global RNG).
//     – WithWeightFn:        per-edge weight generator.
//     – WithMaxAttempts:     random draws per neighbor before a full scan.
//     – WithMaxRestarts:     whole-graph builds before ErrConstructFailed.
//   - Weight distributions (WeightFn):
//     – DefaultWeightFn:     uniform in [0, 100).
//     – ConstantWeightFn, UniformWeightFn.
//
// Errors (configuration class, see errors.go):
//
//	ErrTooFewVertices, ErrInvalidNeighborMax, ErrInvalidNeighborMin,
//	ErrTooManyEdges, ErrNeedRandSource, ErrConstructFailed.
//
// On error no graph is returned.
//
// Determinism:
//
//   - Vertices are created in ascending order and filled in ascending order;
//     for a fixed seed and options the output graph is identical.
package builder
