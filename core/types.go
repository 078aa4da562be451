// Package core defines the weighted directed adjacency-list Graph used by
// the shortest-path engine, its generator and its text reader.
//
// This file declares Weight, Edge, Graph and the NewGraph constructor.
package core

// Weight is the non-negative cost of traversing an edge.
type Weight = uint64

// Edge is one outgoing entry of an adjacency list.
//
// The source vertex is implicit: it is the key under which the Edge is stored.
type Edge[K comparable] struct {
	// To is the destination vertex.
	To K

	// Weight is the cost of the edge.
	Weight Weight
}

// Graph is a weighted directed multigraph keyed by an opaque comparable vertex
// identifier.
//
// Invariants:
//   - Every key of adjacency is also present exactly once in order.
//   - An edge is only stored when both endpoints are vertices.
//   - A vertex without edges maps to an empty list, never to a missing entry.
//
// Graph has no internal synchronization. Concurrent readers are safe as long
// as no goroutine mutates the graph at the same time.
type Graph[K comparable] struct {
	// order keeps vertices in first-insertion order for deterministic enumeration.
	order []K

	// adjacency maps a vertex to its outgoing edges, in insertion order.
	adjacency map[K][]Edge[K]

	// edges is the total number of stored edges (parallel edges counted).
	edges int
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph[K comparable]() *Graph[K] {
	return &Graph[K]{
		adjacency: make(map[K][]Edge[K]),
	}
}
