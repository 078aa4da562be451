// Package core provides the in-memory weighted directed Graph consumed by
// the dijkstra engine.
//
// The Graph G = (V,E) is an adjacency-list multigraph:
//
//   - Vertices are keyed by any comparable type K (ints, strings, small structs).
//   - Each vertex owns an ordered list of outgoing (to, weight) edges.
//   - Parallel edges and self-loops are stored as given.
//   - Weights are unsigned (Weight = uint64), so negative costs cannot be expressed.
//
// Contracts:
//
//	AddVertex(k)          // O(1); replaces and returns an existing list
//	HasVertex(k) bool     // O(1)
//	AddEdge(from,to,w)    // O(1); no-op (false) unless both endpoints exist
//	HasEdge(from,to)      // O(deg(from))
//	AdjacencyList(k)      // O(1); read-only view
//	OutNeighbors(k)       // O(deg(k)); distinct
//	InNeighbors(k)        // O(V+E); full scan, no reverse index
//	VertexCount()         // O(1)
//	Clone()               // O(V+E)
//
// Read paths never fail: absence is reported by a false boolean or an empty
// result.
//
// Enumeration is deterministic: Vertices and InNeighbors follow the order in
// which vertices were first inserted; adjacency lists keep edge insertion order.
//
// Thread safety:
//
//   - Graph carries no locks. Build it in one goroutine, then share it
//     read-only. Several shortest-path runs may read the same graph
//     concurrently as long as nobody mutates it.
package core
