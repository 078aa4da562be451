// Package dijkstra computes single-source shortest paths over a core.Graph
// with non-negative edge weights.
//
// Overview:
//
//   - ShortestPaths settles vertices in non-decreasing distance order using a
//     pqueue.MinHeap that holds one Node per vertex.
//   - Relaxation lowers a neighbor's key in place (decrease-key). The engine
//     finds the neighbor's heap slot through a vertex→position index that the
//     heap keeps current through its move hook, so every lookup is O(1).
//   - The result is the settlement sequence itself: one Node per vertex of the
//     graph, in the order the vertices were finalized.
//
// Distances:
//
//   - Distance is a small sum type: Unreached, or Reached(d).
//   - Unreached orders after every reached distance, so vertices that cannot
//     be reached from the source are settled last and keep Unreached with no
//     predecessor.
//   - Adding an edge weight that would overflow uint64 is treated as "no
//     improvement"; it can never wrap around into a short distance.
//
// Predecessors are stored as vertex keys (Node.Predecessor), not pointers.
// PathTo walks them backwards to rebuild a route.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - V inserts while initializing, V pops, at most E decrease-keys.
//   - Space: O(V) for the heap, the position index and the result.
//
// Options:
//
//   - WithMaxDistance(d):       relaxations that would exceed d are skipped.
//   - WithInfEdgeThreshold(t):  edges with weight ≥ t are impassable.
//   - WithTieBreak(less):       secondary order among equal distances.
//   - WithOnSettle(fn):         called for every finalized Node.
//   - WithOnRelax(fn):          called after every successful decrease-key.
//   - WithLogger(l):            debug records for settlements and relaxations.
//
// Ties:
//
//   - Without WithTieBreak, the order among vertices with equal distance is
//     whatever the heap produces. It is deterministic for a given graph
//     (vertices are enumerated in insertion order) but carries no meaning.
//
// Edge cases:
//
//   - A source that is not a vertex of the graph (including a nil or empty
//     graph) yields an empty result. This is not an error.
//
// Thread safety:
//
//   - Each call owns its heap. Calls may run concurrently on the same graph as
//     long as nobody mutates the graph meanwhile.
package dijkstra
