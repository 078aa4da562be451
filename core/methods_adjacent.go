// File: methods_adjacent.go
// Role: Neighborhood queries (AdjacencyList, OutNeighbors, InNeighbors).
//
// Determinism:
//   - OutNeighbors follows adjacency insertion order (first occurrence wins).
//   - InNeighbors follows vertex insertion order.
package core

// AdjacencyList returns the outgoing edges of k and true, or nil and false if
// k is not a vertex.
//
// The returned slice is a view on the graph's internal storage and must be
// treated as read-only. It stays valid until the next mutation of k.
//
// Complexity: O(1).
func (g *Graph[K]) AdjacencyList(k K) ([]Edge[K], bool) {
	list, ok := g.adjacency[k]

	return list, ok
}

// OutNeighbors returns the distinct destinations of k's outgoing edges.
// The second result is false if k is not a vertex.
//
// Complexity: O(deg(k)).
func (g *Graph[K]) OutNeighbors(k K) ([]K, bool) {
	list, ok := g.adjacency[k]
	if !ok {
		return nil, false
	}

	seen := make(map[K]struct{}, len(list))
	out := make([]K, 0, len(list))
	for _, e := range list {
		if _, dup := seen[e.To]; dup {
			continue
		}
		seen[e.To] = struct{}{}
		out = append(out, e.To)
	}

	return out, true
}

// InNeighbors returns every other vertex that has at least one edge to k.
// A self-loop on k does not make k its own in-neighbor.
// The second result is false if k is not a vertex.
//
// There is no reverse index, so this scans every adjacency list.
//
// Complexity: O(V + E).
func (g *Graph[K]) InNeighbors(k K) ([]K, bool) {
	if !g.HasVertex(k) {
		return nil, false
	}

	out := make([]K, 0)
	for _, v := range g.order {
		if v != k && g.HasEdge(v, k) {
			out = append(out, v)
		}
	}

	return out, true
}
