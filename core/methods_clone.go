// File: methods_clone.go
// Role: Deep copies, so callers can hand an immutable snapshot to concurrent
// shortest-path runs while keeping a mutable original.
package core

// Clone returns a deep copy of the graph: same vertices in the same order and
// independent copies of every adjacency list.
//
// Complexity: O(V + E).
func (g *Graph[K]) Clone() *Graph[K] {
	clone := &Graph[K]{
		order:     make([]K, len(g.order)),
		adjacency: make(map[K][]Edge[K], len(g.adjacency)),
		edges:     g.edges,
	}
	copy(clone.order, g.order)
	for k, list := range g.adjacency {
		cp := make([]Edge[K], len(list))
		copy(cp, list)
		clone.adjacency[k] = cp
	}

	return clone
}
