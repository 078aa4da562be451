// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns keys in first-insertion order.
package core

// AddVertex inserts k with an empty adjacency list.
//
// If k already exists, its adjacency list is replaced by an empty one and the
// previous list is returned with replaced == true. The vertex keeps its
// original enumeration position.
//
// Complexity: O(1) amortized.
func (g *Graph[K]) AddVertex(k K) (prev []Edge[K], replaced bool) {
	prev, replaced = g.adjacency[k]
	if replaced {
		g.edges -= len(prev)
	} else {
		g.order = append(g.order, k)
	}
	g.adjacency[k] = []Edge[K]{}

	return prev, replaced
}

// HasVertex reports whether k is a vertex of the graph.
// Complexity: O(1).
func (g *Graph[K]) HasVertex(k K) bool {
	_, ok := g.adjacency[k]

	return ok
}

// VertexCount returns |V|.
func (g *Graph[K]) VertexCount() int { return len(g.order) }

// IsEmpty reports whether the graph has no vertices.
func (g *Graph[K]) IsEmpty() bool { return len(g.order) == 0 }

// Vertices returns a copy of all vertex keys in first-insertion order.
// Complexity: O(V).
func (g *Graph[K]) Vertices() []K {
	out := make([]K, len(g.order))
	copy(out, g.order)

	return out
}
