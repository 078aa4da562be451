// File: methods_edges.go
// Role: Edge insertion & queries.
//
// Contract:
//   - AddEdge never creates vertices. Inserting an edge with an unknown
//     endpoint is a silent no-op reported through the boolean result.
package core

// AddEdge appends (to, w) to the adjacency list of from.
//
// It returns false, leaving the graph untouched, unless both from and to are
// already vertices. Edges are directed; parallel edges and self-loops are kept.
//
// Complexity: O(1) amortized.
func (g *Graph[K]) AddEdge(from, to K, w Weight) bool {
	if !g.HasVertex(from) || !g.HasVertex(to) {
		return false
	}
	g.adjacency[from] = append(g.adjacency[from], Edge[K]{To: to, Weight: w})
	g.edges++

	return true
}

// AddUndirectedEdge inserts a→b and b→a with the same weight.
// Either both directions are inserted or neither is.
func (g *Graph[K]) AddUndirectedEdge(a, b K, w Weight) bool {
	if !g.HasVertex(a) || !g.HasVertex(b) {
		return false
	}
	g.AddEdge(a, b, w)
	g.AddEdge(b, a, w)

	return true
}

// HasEdge reports whether from exists and has at least one edge to to,
// whatever its weight.
//
// Complexity: O(deg(from)).
func (g *Graph[K]) HasEdge(from, to K) bool {
	for _, e := range g.adjacency[from] {
		if e.To == to {
			return true
		}
	}

	return false
}

// EdgeCount returns the number of stored directed edges, parallel edges included.
func (g *Graph[K]) EdgeCount() int { return g.edges }
