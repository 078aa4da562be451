package dijkstra

// Index maps every settled vertex to its Node.
// Complexity: O(len(nodes)).
func Index[K comparable](nodes []Node[K]) map[K]Node[K] {
	idx := make(map[K]Node[K], len(nodes))
	for _, n := range nodes {
		idx[n.Vertex] = n
	}

	return idx
}

// Distances maps every settled vertex to its final distance.
// Complexity: O(len(nodes)).
func Distances[K comparable](nodes []Node[K]) map[K]Distance {
	dist := make(map[K]Distance, len(nodes))
	for _, n := range nodes {
		dist[n.Vertex] = n.Distance
	}

	return dist
}

// PathTo rebuilds the route from the source to target by walking predecessor
// keys backwards through nodes, the result of a single ShortestPaths call.
//
// It returns false when target is absent from nodes, is Unreached, or the
// predecessor chain is broken (nodes from different runs mixed together).
// The path of the source is the single-vertex slice [source].
//
// Complexity: O(len(nodes)) time and space.
func PathTo[K comparable](nodes []Node[K], target K) ([]K, bool) {
	idx := Index(nodes)
	n, ok := idx[target]
	if !ok || !n.Distance.IsReached() {
		return nil, false
	}

	path := []K{n.Vertex}
	for n.HasPredecessor {
		// A chain longer than the vertex count can only come from a cycle.
		if len(path) > len(idx) {
			return nil, false
		}
		if n, ok = idx[n.Predecessor]; !ok {
			return nil, false
		}
		path = append(path, n.Vertex)
	}

	// Walked target → source; flip to source → target.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}
