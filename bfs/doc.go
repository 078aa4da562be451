// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing hop count from a start vertex,
//     following directed edges only in their own direction.
//   - Returns a Result containing:
//   - Order:  visit sequence
//   - Depth:  map from vertex → hops from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Edge weights are ignored, except through WithEdgeFilter.
//
// Why
//
//   - Reachability: the vertices BFS reaches are exactly the ones
//     dijkstra.ShortestPaths reports as reached (same edge filter, no
//     distance cap). The shortpath driver uses it to report reachable
//     counts; the engine tests use it as an independent oracle.
//   - Fewest-hops routes, which differ from cheapest routes.
//
// Determinism
//
//	Vertices are expanded in queue order and neighbors in adjacency-list
//	order, so the visit sequence is fully reproducible for a given graph.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, start,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithEdgeFilter(func(w core.Weight) bool { return w < 1000 }),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - ctx.Err()               if the context is cancelled mid-walk.
package bfs
