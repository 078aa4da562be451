// Package shortpath computes single-source shortest paths over weighted
// directed graphs with Dijkstra's algorithm on an indexed binary min-heap.
//
// What is in the box?
//
//   - core/: Graph[K], an adjacency-list multigraph with uint64 weights,
//     deterministic insertion-order enumeration
//   - pqueue/: MinHeap[T], a binary min-heap with decrease-key and a move
//     hook for position tracking
//   - dijkstra/: ShortestPaths, the Distance sum type, PathTo and friends
//   - bfs/: hop-count breadth-first search and reachability
//   - builder/: Generate, seeded random undirected graphs with degree bounds
//   - graphio/: the "Vertex <id>: <n> <w> -> ..." text format and result writers
//   - cmd/shortpath: command-line driver (generate, run, demo)
//
// Quick ASCII example (scenario used throughout the docs):
//
//	0 ──50── 1 ──60── 3
//	 \      /
//	  30  10
//	   \  /
//	    2
//
// From 0 the vertices settle as 0 (0), 2 (30), 1 (40 via 2), 3 (100 via 1).
//
//	go install github.com/katalvlaran/shortpath/cmd/shortpath@latest
package shortpath
