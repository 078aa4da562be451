// Package graphio reads and writes core.Graph[int64] values in a
// line-oriented text format, and renders ShortestPaths results.
//
// Graph format, one line per vertex, vertices in ascending id order:
//
//	Vertex 0: 1 50 -> 2 30
//	Vertex 1: 0 50 -> 2 10
//	Vertex 2:
//
// Each line holds the vertex id followed by neighbor/weight pairs in
// adjacency-list order. Read is the structural inverse of Write: it pulls
// every run of decimal digits out of a line, together with a '-' directly
// in front of it, takes the first as the vertex id and the rest as pairs,
// and ignores everything else ("Vertex", ":", "->"). Ids may be negative;
// a negative weight is an error. Blank lines are skipped. A vertex that
// appears on several lines keeps the edges of its last line.
//
// Result format (WriteResults):
//
//	Vertex 0: distance 0
//	Vertex 2: distance 30 via 0
//	Vertex 5: unreached
//
// WriteResultsJSON emits the same records as an indented JSON array.
package graphio
