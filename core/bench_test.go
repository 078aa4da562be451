// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"testing"

	"github.com/katalvlaran/shortpath/core"
)

// BenchmarkAddEdge measures appending edges from one hub vertex.
func BenchmarkAddEdge(b *testing.B) {
	g := core.NewGraph[int]()
	for v := 0; v < 100; v++ {
		g.AddVertex(v)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.AddEdge(0, i%100, uint64(i))
	}
}

// BenchmarkHasEdge measures the linear scan over a 100-entry adjacency list.
func BenchmarkHasEdge(b *testing.B) {
	g := core.NewGraph[int]()
	for v := 0; v < 101; v++ {
		g.AddVertex(v)
	}
	for v := 1; v <= 100; v++ {
		g.AddEdge(0, v, 1)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.HasEdge(0, 100)
	}
}

// BenchmarkInNeighbors measures the O(V·E) reverse scan on a ring.
func BenchmarkInNeighbors(b *testing.B) {
	const n = 1000
	g := core.NewGraph[int]()
	for v := 0; v < n; v++ {
		g.AddVertex(v)
	}
	for v := 0; v < n; v++ {
		g.AddEdge(v, (v+1)%n, 1)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.InNeighbors(i % n)
	}
}

// BenchmarkClone measures a deep copy of a 1000-vertex ring.
func BenchmarkClone(b *testing.B) {
	const n = 1000
	g := core.NewGraph[int]()
	for v := 0; v < n; v++ {
		g.AddVertex(v)
	}
	for v := 0; v < n; v++ {
		g.AddUndirectedEdge(v, (v+1)%n, 1)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Clone()
	}
}
