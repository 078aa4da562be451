package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/shortpath/bfs"
	"github.com/katalvlaran/shortpath/core"
)

// undirected builds a string-keyed graph with both directions of each pair.
func undirected(pairs ...[2]string) *core.Graph[string] {
	g := core.NewGraph[string]()
	for _, p := range pairs {
		g.AddVertex(p[0])
		g.AddVertex(p[1])
	}
	for _, p := range pairs {
		g.AddUndirectedEdge(p[0], p[1], 1)
	}
	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	// nil graph
	if _, err := bfs.BFS[string](nil, "A"); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	// start vertex not found
	g := core.NewGraph[string]()
	if _, err := bfs.BFS(g, "missing"); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	// negative MaxDepth is a violation
	g.AddVertex("A")
	if _, err := bfs.BFS(g, "A", bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_SimpleTraversal covers the trivial one-vertex graph.
func TestBFS_SimpleTraversal(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddVertex("A")
	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"A"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if d := res.Depth["A"]; d != 0 {
		t.Errorf("Depth[A] = %d; want 0", d)
	}
}

// TestCycleAndDepths covers a simple cycle and checks depths.
func TestCycleAndDepths(t *testing.T) {
	// A–B–C–D–A undirected cycle
	g := undirected([2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "D"}, [2]string{"D", "A"})

	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "D", "C"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	want := map[string]int{"A": 0, "B": 1, "D": 1, "C": 2}
	if !reflect.DeepEqual(res.Depth, want) {
		t.Errorf("Depth = %v; want %v", res.Depth, want)
	}
}

// TestBFS_Directed ensures edges are only followed forward.
func TestBFS_Directed(t *testing.T) {
	g := core.NewGraph[int]()
	for v := 0; v < 3; v++ {
		g.AddVertex(v)
	}
	g.AddEdge(0, 1, 5)
	g.AddEdge(2, 1, 5)

	res, _ := bfs.BFS(g, 0)
	if !reflect.DeepEqual(res.Order, []int{0, 1}) {
		t.Errorf("From 0: got %v; want [0 1]", res.Order)
	}
	if res.Reached(2) {
		t.Errorf("2 has no incoming edge from 0 or 1")
	}
}

// TestBFS_Disconnected ensures BFS only explores the component of the start vertex.
func TestBFS_Disconnected(t *testing.T) {
	g := undirected([2]string{"X", "Y"}, [2]string{"P", "Q"})

	resX, _ := bfs.BFS(g, "X")
	if !reflect.DeepEqual(resX.Order, []string{"X", "Y"}) {
		t.Errorf("From X: got %v; want [X Y]", resX.Order)
	}
	resP, _ := bfs.BFS(g, "P")
	if !reflect.DeepEqual(resP.Order, []string{"P", "Q"}) {
		t.Errorf("From P: got %v; want [P Q]", resP.Order)
	}
}

// TestBFS_MaxDepth verifies WithMaxDepth behavior for positive, zero (no limit), and large depths.
func TestBFS_MaxDepth(t *testing.T) {
	g := undirected([2]string{"A", "B"}, [2]string{"B", "C"})
	// depth = 1 should only visit A,B
	if res, _ := bfs.BFS(g, "A", bfs.WithMaxDepth(1)); !reflect.DeepEqual(res.Order, []string{"A", "B"}) {
		t.Errorf("MaxDepth=1: got %v; want [A B]", res.Order)
	}
	// depth = 0 => explicit no limit => visits all
	if res, _ := bfs.BFS(g, "A", bfs.WithMaxDepth(0)); !reflect.DeepEqual(res.Order, []string{"A", "B", "C"}) {
		t.Errorf("MaxDepth=0: got %v; want [A B C]", res.Order)
	}
	// depth > graph size => same full traversal
	if res, _ := bfs.BFS(g, "A", bfs.WithMaxDepth(10)); !reflect.DeepEqual(res.Order, []string{"A", "B", "C"}) {
		t.Errorf("MaxDepth=10: got %v; want [A B C]", res.Order)
	}
}

// TestBFS_EdgeFilter shows how filtering prunes heavy edges.
func TestBFS_EdgeFilter(t *testing.T) {
	g := core.NewGraph[string]()
	for _, v := range []string{"A", "B", "C"} {
		g.AddVertex(v)
	}
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 100)

	res, _ := bfs.BFS(g, "A", bfs.WithEdgeFilter(func(w core.Weight) bool { return w < 100 }))
	if !reflect.DeepEqual(res.Order, []string{"A", "B"}) {
		t.Errorf("filter: got %v; want [A B]", res.Order)
	}
}

// TestBFS_PathTo checks fewest-hops reconstruction and the unreached error.
func TestBFS_PathTo(t *testing.T) {
	g := undirected([2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"A", "C"})
	g.AddVertex("Z")

	res, _ := bfs.BFS(g, "A")
	path, err := res.PathTo("C")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(path, []string{"A", "C"}) {
		t.Errorf("PathTo(C) = %v; want [A C]", path)
	}
	if _, err := res.PathTo("Z"); err == nil {
		t.Errorf("PathTo(Z): expected error")
	}
}

// TestBFS_Cancel verifies a cancelled context aborts the walk.
func TestBFS_Cancel(t *testing.T) {
	g := undirected([2]string{"A", "B"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := bfs.BFS(g, "A", bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled: want context.Canceled, got %v", err)
	}
}
