package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/katalvlaran/shortpath/bfs"
	"github.com/katalvlaran/shortpath/builder"
	"github.com/katalvlaran/shortpath/core"
	"github.com/katalvlaran/shortpath/dijkstra"
	"github.com/katalvlaran/shortpath/graphio"
)

var (
	errNoGraph       = errors.New("one of --input or --random is required")
	errUnknownSource = errors.New("source vertex not in graph")
	errBadFormat     = errors.New("unknown output format")
)

// graphParams are the generator knobs shared by generate and run --random.
// Unset flags fall back to the configuration.
type graphParams struct {
	Vertices *int   `help:"Number of vertices"`
	Min      *int   `name:"min" help:"Minimum neighbors per vertex"`
	Max      *int   `name:"max" help:"Exclusive maximum neighbors per vertex"`
	Seed     *int64 `help:"Random seed, 0 picks one from the clock"`
}

func (p graphParams) generate(ctx Context) (*core.Graph[int64], error) {
	gc := ctx.cfg.Generate
	if p.Vertices != nil {
		gc.Vertices = *p.Vertices
	}
	if p.Min != nil {
		gc.NeighborMin = *p.Min
	}
	if p.Max != nil {
		gc.NeighborMax = *p.Max
	}
	if p.Seed != nil {
		gc.Seed = *p.Seed
	}
	if gc.Seed == 0 {
		gc.Seed = time.Now().UnixNano()
	}

	ctx.log.Info("generating graph",
		"vertices", gc.Vertices,
		"neighbor_min", gc.NeighborMin,
		"neighbor_max", gc.NeighborMax,
		"seed", gc.Seed,
	)
	g, err := builder.Generate(gc.Vertices, gc.NeighborMin, gc.NeighborMax, builder.WithSeed(gc.Seed))
	if err != nil {
		return nil, fmt.Errorf("generate graph: %w", err)
	}
	ctx.log.Debug("graph generated", "vertices", g.VertexCount(), "edges", g.EdgeCount())

	return g, nil
}

type generateCommand struct {
	graphParams
	Output string `short:"o" placeholder:"FILE" type:"path" help:"Write the graph to FILE instead of stdout"`
}

func (c *generateCommand) Run(ctx Context) error {
	g, err := c.generate(ctx)
	if err != nil {
		return err
	}
	if c.Output != "" {
		return graphio.WriteFile(c.Output, g)
	}

	return graphio.Write(ctx.out, g)
}

type runCommand struct {
	graphParams
	Input  string `short:"i" placeholder:"FILE" type:"existingfile" xor:"graph" help:"Read the graph from FILE"`
	Random bool   `xor:"graph" help:"Generate a random graph instead of reading one"`
	Source string `short:"s" placeholder:"ID" help:"Source vertex, defaults to the configuration"`
	Target string `short:"t" placeholder:"ID" help:"Also print the shortest path to this vertex"`
	Format string `enum:"text,json" default:"text" help:"Result format (text|json)"`
	Output string `short:"o" placeholder:"FILE" type:"path" help:"Write results to FILE instead of stdout"`
}

func (c *runCommand) Run(ctx Context) error {
	// 1) Obtain the graph.
	var (
		g   *core.Graph[int64]
		err error
	)
	switch {
	case c.Input != "":
		g, err = graphio.ReadFile(c.Input)
		if err == nil {
			ctx.log.Info("graph loaded", "path", c.Input, "vertices", g.VertexCount(), "edges", g.EdgeCount())
		}
	case c.Random:
		g, err = c.generate(ctx)
	default:
		err = errNoGraph
	}
	if err != nil {
		return err
	}

	// 2) Resolve the source.
	src := c.Source
	if src == "" {
		src = ctx.cfg.Run.Source
	}
	source, err := strconv.ParseInt(src, 10, 64)
	if err != nil {
		return fmt.Errorf("source %q: %w", src, err)
	}
	if !g.HasVertex(source) {
		return fmt.Errorf("source %d: %w", source, errUnknownSource)
	}

	// 3) Solve.
	start := time.Now()
	nodes := dijkstra.ShortestPaths(g, source, dijkstra.WithLogger(ctx.log))
	elapsed := time.Since(start)

	reach, err := bfs.BFS(g, source)
	if err != nil {
		return fmt.Errorf("reachability: %w", err)
	}
	ctx.log.Info("shortest paths computed",
		"source", source,
		"settled", len(nodes),
		"reachable", len(reach.Order),
		"max_hops", maxHops(reach),
		"elapsed", elapsed,
	)

	// 4) Report.
	out, closeOut, err := openOutput(c.Output, ctx.out)
	if err != nil {
		return err
	}
	if err := report(out, nodes, c.Format, c.Target); err != nil {
		closeOut()
		return err
	}

	return closeOut()
}

type demoCommand struct{}

func (*demoCommand) Run(ctx Context) error {
	g := demoGraph()
	nodes := dijkstra.ShortestPaths(g, 0, dijkstra.WithLogger(ctx.log))

	return report(ctx.out, nodes, "text", "3")
}

// demoGraph is the four-vertex graph 0↔1 (50), 0↔2 (30), 2↔1 (10), 1↔3 (60)
// plus an isolated vertex 4.
func demoGraph() *core.Graph[int64] {
	g := core.NewGraph[int64]()
	for v := int64(0); v < 5; v++ {
		g.AddVertex(v)
	}
	g.AddUndirectedEdge(0, 1, 50)
	g.AddUndirectedEdge(0, 2, 30)
	g.AddUndirectedEdge(2, 1, 10)
	g.AddUndirectedEdge(1, 3, 60)

	return g
}

// report writes nodes in format, followed by the path to target when given.
func report(w io.Writer, nodes []dijkstra.Node[int64], format, target string) error {
	switch format {
	case "text":
		if err := graphio.WriteResults(w, nodes); err != nil {
			return err
		}
	case "json":
		return graphio.WriteResultsJSON(w, nodes)
	default:
		return fmt.Errorf("%q: %w", format, errBadFormat)
	}

	if target == "" {
		return nil
	}
	t, err := strconv.ParseInt(target, 10, 64)
	if err != nil {
		return fmt.Errorf("target %q: %w", target, err)
	}
	path, ok := dijkstra.PathTo(nodes, t)
	if !ok {
		_, err = fmt.Fprintf(w, "Path to %d: unreachable\n", t)
		return err
	}
	_, err = fmt.Fprintf(w, "Path to %d: %v (distance %s)\n", t, path, dijkstra.Index(nodes)[t].Distance)

	return err
}

// maxHops is the largest hop count from the source to any reachable vertex.
func maxHops(r *bfs.Result[int64]) int {
	hops := 0
	for _, d := range r.Depth {
		hops = max(hops, d)
	}
	return hops
}

// openOutput returns path opened for writing, or fallback when path is empty.
func openOutput(path string, fallback io.Writer) (io.Writer, func() error, error) {
	if path == "" {
		return fallback, func() error { return nil }, nil
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create %s: %w", path, err)
	}

	return file, file.Close, nil
}
