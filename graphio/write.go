package graphio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/katalvlaran/shortpath/core"
)

// WriteFile creates (or truncates) path and encodes g into it with Write.
func WriteFile(path string, g *core.Graph[int64]) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(file, g); err != nil {
		file.Close()
		return err
	}

	return file.Close()
}

// Write encodes g one line per vertex, vertices ascending by id, edges in
// adjacency-list order. A nil graph writes nothing.
func Write(w io.Writer, g *core.Graph[int64]) error {
	if g == nil {
		return nil
	}

	ids := g.Vertices()
	slices.Sort(ids)

	bw := bufio.NewWriter(w)
	for _, v := range ids {
		edges, _ := g.AdjacencyList(v)
		fmt.Fprintf(bw, "Vertex %d:", v)
		for i, e := range edges {
			if i > 0 {
				bw.WriteString(" ->")
			}
			fmt.Fprintf(bw, " %d %d", e.To, e.Weight)
		}
		bw.WriteByte('\n')
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write graph: %w", err)
	}
	return nil
}
