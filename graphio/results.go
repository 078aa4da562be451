package graphio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/shortpath/dijkstra"
)

// WriteResults renders nodes one line each, in the given order.
func WriteResults[K comparable](w io.Writer, nodes []dijkstra.Node[K]) error {
	bw := bufio.NewWriter(w)
	for _, n := range nodes {
		switch {
		case !n.Distance.IsReached():
			fmt.Fprintf(bw, "Vertex %v: unreached\n", n.Vertex)
		case n.HasPredecessor:
			fmt.Fprintf(bw, "Vertex %v: distance %s via %v\n", n.Vertex, n.Distance, n.Predecessor)
		default:
			fmt.Fprintf(bw, "Vertex %v: distance %s\n", n.Vertex, n.Distance)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}

// resultRecord is the JSON shape of one settled node. An unreached distance
// and a missing predecessor both encode as null.
type resultRecord[K comparable] struct {
	Vertex      K                 `json:"vertex"`
	Distance    dijkstra.Distance `json:"distance"`
	Predecessor *K                `json:"predecessor"`
}

// WriteResultsJSON encodes nodes as an indented JSON array, in the given order.
func WriteResultsJSON[K comparable](w io.Writer, nodes []dijkstra.Node[K]) error {
	records := make([]resultRecord[K], 0, len(nodes))
	for _, n := range nodes {
		rec := resultRecord[K]{Vertex: n.Vertex, Distance: n.Distance}
		if p, ok := n.Prev(); ok {
			rec.Predecessor = &p
		}
		records = append(records, rec)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(records); err != nil {
		return fmt.Errorf("encode results: %w", err)
	}
	return nil
}
