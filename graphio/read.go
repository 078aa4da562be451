package graphio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/shortpath/core"
)

const methodRead = "Read"

// maxLineSize bounds a single line; dense vertices produce long lines.
const maxLineSize = 16 << 20

// record is one parsed vertex line.
type record struct {
	line   int
	vertex int64
	edges  []core.Edge[int64]
}

// ReadFile opens path and decodes it with Read.
func ReadFile(path string) (*core.Graph[int64], error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	return Read(file)
}

// Read decodes a graph written by Write.
//
// Vertices are created in order of first appearance; a repeated vertex line
// replaces the adjacency list of the earlier one. Every edge target must be
// declared by some line, before or after the edge.
func Read(r io.Reader) (*core.Graph[int64], error) {
	// 1) Parse every line; nothing touches the graph yet.
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var records []record
	for n := 1; scanner.Scan(); n++ {
		rec, ok, err := parseLine(scanner.Text(), n)
		if err != nil {
			return nil, err
		}
		if ok {
			records = append(records, rec)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodRead, err)
	}

	// 2) Declare every vertex so forward references resolve.
	g := core.NewGraph[int64]()
	for _, rec := range records {
		g.AddVertex(rec.vertex)
	}

	// 3) Replay adjacency lists; a later line for the same vertex resets it.
	for _, rec := range records {
		g.AddVertex(rec.vertex)
		for _, e := range rec.edges {
			if !g.AddEdge(rec.vertex, e.To, e.Weight) {
				return nil, fmt.Errorf("%s: line %d: vertex %d: %w", methodRead, rec.line, e.To, ErrUnknownVertex)
			}
		}
	}

	return g, nil
}

// parseLine extracts the vertex id and its edges. ok is false for blank lines.
func parseLine(line string, n int) (rec record, ok bool, err error) {
	if strings.TrimSpace(line) == "" {
		return record{}, false, nil
	}

	nums := numbers(line)
	if len(nums) == 0 {
		return record{}, false, fmt.Errorf("%s: line %d: %w", methodRead, n, ErrMissingVertex)
	}
	if len(nums)%2 == 0 {
		return record{}, false, fmt.Errorf("%s: line %d: %w", methodRead, n, ErrMissingWeight)
	}

	rec = record{line: n, edges: make([]core.Edge[int64], 0, len(nums)/2)}
	if rec.vertex, err = strconv.ParseInt(nums[0], 10, 64); err != nil {
		return record{}, false, fmt.Errorf("%s: line %d: vertex: %w", methodRead, n, err)
	}

	var (
		to int64
		w  uint64
	)
	for i := 1; i < len(nums); i += 2 {
		if to, err = strconv.ParseInt(nums[i], 10, 64); err != nil {
			return record{}, false, fmt.Errorf("%s: line %d: neighbor: %w", methodRead, n, err)
		}
		if w, err = strconv.ParseUint(nums[i+1], 10, 64); err != nil {
			return record{}, false, fmt.Errorf("%s: line %d: weight: %w", methodRead, n, err)
		}
		rec.edges = append(rec.edges, core.Edge[int64]{To: to, Weight: w})
	}

	return rec, true, nil
}

// numbers returns every run of decimal digits in line, each with the '-'
// that immediately precedes it, if any. A '-' not followed by a digit (as
// in "->") is a separator.
func numbers(line string) []string {
	var nums []string
	for i := 0; i < len(line); {
		start := i
		if line[i] == '-' && i+1 < len(line) && isDigit(line[i+1]) {
			i++
		}
		if !isDigit(line[i]) {
			i = start + 1
			continue
		}
		for i < len(line) && isDigit(line[i]) {
			i++
		}
		nums = append(nums, line[start:i])
	}

	return nums
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }
