package main

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortpath/bfs"
	"github.com/katalvlaran/shortpath/builder"
	"github.com/katalvlaran/shortpath/dijkstra"
	"github.com/katalvlaran/shortpath/graphio"
	"github.com/katalvlaran/shortpath/internal/config"
)

func testContext(out io.Writer) Context {
	return Context{
		cfg: config.Default(),
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
		out: out,
	}
}

func ptr[T any](v T) *T { return &v }

func TestDemo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&demoCommand{}).Run(testContext(&buf)))

	want := "Vertex 0: distance 0\n" +
		"Vertex 2: distance 30 via 0\n" +
		"Vertex 1: distance 40 via 2\n" +
		"Vertex 3: distance 100 via 1\n" +
		"Vertex 4: unreached\n" +
		"Path to 3: [0 2 1 3] (distance 100)\n"
	assert.Equal(t, want, buf.String())
}

func TestGenerateThenRun(t *testing.T) {
	dir := t.TempDir()
	graphPath := filepath.Join(dir, "g.graph")
	resultPath := filepath.Join(dir, "out.json")

	gen := &generateCommand{
		graphParams: graphParams{Vertices: ptr(20), Min: ptr(1), Max: ptr(4), Seed: ptr(int64(7))},
		Output:      graphPath,
	}
	require.NoError(t, gen.Run(testContext(io.Discard)))

	g, err := graphio.ReadFile(graphPath)
	require.NoError(t, err)
	assert.Equal(t, 20, g.VertexCount())

	run := &runCommand{Input: graphPath, Source: "0", Format: "json", Output: resultPath}
	require.NoError(t, run.Run(testContext(io.Discard)))

	data, err := os.ReadFile(resultPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "["))
	assert.Contains(t, string(data), `"vertex": 0`)
}

func TestGenerateToStdoutIsDeterministic(t *testing.T) {
	params := graphParams{Vertices: ptr(12), Min: ptr(1), Max: ptr(4), Seed: ptr(int64(3))}

	var a, b bytes.Buffer
	require.NoError(t, (&generateCommand{graphParams: params}).Run(testContext(&a)))
	require.NoError(t, (&generateCommand{graphParams: params}).Run(testContext(&b)))
	assert.Equal(t, a.String(), b.String())
	assert.Equal(t, 12, strings.Count(a.String(), "\n"))
}

func TestGenerateBadParams(t *testing.T) {
	gen := &generateCommand{graphParams: graphParams{Vertices: ptr(5), Min: ptr(0), Max: ptr(6), Seed: ptr(int64(1))}}
	err := gen.Run(testContext(io.Discard))
	require.Error(t, err)
	assert.True(t, errors.Is(err, builder.ErrInvalidNeighborMax))
}

func TestRunRandomWithTarget(t *testing.T) {
	var buf bytes.Buffer
	run := &runCommand{
		graphParams: graphParams{Seed: ptr(int64(5))},
		Random:      true,
		Format:      "text",
		Target:      "0",
	}
	require.NoError(t, run.Run(testContext(&buf)))

	// Source defaults to the configured "0", so the path to 0 is [0].
	assert.Contains(t, buf.String(), "Vertex 0: distance 0\n")
	assert.Contains(t, buf.String(), "Path to 0: [0] (distance 0)\n")
}

func TestRunErrors(t *testing.T) {
	t.Run("no graph", func(t *testing.T) {
		err := (&runCommand{Format: "text"}).Run(testContext(io.Discard))
		assert.True(t, errors.Is(err, errNoGraph))
	})
	t.Run("unknown source", func(t *testing.T) {
		run := &runCommand{Random: true, Source: "999", Format: "text", graphParams: graphParams{Seed: ptr(int64(1))}}
		err := run.Run(testContext(io.Discard))
		assert.True(t, errors.Is(err, errUnknownSource))
	})
	t.Run("bad source", func(t *testing.T) {
		run := &runCommand{Random: true, Source: "zero", Format: "text", graphParams: graphParams{Seed: ptr(int64(1))}}
		require.Error(t, run.Run(testContext(io.Discard)))
	})
}

func TestReportUnreachableTarget(t *testing.T) {
	nodes := dijkstra.ShortestPaths(demoGraph(), 0)

	var buf bytes.Buffer
	require.NoError(t, report(&buf, nodes, "text", "4"))
	assert.Contains(t, buf.String(), "Path to 4: unreachable\n")

	buf.Reset()
	assert.True(t, errors.Is(report(&buf, nodes, "yaml", ""), errBadFormat))
}

func TestParseFlags(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv(config.EnvLogFormat, "")
	t.Setenv(config.EnvSeed, "")

	var cli CLI
	parser, err := kong.New(&cli, kong.Name("shortpath"))
	require.NoError(t, err)

	kctx, err := parser.Parse([]string{"--log-level", "debug", "run", "--random", "--max", "5", "-s", "2", "--format", "json"})
	require.NoError(t, err)
	assert.Equal(t, "run", kctx.Command())
	assert.True(t, cli.Run.Random)
	require.NotNil(t, cli.Run.Max)
	assert.Equal(t, 5, *cli.Run.Max)
	assert.Nil(t, cli.Run.Min)
	assert.Equal(t, "2", cli.Run.Source)
	assert.Equal(t, "json", cli.Run.Format)

	_, err = parser.Parse([]string{"run", "--format", "xml"})
	require.Error(t, err)

	_, err = parser.Parse([]string{"--log-level", "loud", "demo"})
	require.Error(t, err)
}

func TestMaxHops(t *testing.T) {
	reach, err := bfs.BFS(demoGraph(), 0)
	require.NoError(t, err)
	// 0→1 directly, then 1→3.
	assert.Equal(t, 2, maxHops(reach))
	assert.Len(t, reach.Order, 4)
}
