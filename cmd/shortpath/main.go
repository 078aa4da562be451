// Command shortpath generates random graphs, reads and writes them in the
// line-oriented text format, and computes single-source shortest paths.
//
//	shortpath generate --vertices 100 --min 2 --max 6 --seed 42 -o g.graph
//	shortpath run --input g.graph --source 0 --target 17
//	shortpath run --random --seed 42 --format json
//	shortpath demo
//
// Logs go to stderr; results go to stdout or --output.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/katalvlaran/shortpath/internal/config"
	"github.com/katalvlaran/shortpath/internal/logging"
)

// CLI is the root command line.
type CLI struct {
	Config    string `name:"config" placeholder:"FILE" type:"path" env:"SHORTPATH_CONFIG" help:"YAML configuration file"`
	LogLevel  string `name:"log-level" placeholder:"LEVEL" help:"Log level (debug|info|warn|error), overrides the configuration"`
	LogFormat string `name:"log-format" placeholder:"FORMAT" help:"Log format (text|json), overrides the configuration"`

	Generate generateCommand `cmd:"" help:"Generate a random undirected graph"`
	Run      runCommand      `cmd:"" help:"Compute shortest paths from a source vertex"`
	Demo     demoCommand     `cmd:"" help:"Run the built-in five-vertex example"`
}

// Context is bound into every command's Run method.
type Context struct {
	cfg config.Config
	log *slog.Logger
	out io.Writer
}

// AfterApply resolves configuration (defaults, file, environment, flags) and
// builds the logger before any command runs.
func (cli CLI) AfterApply(kongCtx *kong.Context) error {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return fmt.Errorf("configuration: %w", err)
	}
	if cli.LogLevel != "" {
		cfg.Log.Level = cli.LogLevel
	}
	if cli.LogFormat != "" {
		cfg.Log.Format = cli.LogFormat
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("command line options: %w", err)
	}

	kongCtx.Bind(Context{
		cfg: cfg,
		log: logging.New(cfg.Log),
		out: os.Stdout,
	})
	return nil
}

func main() {
	var cli CLI
	kongCtx := kong.Parse(&cli,
		kong.Name("shortpath"),
		kong.Description("Single-source shortest paths over weighted directed graphs."),
		kong.UsageOnError(),
	)
	kongCtx.FatalIfErrorf(kongCtx.Run())
}
