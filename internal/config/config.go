package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config aggregates the driver's configuration values.
type Config struct {
	Log      LogConfig      `yaml:"log"`
	Generate GenerateConfig `yaml:"generate"`
	Run      RunConfig      `yaml:"run"`
}

// LogConfig controls structured logging settings.
type LogConfig struct {
	Level         string `yaml:"level"`
	Format        string `yaml:"format"` // text|json
	IncludeCaller bool   `yaml:"include_caller"`
}

// GenerateConfig holds the random graph parameters.
type GenerateConfig struct {
	Vertices    int   `yaml:"vertices"`
	NeighborMin int   `yaml:"neighbor_min"`
	NeighborMax int   `yaml:"neighbor_max"`
	Seed        int64 `yaml:"seed"` // 0 means time-based
}

// RunConfig holds shortest-path run parameters.
type RunConfig struct {
	Source string `yaml:"source"`
}

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid value")

const (
	defaultLogLevel    = "info"
	defaultLogFormat   = "text"
	defaultVertices    = 10
	defaultNeighborMin = 1
	defaultNeighborMax = 4
	defaultSource      = "0"
)

// Environment overrides, applied after the file.
const (
	EnvLogLevel  = "SHORTPATH_LOG_LEVEL"
	EnvLogFormat = "SHORTPATH_LOG_FORMAT"
	EnvSeed      = "SHORTPATH_SEED"
)

// Default returns the configuration used when no file and no environment
// overrides are present.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Generate: GenerateConfig{
			Vertices:    defaultVertices,
			NeighborMin: defaultNeighborMin,
			NeighborMax: defaultNeighborMax,
		},
		Run: RunConfig{
			Source: defaultSource,
		},
	}
}

// Load builds a Config from defaults, then the YAML file at path (skipped
// when path is empty), then environment overrides, and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := decode(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// decode overlays YAML onto cfg; unknown keys are an error. An empty
// document leaves cfg unchanged.
func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func applyEnv(cfg *Config) error {
	cfg.Log.Level = valueOrDefault(EnvLogLevel, cfg.Log.Level)
	cfg.Log.Format = valueOrDefault(EnvLogFormat, cfg.Log.Format)

	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", EnvSeed, v, err)
		}
		cfg.Generate.Seed = seed
	}

	return nil
}

// Validate checks values that Load cannot fix by itself. Generator bounds
// are left to builder.Generate, which reports them precisely.
func (c Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log.level %q: %w", c.Log.Level, ErrInvalid)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format %q: %w", c.Log.Format, ErrInvalid)
	}
	if c.Generate.Vertices < 1 {
		return fmt.Errorf("generate.vertices %d: %w", c.Generate.Vertices, ErrInvalid)
	}

	return nil
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
