package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortpath/internal/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shortpath.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv(config.EnvLogFormat, "")
	t.Setenv(config.EnvSeed, "")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv(config.EnvLogFormat, "")
	t.Setenv(config.EnvSeed, "")

	path := writeFile(t, `
log:
  level: debug
  format: json
generate:
  vertices: 100
  neighbor_min: 2
  neighbor_max: 9
  seed: 42
run:
  source: "7"
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, config.GenerateConfig{Vertices: 100, NeighborMin: 2, NeighborMax: 9, Seed: 42}, cfg.Generate)
	assert.Equal(t, "7", cfg.Run.Source)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv(config.EnvLogFormat, "")
	t.Setenv(config.EnvSeed, "")

	cfg, err := config.Load(writeFile(t, "generate:\n  vertices: 30\n"))
	require.NoError(t, err)

	want := config.Default()
	want.Generate.Vertices = 30
	assert.Equal(t, want, cfg)
}

func TestLoadEmptyFile(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv(config.EnvLogFormat, "")
	t.Setenv(config.EnvSeed, "")

	cfg, err := config.Load(writeFile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "warn")
	t.Setenv(config.EnvLogFormat, "")
	t.Setenv(config.EnvSeed, "99")

	cfg, err := config.Load(writeFile(t, "log:\n  level: debug\ngenerate:\n  seed: 1\n"))
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, int64(99), cfg.Generate.Seed)
}

func TestLoadErrors(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv(config.EnvLogFormat, "")
	t.Setenv(config.EnvSeed, "")

	t.Run("unknown key", func(t *testing.T) {
		_, err := config.Load(writeFile(t, "log:\n  colour: true\n"))
		require.Error(t, err)
	})
	t.Run("bad level", func(t *testing.T) {
		_, err := config.Load(writeFile(t, "log:\n  level: loud\n"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, config.ErrInvalid))
	})
	t.Run("bad format", func(t *testing.T) {
		_, err := config.Load(writeFile(t, "log:\n  format: xml\n"))
		assert.True(t, errors.Is(err, config.ErrInvalid))
	})
	t.Run("no vertices", func(t *testing.T) {
		_, err := config.Load(writeFile(t, "generate:\n  vertices: 0\n"))
		assert.True(t, errors.Is(err, config.ErrInvalid))
	})
	t.Run("missing file", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})
}

func TestBadSeedEnv(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv(config.EnvLogFormat, "")
	t.Setenv(config.EnvSeed, "abc")

	_, err := config.Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.EnvSeed)
}
