package config_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orbitgraph/config"
	"github.com/katalvlaran/orbitgraph/pointcloud"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	k, err := cfg.Graph.Kind()
	require.NoError(t, err)
	assert.Equal(t, pointcloud.Sphere, k)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		msg    string
	}{
		{"zero nodes", func(c *config.Config) { c.Graph.Nodes = 0 }, "graph.nodes must be at least 1"},
		{"negative density", func(c *config.Config) { c.Graph.Density = -0.1 }, "graph.density must be at least 0"},
		{"density above one", func(c *config.Config) { c.Graph.Density = 1.5 }, "graph.density must be at most 1"},
		{"nan density", func(c *config.Config) { c.Graph.Density = math.NaN() }, "graph.density must be a finite number"},
		{"infinite density", func(c *config.Config) { c.Graph.Density = math.Inf(1) }, "graph.density must be a finite number"},
		{"unknown geometry", func(c *config.Config) { c.Graph.Geometry = "cube" }, "graph.geometry must be one of"},
		{"empty geometry", func(c *config.Config) { c.Graph.Geometry = "" }, "graph.geometry is required"},
		{"start past end", func(c *config.Config) { c.Graph.Start = 100 }, "graph.start must be less than nodes"},
		{"negative delay", func(c *config.Config) { c.Playback.DelayMS = -1 }, "playback.delayms must be at least 0"},
		{"bad level", func(c *config.Config) { c.Log.Level = "loud" }, "log.level must be one of"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			require.ErrorIs(t, err, config.ErrInvalidConfiguration)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestValidate_Boundaries(t *testing.T) {
	cfg := config.Default()
	cfg.Graph.Nodes = 1
	cfg.Graph.Density = 1
	cfg.Graph.Start = 0
	cfg.Log.Level = ""
	assert.NoError(t, cfg.Validate())

	cfg.Graph.Density = 0
	assert.NoError(t, cfg.Graph.Validate())
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "run.toml", `
[graph]
nodes = 10
density = 0.3
geometry = "circle"
seed = 42

[playback]
delay_ms = 5
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Graph.Nodes)
	assert.Equal(t, 0.3, cfg.Graph.Density)
	assert.Equal(t, "circle", cfg.Graph.Geometry)
	assert.Equal(t, int64(42), cfg.Graph.Seed)
	assert.Equal(t, 5, cfg.Playback.DelayMS)
	// untouched sections keep defaults
	assert.Equal(t, config.DefaultLevel, cfg.Log.Level)
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "run.yaml", `
graph:
  nodes: 500
  density: 0.01
  geometry: galaxy
log:
  level: debug
  development: true
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 500, cfg.Graph.Nodes)
	assert.Equal(t, "galaxy", cfg.Graph.Geometry)
	assert.Equal(t, int64(config.DefaultSeed), cfg.Graph.Seed)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Development)
}

func TestLoad_EmptyYAMLKeepsDefaults(t *testing.T) {
	cfg, err := config.Load(writeFile(t, "empty.yml", ""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(writeFile(t, "run.json", "{}"))
	assert.ErrorIs(t, err, config.ErrUnsupportedFormat)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(writeFile(t, "bad.toml", "[graph]\nnodes = 0\n"))
	assert.ErrorIs(t, err, config.ErrInvalidConfiguration)

	_, err = config.Load(writeFile(t, "typo.toml", "[graph]\nnodez = 3\n"))
	assert.Error(t, err)

	_, err = config.Load(writeFile(t, "typo.yaml", "graph:\n  nodez: 3\n"))
	assert.Error(t, err)
}

func TestWriteTOML_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.toml")
	want := config.Default()
	want.Graph.Geometry = "sphere_surface"
	want.Graph.Seed = 9
	require.NoError(t, config.WriteTOML(path, want))

	got, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestPresets(t *testing.T) {
	assert.Equal(t, []string{"four", "one", "three", "two"}, config.PresetNames())

	tests := []struct {
		name    string
		nodes   int
		density float64
		kind    pointcloud.Kind
		delayMS int
		action  config.Action
	}{
		{"one", 100, 0.5, pointcloud.Sphere, 50, config.ActionDFS},
		{"two", 2000, 0, pointcloud.Galaxy, 50, config.ActionBuild},
		{"three", 10, 0.3, pointcloud.Circle, 50, config.ActionDFS},
		{"four", 500, 0.01, pointcloud.Galaxy, 10, config.ActionPath},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := config.PresetByName(tc.name)
			require.NoError(t, err)
			assert.Equal(t, tc.nodes, p.Graph.Nodes)
			assert.Equal(t, tc.density, p.Graph.Density)
			assert.Equal(t, tc.action, p.Action)

			k, err := p.Graph.Kind()
			require.NoError(t, err)
			assert.Equal(t, tc.kind, k)

			base := config.Default()
			base.Playback.DelayMS = 999
			cfg := p.Apply(base)
			assert.NoError(t, cfg.Validate())
			assert.Equal(t, tc.delayMS, cfg.Playback.DelayMS)
			assert.Equal(t, base.Log, cfg.Log)
		})
	}

	_, err := config.PresetByName("five")
	assert.ErrorIs(t, err, config.ErrUnknownPreset)
}
