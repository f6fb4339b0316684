package config

import (
	"errors"
	"time"

	"github.com/katalvlaran/orbitgraph/pointcloud"
)

var (
	// ErrInvalidConfiguration wraps every validation failure.
	ErrInvalidConfiguration = errors.New("config: invalid configuration")

	// ErrUnsupportedFormat is returned by Load for unknown file extensions.
	ErrUnsupportedFormat = errors.New("config: unsupported file format")

	// ErrUnknownPreset is returned by PresetByName.
	ErrUnknownPreset = errors.New("config: unknown preset")
)

// Defaults mirror preset "one".
const (
	DefaultNodes    = 100
	DefaultDensity  = 0.5
	DefaultGeometry = "sphere"
	DefaultSeed     = 1
	DefaultDelayMS  = 50
	DefaultLevel    = "info"
)

// Config is the full run configuration.
type Config struct {
	Graph    Graph    `toml:"graph" yaml:"graph"`
	Playback Playback `toml:"playback" yaml:"playback"`
	Log      Log      `toml:"log" yaml:"log"`
}

// Graph describes the graph to build and where traversals start.
type Graph struct {
	Nodes    int     `toml:"nodes" yaml:"nodes" validate:"min=1"`
	Density  float64 `toml:"density" yaml:"density" validate:"finite,min=0,max=1"`
	Geometry string  `toml:"geometry" yaml:"geometry" validate:"required,oneof=sphere sphere_surface galaxy circle_arc circle"`
	Seed     int64   `toml:"seed" yaml:"seed"`
	Start    int     `toml:"start" yaml:"start" validate:"min=0,ltfield=Nodes"`
}

// Kind returns the parsed point-cloud kind.
func (g Graph) Kind() (pointcloud.Kind, error) {
	return pointcloud.ParseKind(g.Geometry)
}

// Playback controls how fast a sequence is replayed.
type Playback struct {
	DelayMS int `toml:"delay_ms" yaml:"delay_ms" validate:"min=0"`
}

// Delay returns the per-step pause.
func (p Playback) Delay() time.Duration {
	return time.Duration(p.DelayMS) * time.Millisecond
}

// Log configures the zap logger. An empty File logs to stderr; otherwise
// output rotates through lumberjack.
type Log struct {
	Level       string `toml:"level" yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	File        string `toml:"file" yaml:"file"`
	MaxSizeMB   int    `toml:"max_size_mb" yaml:"max_size_mb" validate:"min=0"`
	MaxAgeDays  int    `toml:"max_age_days" yaml:"max_age_days" validate:"min=0"`
	Development bool   `toml:"development" yaml:"development"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		Graph: Graph{
			Nodes:    DefaultNodes,
			Density:  DefaultDensity,
			Geometry: DefaultGeometry,
			Seed:     DefaultSeed,
		},
		Playback: Playback{DelayMS: DefaultDelayMS},
		Log: Log{
			Level:      DefaultLevel,
			MaxSizeMB:  100,
			MaxAgeDays: 7,
		},
	}
}
