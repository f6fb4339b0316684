package config

import (
	"fmt"
	"sort"
)

// Action is what a preset does after building its graph.
type Action string

const (
	ActionBuild Action = "build" // build only
	ActionDFS   Action = "dfs"   // connectivity traversal
	ActionPath  Action = "path"  // traversal, all pairs, incident→exit path
)

// Preset is a named graph setup with its replay speed and a follow-up action.
type Preset struct {
	Name     string
	Graph    Graph
	Playback Playback
	Action   Action
}

var presets = map[string]Preset{
	"one": {
		Name:     "one",
		Graph:    Graph{Nodes: 100, Density: 0.5, Geometry: "sphere", Seed: DefaultSeed},
		Playback: Playback{DelayMS: 50},
		Action:   ActionDFS,
	},
	"two": {
		Name:     "two",
		Graph:    Graph{Nodes: 2000, Density: 0, Geometry: "galaxy", Seed: DefaultSeed},
		Playback: Playback{DelayMS: 50},
		Action:   ActionBuild,
	},
	"three": {
		Name:     "three",
		Graph:    Graph{Nodes: 10, Density: 0.3, Geometry: "circle", Seed: DefaultSeed},
		Playback: Playback{DelayMS: 50},
		Action:   ActionDFS,
	},
	"four": {
		Name:     "four",
		Graph:    Graph{Nodes: 500, Density: 0.01, Geometry: "galaxy", Seed: DefaultSeed},
		Playback: Playback{DelayMS: 10},
		Action:   ActionPath,
	},
}

// PresetNames returns the preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// PresetByName looks up a preset.
func PresetByName(name string) (Preset, error) {
	p, ok := presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %q (have %v)", ErrUnknownPreset, name, PresetNames())
	}

	return p, nil
}

// Apply returns c with the preset's graph and playback sections.
func (p Preset) Apply(c Config) Config {
	c.Graph = p.Graph
	c.Playback = p.Playback
	return c
}
