// Package config holds the run configuration for orbitgraph: graph shape,
// playback pacing and logging.
//
// Files are loaded by extension: ".toml" through BurntSushi/toml and
// ".yaml"/".yml" through yaml.v3. Values absent from a file keep their
// defaults. Every loaded configuration is validated with
// go-playground/validator and failures wrap ErrInvalidConfiguration.
//
// The four named presets reproduce the classic demo setups:
//
//	one    100 nodes, density 0.5,  sphere, run dfs
//	two    2000 nodes, density 0,   galaxy, build only
//	three  10 nodes,  density 0.3,  circle, run dfs
//	four   500 nodes, density 0.01, galaxy, shortest path
package config
