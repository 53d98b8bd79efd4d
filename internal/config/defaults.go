package config

import (
	_ "embed"
)

//go:embed defaults/minofall.yaml
var defaultGameYAML []byte

// DefaultConfig returns the default game configuration.
func DefaultConfig() GameConfig {
	return GameConfig{
		Playground: PlaygroundConfig{
			Previews: 5,
		},
		Generator: GeneratorConfig{
			Type:    GeneratorBag,
			Window:  4,
			Retries: 4,
		},
		Gravity: GravityConfig{
			DropEveryTicks: 48,
			LockDelayTicks: 30,
		},
	}
}

// DefaultYAML returns the embedded default YAML, for writing a starter
// config file.
func DefaultYAML() []byte {
	return defaultGameYAML
}
