// Package config provides YAML-based game configuration loading for
// minofall.
package config

// GameConfig contains all tunable parameters of one game session.
type GameConfig struct {
	Playground PlaygroundConfig `yaml:"playground"`
	Generator  GeneratorConfig  `yaml:"generator"`
	Gravity    GravityConfig    `yaml:"gravity"`
}

// PlaygroundConfig defines playground parameters.
type PlaygroundConfig struct {
	Previews int `yaml:"previews"`
}

// GeneratorConfig selects and tunes the tile generator.
type GeneratorConfig struct {
	Type    GeneratorType `yaml:"type"`
	Window  int           `yaml:"window"`  // history window size
	Retries int           `yaml:"retries"` // redraw budget per tile
}

// GravityConfig defines the automatic fall timing in driver ticks.
type GravityConfig struct {
	DropEveryTicks int `yaml:"drop_every_ticks"`
	LockDelayTicks int `yaml:"lock_delay_ticks"`
}

// GeneratorType names a tile generator strategy.
type GeneratorType string

const (
	GeneratorBag     GeneratorType = "bag"
	GeneratorHistory GeneratorType = "history"
)

// Valid returns true for a known generator type.
func (t GeneratorType) Valid() bool {
	return t == GeneratorBag || t == GeneratorHistory
}

// Normalize clamps out-of-range values to playable ones so a partial
// or hand-edited config never produces a broken session.
func (c *GameConfig) Normalize() {
	if c.Playground.Previews < 1 {
		c.Playground.Previews = DefaultConfig().Playground.Previews
	}
	if !c.Generator.Type.Valid() {
		c.Generator.Type = GeneratorBag
	}
	if c.Generator.Window < 1 {
		c.Generator.Window = DefaultConfig().Generator.Window
	}
	if c.Generator.Retries < 0 {
		c.Generator.Retries = 0
	}
	if c.Gravity.DropEveryTicks < 1 {
		c.Gravity.DropEveryTicks = DefaultConfig().Gravity.DropEveryTicks
	}
	if c.Gravity.LockDelayTicks < 1 {
		c.Gravity.LockDelayTicks = DefaultConfig().Gravity.LockDelayTicks
	}
}
