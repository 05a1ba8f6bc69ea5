// Package config provides YAML-based configuration loading for termtris.
package config

// Config contains the runtime knobs of the game. Board dimensions are fixed
// engine constants and deliberately not configurable.
type Config struct {
	Game GameConfig `yaml:"game"`
}

// GameConfig defines gameplay parameters.
type GameConfig struct {
	// GravityMS is the fixed delay between gravity ticks, in milliseconds.
	GravityMS int `yaml:"gravity_ms"`
	// ShowNext toggles the next-piece preview box.
	ShowNext bool `yaml:"show_next"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Game: GameConfig{
			GravityMS: 1000,
			ShowNext:  true,
		},
	}
}

// Validate normalizes nonsensical values back to their defaults.
func (c *Config) Validate() {
	if c.Game.GravityMS <= 0 {
		c.Game.GravityMS = Default().Game.GravityMS
	}
}
