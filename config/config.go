package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/ember2d/constants"
)

// Config is the process-level configuration, read once at startup and
// handed to constructors. The simulation core never reads it directly.
type Config struct {
	Window     WindowConfig     `toml:"window"`
	Simulation SimulationConfig `toml:"simulation"`
	Audio      AudioConfig      `toml:"audio"`
	Logging    LoggingConfig    `toml:"logging"`
}

type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

type SimulationConfig struct {
	// TickRate is the fixed simulation rate in ticks per second
	TickRate int `toml:"tick_rate"`
	// Speed is the player acceleration in pixels per second squared
	Speed float64 `toml:"speed"`
}

type AudioConfig struct {
	Enabled bool `toml:"enabled"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  constants.DefaultWindowWidth,
			Height: constants.DefaultWindowHeight,
			Title:  constants.DefaultWindowTitle,
		},
		Simulation: SimulationConfig{
			TickRate: constants.TicksPerSecond,
			Speed:    constants.PlayerSpeed,
		},
		Audio: AudioConfig{
			Enabled: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads a TOML file over the defaults. A missing file is not an
// error: the defaults are returned unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Window.Width < 1 || c.Window.Height < 1 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Simulation.TickRate < 1 {
		return fmt.Errorf("invalid tick rate %d", c.Simulation.TickRate)
	}
	return nil
}

// FixedStep returns the simulation step in seconds
func (c *Config) FixedStep() float64 {
	return 1.0 / float64(c.Simulation.TickRate)
}

// SpeedPerTick returns the control acceleration applied per fixed tick
func (c *Config) SpeedPerTick() float64 {
	return c.Simulation.Speed * c.FixedStep()
}
