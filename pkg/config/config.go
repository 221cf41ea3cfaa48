package config

import (
	"github.com/arthur-debert/cranes/pkg/crane"
)

// Config is the effective configuration of a run.
type Config struct {
	Simulation SimulationConfig `koanf:"simulation" toml:"simulation" json:"simulation" yaml:"simulation"`
	Input      InputConfig      `koanf:"input" toml:"input" json:"input" yaml:"input"`
	Output     OutputConfig     `koanf:"output" toml:"output" json:"output" yaml:"output"`
	Logging    LoggingConfig    `koanf:"logging" toml:"logging" json:"logging" yaml:"logging"`
}

// SimulationConfig selects the crane model.
type SimulationConfig struct {
	Mode string `koanf:"mode" toml:"mode" json:"mode" yaml:"mode" validate:"required,oneof=single block"`
}

// InputConfig locates the input when no path is given.
type InputConfig struct {
	Dir  string `koanf:"dir" toml:"dir" json:"dir" yaml:"dir" validate:"required"`
	Name string `koanf:"name" toml:"name" json:"name" yaml:"name" validate:"required,excludesall=/\\"`
}

// OutputConfig controls rendering.
type OutputConfig struct {
	Format  string `koanf:"format" toml:"format" json:"format" yaml:"format" validate:"required,oneof=auto term text json yaml toml"`
	Metrics bool   `koanf:"metrics" toml:"metrics" json:"metrics" yaml:"metrics"`
}

// LoggingConfig controls the log file.
type LoggingConfig struct {
	File bool `koanf:"file" toml:"file" json:"file" yaml:"file"`
}

// Mode returns the configured crane mode.
func (c *Config) Mode() crane.Mode {
	// Validated on load.
	m, _ := crane.ParseMode(c.Simulation.Mode)
	return m
}
