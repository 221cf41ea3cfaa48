// Package config handles configuration management for cranes.
// It layers the embedded defaults, the user's TOML file, CRANES_*
// environment variables and command-line flags, in that order.
package config
