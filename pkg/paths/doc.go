// Package paths provides centralized path handling for cranes.
//
// It resolves the XDG base directories used by the tool and the directory
// holding puzzle inputs.
//
// # Environment Variables
//
//   - CRANES_CONFIG_DIR: Override XDG config directory (default: $XDG_CONFIG_HOME/cranes)
//   - CRANES_DATA_DIR: Override XDG data directory (default: $XDG_DATA_HOME/cranes)
//   - XDG_STATE_HOME: State home holding the log file (default: ~/.local/state)
//
// # Usage
//
//	p, err := paths.New("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cfg := p.ConfigFile()       // $XDG_CONFIG_HOME/cranes/config.toml
//	in := p.InputPath("day05")  // ./inputs/day05
package paths
