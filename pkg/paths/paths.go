package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/cranes/pkg/errors"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for cranes
	EnvConfigDir = "CRANES_CONFIG_DIR"

	// EnvDataDir overrides the XDG data directory for cranes
	EnvDataDir = "CRANES_DATA_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// AppDirName is the directory name for cranes-specific files
	AppDirName = "cranes"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"

	// DefaultInputsDir is where inputs are looked up when no path is given
	DefaultInputsDir = "inputs"

	// LogFileName is the name of the log file
	LogFileName = "cranes.log"
)

// Paths provides centralized path management for cranes
type Paths interface {
	ConfigDir() string
	ConfigFile() string
	DataDir() string
	StateDir() string
	LogFilePath() string
	InputsDir() string
	InputPath(name string) string
}

type paths struct {
	inputsDir string
	xdgConfig string
	xdgData   string
	xdgState  string
}

// New creates a new Paths instance. An empty inputsDir selects
// DefaultInputsDir relative to the working directory.
func New(inputsDir string) (Paths, error) {
	p := &paths{inputsDir: DefaultInputsDir}
	if inputsDir != "" {
		if err := ValidatePath(inputsDir); err != nil {
			return nil, err
		}
		p.inputsDir = expandHome(inputsDir)
	}

	if err := p.setupXDGDirs(); err != nil {
		return nil, err
	}
	return p, nil
}

// setupXDGDirs initializes XDG directories, respecting environment overrides
func (p *paths) setupXDGDirs() error {
	if configDir := os.Getenv(EnvConfigDir); configDir != "" {
		p.xdgConfig = expandHome(configDir)
	} else {
		p.xdgConfig = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	if dataDir := os.Getenv(EnvDataDir); dataDir != "" {
		p.xdgData = expandHome(dataDir)
	} else {
		p.xdgData = filepath.Join(xdg.DataHome, AppDirName)
	}

	// State directory - checked manually so XDG_STATE_HOME changes in
	// tests are honoured after xdg has cached its values
	if stateDir := os.Getenv("XDG_STATE_HOME"); stateDir != "" {
		p.xdgState = filepath.Join(stateDir, AppDirName)
	} else {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to find home directory")
		}
		p.xdgState = filepath.Join(homeDir, ".local", "state", AppDirName)
	}

	return nil
}

// ConfigDir returns the XDG config directory for cranes
func (p *paths) ConfigDir() string {
	return p.xdgConfig
}

// ConfigFile returns the user configuration file path
func (p *paths) ConfigFile() string {
	return filepath.Join(p.xdgConfig, ConfigFileName)
}

// DataDir returns the XDG data directory for cranes
func (p *paths) DataDir() string {
	return p.xdgData
}

// StateDir returns the XDG state directory for cranes
func (p *paths) StateDir() string {
	return p.xdgState
}

// LogFilePath returns the log file path
func (p *paths) LogFilePath() string {
	return filepath.Join(p.xdgState, LogFileName)
}

// InputsDir returns the directory holding named inputs
func (p *paths) InputsDir() string {
	return p.inputsDir
}

// InputPath returns the fallback location of the input called name
func (p *paths) InputPath(name string) string {
	return filepath.Join(p.inputsDir, name)
}

// ExpandHome expands a leading ~ to the home directory
func ExpandHome(path string) string {
	return expandHome(path)
}

func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}

	// Handle both ~/ and ~
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~something (not the user's home)
	return path
}

// ValidatePath rejects paths that can never be opened.
func ValidatePath(path string) error {
	if path == "" {
		return errors.New(errors.ErrInvalidInput, "path cannot be empty")
	}

	if strings.Contains(path, "\x00") {
		return errors.New(errors.ErrInvalidInput, "path contains null bytes")
	}

	// Check path length (common filesystem limit)
	if len(path) > 4096 {
		return errors.New(errors.ErrInvalidInput, "path exceeds maximum length")
	}

	return nil
}
