package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/fuga/pkg/errors"
	"github.com/arthur-debert/fuga/pkg/types"
)

// Environment variable names
const (
	// EnvFugaConfigDir overrides the XDG config directory for fuga
	EnvFugaConfigDir = "FUGA_CONFIG_DIR"

	// EnvFugaStateDir overrides the XDG state directory for fuga
	EnvFugaStateDir = "FUGA_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Names inside the fuga directories. These define the on-disk layout and
// are not user-configurable.
const (
	// FugaDirName is the directory name for fuga-specific files
	FugaDirName = "fuga"

	// ConfigFileName holds marks and presets
	ConfigFileName = "fuga.toml"

	// SettingsFileName holds optional user settings
	SettingsFileName = "settings.toml"

	// BoxDirName is the default box directory
	BoxDirName = "box"

	// LogFileName is the name of the log file
	LogFileName = "fuga.log"
)

type paths struct {
	configDir string
	stateDir  string
}

// New resolves fuga's directories from the environment.
func New() (types.Pather, error) {
	p := &paths{}

	if dir := os.Getenv(EnvFugaConfigDir); dir != "" {
		p.configDir = expandHome(dir)
	} else if xdg.ConfigHome != "" {
		p.configDir = filepath.Join(xdg.ConfigHome, FugaDirName)
	}
	if p.configDir == "" {
		return nil, errors.ConfigPathMissing()
	}

	absConfig, err := filepath.Abs(p.configDir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigPathMissing, "failed to get absolute path for config dir")
	}
	p.configDir = absConfig

	if dir := os.Getenv(EnvFugaStateDir); dir != "" {
		p.stateDir = expandHome(dir)
	} else {
		p.stateDir = filepath.Join(xdg.StateHome, FugaDirName)
	}

	return p, nil
}

func (p *paths) ConfigDir() string    { return p.configDir }
func (p *paths) ConfigFile() string   { return filepath.Join(p.configDir, ConfigFileName) }
func (p *paths) SettingsFile() string { return filepath.Join(p.configDir, SettingsFileName) }
func (p *paths) BoxPath() string      { return filepath.Join(p.configDir, BoxDirName) }
func (p *paths) StateDir() string     { return p.stateDir }
func (p *paths) LogFilePath() string  { return filepath.Join(p.stateDir, LogFileName) }

// expandHome expands a leading ~ to the user's home directory
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
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
