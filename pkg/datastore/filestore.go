package datastore

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/fuga/pkg/errors"
	"github.com/arthur-debert/fuga/pkg/logging"
	"github.com/arthur-debert/fuga/pkg/types"
	"github.com/pelletier/go-toml/v2"
)

var log = logging.GetLogger("datastore")

// FileStore is the ConfigRepository backed by a TOML file.
type FileStore struct {
	fs         types.FS
	path       string
	defaultBox string
}

var _ types.ConfigRepository = (*FileStore)(nil)

// New creates a FileStore for the file at path. defaultBox fills
// user_config.box_path when it is empty.
func New(fs types.FS, path, defaultBox string) *FileStore {
	return &FileStore{fs: fs, path: path, defaultBox: defaultBox}
}

// Path returns the state file location.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the state file. A missing file yields an empty config, which
// is written back once the box path default has been applied.
func (s *FileStore) Load() (*types.AppConfig, error) {
	if s.path == "" {
		return nil, errors.ConfigPathMissing()
	}

	cfg := &types.AppConfig{}
	data, err := s.fs.ReadFile(s.path)
	switch {
	case os.IsNotExist(err):
		log.Debug().Str("path", s.path).Msg("State file missing, starting empty")
	case err != nil:
		return nil, errors.Config(err)
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Config(err)
		}
	}

	if cfg.UserConfig.BoxPath == "" {
		if s.defaultBox == "" {
			return nil, errors.ConfigPathMissing()
		}
		cfg.UserConfig.BoxPath = s.defaultBox
		if err := s.Store(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// Store writes cfg as a whole.
func (s *FileStore) Store(cfg *types.AppConfig) error {
	if s.path == "" {
		return errors.ConfigPathMissing()
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return errors.Config(err)
	}
	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return errors.Config(err)
	}
	if err := s.fs.WriteFile(s.path, data, 0644); err != nil {
		return errors.Config(err)
	}
	log.Debug().Str("path", s.path).Int("targets", len(cfg.Data.Targets)).Msg("Stored state")
	return nil
}

// GetMarkedTargets returns the mark list, migrating legacy state and
// dropping blank entries. The file is rewritten only when something changed.
func (s *FileStore) GetMarkedTargets() ([]string, error) {
	cfg, err := s.Load()
	if err != nil {
		return nil, err
	}

	if migrateTargets(&cfg.Data) {
		log.Info().Strs("targets", cfg.Data.Targets).Msg("Migrated legacy mark state")
		if err := s.Store(cfg); err != nil {
			return nil, err
		}
	}

	return cfg.Data.Targets, nil
}

// migrateTargets normalizes data in place and reports whether it changed.
func migrateTargets(data *types.Data) bool {
	mutated := false

	kept := data.Targets[:0]
	for _, target := range data.Targets {
		if strings.TrimSpace(target) == "" {
			mutated = true
			continue
		}
		kept = append(kept, target)
	}
	data.Targets = kept

	if data.Target == "" {
		return mutated
	}

	if len(data.Targets) == 0 && strings.TrimSpace(data.Target) != "" {
		data.Targets = []string{data.Target}
	}
	data.Target = ""
	return true
}

// SetMarkedTargets replaces the mark list and clears the legacy field.
func (s *FileStore) SetMarkedTargets(targets []string) error {
	cfg, err := s.Load()
	if err != nil {
		return err
	}
	cfg.Data.Targets = append([]string{}, targets...)
	cfg.Data.Target = ""
	return s.Store(cfg)
}

// ResetMarks empties the mark list.
func (s *FileStore) ResetMarks() error {
	return s.SetMarkedTargets(nil)
}

// ListPresets returns preset names in sorted order.
func (s *FileStore) ListPresets() ([]string, error) {
	cfg, err := s.Load()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(cfg.Data.Presets))
	for name := range cfg.Data.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// GetPreset returns the preset's paths and whether it exists.
func (s *FileStore) GetPreset(name string) ([]string, bool, error) {
	cfg, err := s.Load()
	if err != nil {
		return nil, false, err
	}
	targets, ok := cfg.Data.Presets[name]
	return targets, ok, nil
}

// SavePreset creates or overwrites a preset.
func (s *FileStore) SavePreset(name string, targets []string) error {
	cfg, err := s.Load()
	if err != nil {
		return err
	}
	if cfg.Data.Presets == nil {
		cfg.Data.Presets = make(map[string][]string)
	}
	cfg.Data.Presets[name] = append([]string{}, targets...)
	return s.Store(cfg)
}

// DeletePreset removes a preset and reports whether it existed.
func (s *FileStore) DeletePreset(name string) (bool, error) {
	cfg, err := s.Load()
	if err != nil {
		return false, err
	}
	if _, ok := cfg.Data.Presets[name]; !ok {
		return false, nil
	}
	delete(cfg.Data.Presets, name)
	return true, s.Store(cfg)
}
