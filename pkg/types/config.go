package types

// AppConfig is the persisted state file.
type AppConfig struct {
	UserConfig UserConfig `toml:"user_config"`
	Data       Data       `toml:"data"`
}

// UserConfig holds user level settings stored alongside the marks.
type UserConfig struct {
	BoxPath string `toml:"box_path"`
}

// Data holds the mark list and presets. Target is the legacy single mark,
// only ever read for migration.
type Data struct {
	Targets []string            `toml:"targets"`
	Target  string              `toml:"target,omitempty"`
	Presets map[string][]string `toml:"presets,omitempty"`
}
