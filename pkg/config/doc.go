// Package config loads fuga's user settings.
//
// Settings are layered with koanf: the embedded defaults.toml, then an
// optional settings.toml in the config directory, then FUGA_* environment
// variables. Marks and presets are not settings; they live in the state
// file handled by pkg/datastore.
package config
