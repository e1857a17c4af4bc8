package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/arthur-debert/fuga/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// EnvPrefix is the prefix of every environment variable fuga reads.
const EnvPrefix = "FUGA_"

// envKeys maps the supported environment variables to settings keys.
// Anything else carrying the prefix (FUGA_CONFIG_DIR, ...) is ignored here.
var envKeys = map[string]string{
	"FUGA_DISABLE_EMOJI": "ui.disable_emoji",
	"FUGA_NO_COLOR":      "ui.no_color",
	"FUGA_POLL_INTERVAL": "dashboard.poll_interval",
	"FUGA_SHOW_HIDDEN":   "dashboard.show_hidden",
}

// Settings is the decoded configuration.
type Settings struct {
	UI        UISettings        `koanf:"ui"`
	Dashboard DashboardSettings `koanf:"dashboard"`
}

// UISettings controls glyphs and colors.
type UISettings struct {
	DisableEmoji bool `koanf:"disable_emoji"`
	NoColor      bool `koanf:"no_color"`
}

// DashboardSettings controls the interactive session.
type DashboardSettings struct {
	PollInterval time.Duration `koanf:"poll_interval"`
	ShowHidden   bool          `koanf:"show_hidden"`
}

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

var log = logging.GetLogger("config")

// Load builds Settings from the defaults, settingsFile (when it exists) and
// the environment. An empty settingsFile skips the file layer.
func Load(settingsFile string) (*Settings, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if settingsFile != "" {
		if _, err := os.Stat(settingsFile); err == nil {
			if err := k.Load(file.Provider(settingsFile), toml.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load settings from %s: %w", settingsFile, err)
			}
			log.Debug().Str("path", settingsFile).Msg("Loaded settings file")
		}
	}

	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envValue), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var settings Settings
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &settings, unmarshalConf); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	if settings.Dashboard.PollInterval <= 0 {
		settings.Dashboard.PollInterval = DefaultPollInterval
	}

	return &settings, nil
}

// DefaultPollInterval is the dashboard redraw ceiling.
const DefaultPollInterval = 150 * time.Millisecond

// Defaults returns the embedded settings with no file or environment applied.
func Defaults() *Settings {
	return &Settings{
		Dashboard: DashboardSettings{PollInterval: DefaultPollInterval},
	}
}

func envValue(key, value string) (string, interface{}) {
	target, ok := envKeys[key]
	if !ok {
		return "", nil
	}
	switch target {
	case "ui.disable_emoji", "ui.no_color", "dashboard.show_hidden":
		return target, IsTruthy(value)
	default:
		return target, strings.TrimSpace(value)
	}
}

// IsTruthy accepts exactly 1, true, TRUE and True.
func IsTruthy(value string) bool {
	switch value {
	case "1", "true", "TRUE", "True":
		return true
	}
	return false
}
