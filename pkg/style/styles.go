package style

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ColorDef is an adaptive color: one value per terminal background.
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef is one named style. Color fields name entries of the colors map.
type StyleDef struct {
	Bold             bool   `yaml:"bold,omitempty"`
	Italic           bool   `yaml:"italic,omitempty"`
	Foreground       string `yaml:"foreground,omitempty"`
	Background       string `yaml:"background,omitempty"`
	Border           string `yaml:"border,omitempty"`
	BorderForeground string `yaml:"borderForeground,omitempty"`
	MarginBottom     int    `yaml:"marginBottom,omitempty"`
	PaddingLeft      int    `yaml:"paddingLeft,omitempty"`
	PaddingRight     int    `yaml:"paddingRight,omitempty"`
}

// Config is the layout of styles.yaml.
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

var (
	registry = map[string]lipgloss.Style{}
	colors   = map[string]lipgloss.AdaptiveColor{}
)

//go:embed styles.yaml
var embeddedStyles []byte

func init() {
	// An unusable embedded file leaves every style plain.
	_ = LoadStylesFromData(embeddedStyles)
}

// LoadStylesFromData replaces the registry with the styles in data. On a
// parse error the current styles stay in place.
func LoadStylesFromData(data []byte) error {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("failed to parse styles data: %w", err)
	}

	palette := make(map[string]lipgloss.AdaptiveColor, len(cfg.Colors))
	for name, def := range cfg.Colors {
		palette[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	styles := make(map[string]lipgloss.Style, len(cfg.Styles))
	for name, def := range cfg.Styles {
		styles[name] = buildStyle(def, palette)
	}

	colors, registry = palette, styles
	return nil
}

func buildStyle(def StyleDef, palette map[string]lipgloss.AdaptiveColor) lipgloss.Style {
	s := lipgloss.NewStyle().Bold(def.Bold).Italic(def.Italic)

	if c, ok := palette[def.Foreground]; ok {
		s = s.Foreground(c)
	}
	if c, ok := palette[def.Background]; ok {
		s = s.Background(c)
	}

	switch def.Border {
	case "rounded":
		s = s.Border(lipgloss.RoundedBorder())
	case "normal":
		s = s.Border(lipgloss.NormalBorder())
	}
	if c, ok := palette[def.BorderForeground]; ok {
		s = s.BorderForeground(c)
	}

	if def.MarginBottom > 0 {
		s = s.MarginBottom(def.MarginBottom)
	}
	if def.PaddingLeft > 0 || def.PaddingRight > 0 {
		s = s.Padding(0, def.PaddingRight, 0, def.PaddingLeft)
	}
	return s
}

// Get returns the named style, or a plain one for unknown names.
func Get(name string) lipgloss.Style {
	if s, ok := registry[name]; ok {
		return s
	}
	return lipgloss.NewStyle()
}

// Render renders text with the named style
func Render(name, text string) string {
	return Get(name).Render(text)
}
