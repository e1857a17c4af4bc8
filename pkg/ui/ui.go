// Package ui implements the terminal presentation used by the commands:
// status glyphs, color, and the byte progress bar.
package ui

import (
	"os"

	"github.com/arthur-debert/fuga/pkg/config"
	"github.com/arthur-debert/fuga/pkg/style"
	"github.com/arthur-debert/fuga/pkg/types"
)

// TerminalUI is the UIService for interactive and piped output.
type TerminalUI struct {
	icons IconSet
	color bool
}

var _ types.UIService = (*TerminalUI)(nil)

// New creates a TerminalUI. FormatAuto is resolved against stdout.
func New(settings config.UISettings, format Format) *TerminalUI {
	if format == FormatAuto {
		format = DetectFormat(os.Stdout)
	}
	icons := EmojiIcons
	if settings.DisableEmoji {
		icons = ASCIIIcons
	}
	return &TerminalUI{
		icons: icons,
		color: format == FormatTerminal && !settings.NoColor,
	}
}

// Colorize paints text green, optionally bold.
func (u *TerminalUI) Colorize(text string, bold bool) string {
	if !u.color {
		return text
	}
	s := style.Get("StatusOk")
	if bold {
		s = s.Bold(true)
	}
	return s.Render(text)
}

func (u *TerminalUI) InformationIcon() string { return u.icons.Info }
func (u *TerminalUI) SuccessIcon() string     { return u.icons.Success }
func (u *TerminalUI) ErrorIcon() string       { return u.icons.Error }

func (u *TerminalUI) IconFor(kind types.TargetType) string {
	return u.icons.For(kind)
}

// ColorEnabled reports whether styles are rendered.
func (u *TerminalUI) ColorEnabled() bool {
	return u.color
}
