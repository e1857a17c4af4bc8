package ui

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format selects between styled and plain output.
type Format int

const (
	// FormatAuto is resolved by DetectFormat against stdout
	FormatAuto Format = iota
	// FormatTerminal renders colors
	FormatTerminal
	// FormatText renders plain text
	FormatText
)

func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatTerminal:
		return "term"
	case FormatText:
		return "text"
	default:
		return "unknown"
	}
}

// DetectFormat returns FormatTerminal only for a color-capable terminal.
// Buffers, pipes and NO_COLOR all give FormatText.
func DetectFormat(out io.Writer) Format {
	f, ok := out.(*os.File)
	if !ok {
		return FormatText
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return FormatText
	}
	if termenv.NewOutput(f).EnvColorProfile() == termenv.Ascii {
		return FormatText
	}
	return FormatTerminal
}
