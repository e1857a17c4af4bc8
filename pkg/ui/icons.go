package ui

import "github.com/arthur-debert/fuga/pkg/types"

// IconSet is one family of status glyphs.
type IconSet struct {
	File    string
	Dir     string
	Missing string
	Info    string
	Success string
	Error   string
}

// EmojiIcons is the default set.
var EmojiIcons = IconSet{
	File:    "📄",
	Dir:     "📁",
	Missing: "❌",
	Info:    "ℹ️ ",
	Success: "✅",
	Error:   "❌",
}

// ASCIIIcons is used when emoji are disabled.
var ASCIIIcons = IconSet{
	File:    "[FILE]",
	Dir:     "[DIR]",
	Missing: "[ERR]",
	Info:    "[i] ",
	Success: "[OK]",
	Error:   "[ERR]",
}

// For returns the glyph of kind.
func (s IconSet) For(kind types.TargetType) string {
	switch kind {
	case types.TargetFile:
		return s.File
	case types.TargetDir:
		return s.Dir
	default:
		return s.Missing
	}
}
