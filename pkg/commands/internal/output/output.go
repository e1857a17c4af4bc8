// Package output writes the status lines shared by every command.
package output

import (
	"fmt"
	"io"

	"github.com/arthur-debert/fuga/pkg/types"
)

// User-facing messages
const (
	MsgNoTargets        = "No targets marked."
	MsgMultipleToSingle = "Cannot %s multiple items to a single file path."
	MsgTransferStart    = "%s %s %s -> %s"
	MsgTransferDone     = "%s %s %s."
	MsgMarked           = "Marked %d target(s)."
	MsgMarkAdded        = "Added %d target(s). Mark list now tracks %d target(s)."
	MsgMarkedTargets    = "Marked targets:"
	MsgMarksCleared     = "Mark list cleared."
	MsgAddRequiresPaths = "--add requires at least one path to mark"
	MsgMarkNothingToDo  = "Provide at least one path, --add with paths, or use --list/--reset"
	MsgPresetNameEmpty  = "Preset name cannot be empty."
	MsgPresetSaved      = "Preset '%s' saved with %d target(s)."
	MsgPresetLoaded     = "Preset '%s' loaded. Mark list now tracks %d target(s)."
	MsgPresetNotFound   = "Preset '%s' not found."
	MsgPresetDeleted    = "Preset '%s' deleted."
	MsgNoPresets        = "No presets saved."
	MsgSavedPresets     = "Saved presets:"
	MsgPresetHeader     = "Preset '%s':"
	MsgPresetListItem   = "- %s"
	MsgTargetItem       = "%s %s"
)

// Printer prefixes lines with the UI's status glyphs.
type Printer struct {
	ui  types.UIService
	out io.Writer
}

// New creates a Printer writing to out.
func New(ui types.UIService, out io.Writer) *Printer {
	return &Printer{ui: ui, out: out}
}

// Info writes "<info> : message".
func (p *Printer) Info(format string, args ...interface{}) {
	p.status(p.ui.InformationIcon(), format, args...)
}

// Success writes "<success> : message".
func (p *Printer) Success(format string, args ...interface{}) {
	p.status(p.ui.SuccessIcon(), format, args...)
}

// Line writes a bare line.
func (p *Printer) Line(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(p.out, format+"\n", args...)
}

// Target writes "<icon> <path>" for a path of the given kind.
func (p *Printer) Target(kind types.TargetType, path string) {
	p.Line(MsgTargetItem, p.ui.IconFor(kind), p.ui.Colorize(path, false))
}

func (p *Printer) status(icon, format string, args ...interface{}) {
	_, _ = fmt.Fprintf(p.out, "%s : %s\n", icon, fmt.Sprintf(format, args...))
}
