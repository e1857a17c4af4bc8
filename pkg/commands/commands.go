// Package commands provides the command implementations behind the fuga CLI
// and the dashboard.
//
// Each command lives in its own subdirectory:
//   - mark/     - set, add to, list and reset the mark list
//   - transfer/ - copy, move and link the marked targets
//   - preset/   - save, load, list, show and delete presets
//   - internal/ - shared status line output
//
// This file re-exports the command functions so callers need one import.
package commands

import (
	"github.com/arthur-debert/fuga/pkg/commands/mark"
	"github.com/arthur-debert/fuga/pkg/commands/preset"
	"github.com/arthur-debert/fuga/pkg/commands/transfer"
)

// Mark sets, extends, lists or resets the mark list.
type MarkOptions = mark.Options

func Mark(opts MarkOptions) error {
	return mark.Mark(opts)
}

// Copy, Move and Link act on every marked target.
type TransferOptions = transfer.Options

func Copy(opts TransferOptions) error {
	return transfer.Copy(opts)
}

func Move(opts TransferOptions) error {
	return transfer.Move(opts)
}

func Link(opts TransferOptions) error {
	return transfer.Link(opts)
}

// Preset manages named snapshots of the mark list.
type PresetOptions = preset.Options

type PresetAction = preset.Action

const (
	PresetSave   = preset.Save
	PresetLoad   = preset.Load
	PresetList   = preset.List
	PresetShow   = preset.Show
	PresetDelete = preset.Delete
)

func Preset(opts PresetOptions) error {
	return preset.Preset(opts)
}
