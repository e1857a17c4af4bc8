// Package preset implements named snapshots of the mark list.
package preset

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/fuga/pkg/commands/internal/output"
	"github.com/arthur-debert/fuga/pkg/errors"
	"github.com/arthur-debert/fuga/pkg/logging"
	"github.com/arthur-debert/fuga/pkg/types"
)

// Action selects what the preset command does
type Action int

const (
	Save Action = iota
	Load
	List
	Show
	Delete
)

func (a Action) String() string {
	switch a {
	case Save:
		return "save"
	case Load:
		return "load"
	case List:
		return "list"
	case Show:
		return "show"
	case Delete:
		return "delete"
	default:
		return "unknown"
	}
}

// Options holds options for the preset command. Name is ignored by List.
type Options struct {
	types.Services

	Action Action
	Name   string
}

// Preset runs the selected preset action.
func Preset(opts Options) error {
	logger := logging.GetLogger("commands.preset")
	logger.Info().Str("action", opts.Action.String()).Str("name", opts.Name).Msg("Running preset")

	p := output.New(opts.UI, opts.Out)
	if opts.Action == List {
		return list(opts, p)
	}

	name := strings.TrimSpace(opts.Name)
	if name == "" {
		return errors.OperationFailed(output.MsgPresetNameEmpty)
	}

	switch opts.Action {
	case Save:
		return save(opts, p, name)
	case Load:
		return load(opts, p, name)
	case Show:
		return show(opts, p, name)
	case Delete:
		return remove(opts, p, name)
	default:
		return errors.Newf(errors.ErrInternal, "unknown preset action %d", opts.Action)
	}
}

func save(opts Options, p *output.Printer, name string) error {
	marks, err := opts.Config.GetMarkedTargets()
	if err != nil {
		return err
	}
	if err := opts.Config.SavePreset(name, marks); err != nil {
		return err
	}
	p.Success(output.MsgPresetSaved, name, len(marks))
	return nil
}

func load(opts Options, p *output.Printer, name string) error {
	marks, err := get(opts, name)
	if err != nil {
		return err
	}
	if err := opts.Config.SetMarkedTargets(marks); err != nil {
		return err
	}
	p.Success(output.MsgPresetLoaded, name, len(marks))
	return nil
}

func list(opts Options, p *output.Printer) error {
	names, err := opts.Config.ListPresets()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		p.Info(output.MsgNoPresets)
		return nil
	}
	p.Info(output.MsgSavedPresets)
	for _, name := range names {
		p.Line(output.MsgPresetListItem, name)
	}
	return nil
}

func show(opts Options, p *output.Printer, name string) error {
	marks, err := get(opts, name)
	if err != nil {
		return err
	}
	p.Info(output.MsgPresetHeader, name)
	for _, mark := range marks {
		p.Target(opts.FS.Kind(mark), mark)
	}
	return nil
}

func remove(opts Options, p *output.Printer, name string) error {
	found, err := opts.Config.DeletePreset(name)
	if err != nil {
		return err
	}
	if !found {
		return errors.OperationFailed(fmt.Sprintf(output.MsgPresetNotFound, name))
	}
	p.Success(output.MsgPresetDeleted, name)
	return nil
}

func get(opts Options, name string) ([]string, error) {
	marks, ok, err := opts.Config.GetPreset(name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.OperationFailed(fmt.Sprintf(output.MsgPresetNotFound, name))
	}
	return marks, nil
}
