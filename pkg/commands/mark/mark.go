// Package mark implements the mark command: set, add to, list and reset
// the mark list.
package mark

import (
	"github.com/arthur-debert/fuga/pkg/commands/internal/output"
	"github.com/arthur-debert/fuga/pkg/errors"
	"github.com/arthur-debert/fuga/pkg/logging"
	"github.com/arthur-debert/fuga/pkg/targets"
	"github.com/arthur-debert/fuga/pkg/types"
)

// Options holds options for the mark command. List wins over Reset, which
// wins over Add. With none of them set, Paths replaces the mark list.
type Options struct {
	types.Services

	Paths []string
	Add   bool
	List  bool
	Reset bool
}

// Mark runs the selected mark action.
func Mark(opts Options) error {
	logger := logging.GetLogger("commands.mark")
	logger.Info().
		Strs("paths", opts.Paths).
		Bool("add", opts.Add).
		Bool("list", opts.List).
		Bool("reset", opts.Reset).
		Msg("Running mark")

	p := output.New(opts.UI, opts.Out)

	switch {
	case opts.List:
		return list(opts, p)
	case opts.Reset:
		if err := opts.Config.ResetMarks(); err != nil {
			return err
		}
		p.Success(output.MsgMarksCleared)
		return nil
	case opts.Add:
		if len(opts.Paths) == 0 {
			return errors.OperationFailed(output.MsgAddRequiresPaths)
		}
		return add(opts, p)
	case len(opts.Paths) > 0:
		return set(opts, p)
	default:
		return errors.OperationFailed(output.MsgMarkNothingToDo)
	}
}

func set(opts Options, p *output.Printer) error {
	resolved, err := targets.Resolve(opts.FS, opts.Paths)
	if err != nil {
		return err
	}
	marks := targets.Dedupe(targets.Paths(resolved))
	if err := opts.Config.SetMarkedTargets(marks); err != nil {
		return err
	}

	p.Success(output.MsgMarked, len(marks))
	printed := make(map[string]bool, len(marks))
	for _, t := range resolved {
		if printed[t.Path] {
			continue
		}
		printed[t.Path] = true
		p.Target(t.Info.Kind(), t.Path)
	}
	return nil
}

func add(opts Options, p *output.Printer) error {
	resolved, err := targets.Resolve(opts.FS, opts.Paths)
	if err != nil {
		return err
	}
	existing, err := opts.Config.GetMarkedTargets()
	if err != nil {
		return err
	}

	marks := targets.Dedupe(append(append([]string{}, existing...), targets.Paths(resolved)...))
	if err := opts.Config.SetMarkedTargets(marks); err != nil {
		return err
	}

	p.Success(output.MsgMarkAdded, len(marks)-len(existing), len(marks))
	return nil
}

func list(opts Options, p *output.Printer) error {
	marks, err := opts.Config.GetMarkedTargets()
	if err != nil {
		return err
	}
	if len(marks) == 0 {
		p.Info(output.MsgNoTargets)
		return nil
	}

	p.Info(output.MsgMarkedTargets)
	for _, mark := range marks {
		p.Target(opts.FS.Kind(mark), mark)
	}
	return nil
}
