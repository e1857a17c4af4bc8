// Package transfer implements copy, move and link over the mark list.
package transfer

import (
	"fmt"

	"github.com/arthur-debert/fuga/pkg/commands/internal/output"
	"github.com/arthur-debert/fuga/pkg/errors"
	"github.com/arthur-debert/fuga/pkg/logging"
	"github.com/arthur-debert/fuga/pkg/targets"
	"github.com/arthur-debert/fuga/pkg/types"
)

// Options holds options for copy, move and link
type Options struct {
	types.Services

	// Destination is the optional destination argument. Empty means each
	// mark lands under its own name in the working directory.
	Destination string
}

type operation struct {
	verb       string
	present    string
	past       string
	clearMarks bool
	run        func(fs types.FileSystemService, src, dst string) error
}

var (
	copyOp = operation{
		verb: "copy", present: "Copying", past: "copied",
		run: func(fs types.FileSystemService, src, dst string) error { return fs.Copy(src, dst) },
	}
	moveOp = operation{
		verb: "move", present: "Moving", past: "moved", clearMarks: true,
		run: func(fs types.FileSystemService, src, dst string) error { return fs.Move(src, dst) },
	}
	linkOp = operation{
		verb: "link", present: "Linking", past: "linked",
		run: func(fs types.FileSystemService, src, dst string) error { return fs.Link(src, dst) },
	}
)

// Copy copies every marked target. The mark list is kept.
func Copy(opts Options) error { return transfer(opts, copyOp) }

// Move moves every marked target and clears the mark list once all of
// them succeeded.
func Move(opts Options) error { return transfer(opts, moveOp) }

// Link creates a symlink to every marked target. The mark list is kept.
func Link(opts Options) error { return transfer(opts, linkOp) }

func transfer(opts Options, op operation) error {
	logger := logging.GetLogger("commands." + op.verb)
	logger.Info().Str("destination", opts.Destination).Msg("Starting " + op.verb)

	marks, err := opts.Config.GetMarkedTargets()
	if err != nil {
		return err
	}
	if len(marks) == 0 {
		return errors.OperationFailed(output.MsgNoTargets)
	}

	if len(marks) > 1 && opts.Destination != "" {
		many, err := targets.AcceptsMany(opts.FS, opts.Destination)
		if err != nil {
			return err
		}
		if !many {
			return errors.OperationFailed(fmt.Sprintf(output.MsgMultipleToSingle, op.verb))
		}
	}

	p := output.New(opts.UI, opts.Out)
	for _, mark := range marks {
		info, err := opts.FS.Describe(mark)
		if err != nil {
			return err
		}
		if !info.Exists {
			return errors.FileNotFound(mark)
		}

		dst, err := targets.Plan(opts.FS, mark, info, opts.Destination)
		if err != nil {
			return err
		}

		p.Info(output.MsgTransferStart,
			op.present,
			opts.UI.IconFor(info.Kind()),
			opts.UI.Colorize(mark, true),
			opts.UI.Colorize(dst, true))

		if err := op.run(opts.FS, mark, dst); err != nil {
			logger.Debug().Err(err).Str("src", mark).Str("dst", dst).Msg(op.verb + " failed")
			return err
		}

		p.Success(output.MsgTransferDone,
			opts.UI.IconFor(opts.FS.Kind(dst)),
			opts.UI.Colorize(dst, true),
			op.past)
	}

	if op.clearMarks {
		if err := opts.Config.ResetMarks(); err != nil {
			return err
		}
	}

	logger.Info().Int("targets", len(marks)).Msg("Finished " + op.verb)
	return nil
}
