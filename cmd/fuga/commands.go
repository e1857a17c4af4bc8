package fuga

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/fuga/internal/cli"
	"github.com/arthur-debert/fuga/internal/version"
	"github.com/arthur-debert/fuga/pkg/commands"
	"github.com/arthur-debert/fuga/pkg/config"
	"github.com/arthur-debert/fuga/pkg/dashboard"
	"github.com/arthur-debert/fuga/pkg/logging"
	"github.com/arthur-debert/fuga/pkg/paths"
	"github.com/arthur-debert/fuga/pkg/style"
	"github.com/arthur-debert/fuga/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:     "fuga",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		// No subcommand opens the dashboard
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)

	rootCmd.AddGroup(
		&cobra.Group{ID: "marks", Title: "Marks:"},
		&cobra.Group{ID: "transfer", Title: "Transfer:"},
		&cobra.Group{ID: "misc", Title: "Misc:"},
	)

	rootCmd.AddCommand(newMarkCmd())
	rootCmd.AddCommand(newPresetCmd())
	rootCmd.AddCommand(newCopyCmd())
	rootCmd.AddCommand(newMoveCmd())
	rootCmd.AddCommand(newLinkCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newManCmd())

	return rootCmd
}

// ReportError prints err the way every failed invocation ends: the error
// glyph, then the message. Unreadable settings fall back to the defaults.
func ReportError(w io.Writer, err error) {
	settings := config.Defaults()
	if p, pathErr := paths.New(); pathErr == nil {
		if loaded, loadErr := config.Load(p.SettingsFile()); loadErr == nil {
			settings = loaded
		}
	}
	terminal := ui.New(settings.UI, ui.DetectFormat(w))

	msg := err.Error()
	if terminal.ColorEnabled() {
		msg = style.Render("Error", msg)
	}
	fmt.Fprintf(w, "%s : %s\n", terminal.ErrorIcon(), msg)
}

// setup wires the services against the command's writers.
func setup(cmd *cobra.Command) (*cli.Environment, error) {
	env, err := cli.Setup(cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return nil, fmt.Errorf(MsgErrInitServices, err)
	}
	return env, nil
}

// presetNamesCompletion provides shell completion for preset names
func presetNamesCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	env, err := cli.Setup(io.Discard, io.Discard)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	names, err := env.Config.ListPresets()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	return names, cobra.ShellCompDirectiveNoFileComp
}

func newMarkCmd() *cobra.Command {
	var add, list, reset bool

	cmd := &cobra.Command{
		Use:     "mark [paths...]",
		Short:   MsgMarkShort,
		Long:    MsgMarkLong,
		Example: MsgMarkExample,
		GroupID: "marks",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup(cmd)
			if err != nil {
				return err
			}

			return commands.Mark(commands.MarkOptions{
				Services: env.Services,
				Paths:    args,
				Add:      add,
				List:     list,
				Reset:    reset,
			})
		},
	}

	cmd.Flags().BoolVarP(&add, "add", "a", false, MsgFlagAdd)
	cmd.Flags().BoolVarP(&list, "list", "l", false, MsgFlagList)
	cmd.Flags().BoolVarP(&reset, "reset", "r", false, MsgFlagReset)

	return cmd
}

type transferFunc func(commands.TransferOptions) error

func newTransferCmd(use, short string, run transferFunc) *cobra.Command {
	return &cobra.Command{
		Use:     use + " [destination]",
		Short:   short,
		Long:    MsgTransferLong,
		Example: MsgTransferExample,
		GroupID: "transfer",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup(cmd)
			if err != nil {
				return err
			}

			var destination string
			if len(args) == 1 {
				destination = args[0]
			}

			log.Info().
				Str("command", use).
				Str("destination", destination).
				Msg("Transferring marked targets")

			return run(commands.TransferOptions{
				Services:    env.Services,
				Destination: destination,
			})
		},
	}
}

func newCopyCmd() *cobra.Command {
	return newTransferCmd("copy", MsgCopyShort, commands.Copy)
}

func newMoveCmd() *cobra.Command {
	return newTransferCmd("move", MsgMoveShort, commands.Move)
}

func newLinkCmd() *cobra.Command {
	return newTransferCmd("link", MsgLinkShort, commands.Link)
}

func newPresetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "preset",
		Short:   MsgPresetShort,
		Long:    MsgPresetLong,
		Example: MsgPresetExample,
		GroupID: "marks",
	}

	cmd.AddCommand(newPresetActionCmd("save <name>", MsgPresetSaveShort, commands.PresetSave, nil))
	cmd.AddCommand(newPresetActionCmd("load <name>", MsgPresetLoadShort, commands.PresetLoad, presetNamesCompletion))
	cmd.AddCommand(newPresetActionCmd("list", MsgPresetListShort, commands.PresetList, nil))
	cmd.AddCommand(newPresetActionCmd("show <name>", MsgPresetShowShort, commands.PresetShow, presetNamesCompletion))
	del := newPresetActionCmd("delete <name>", MsgPresetDelShort, commands.PresetDelete, presetNamesCompletion)
	del.Aliases = []string{"rm"}
	cmd.AddCommand(del)

	return cmd
}

type completionFunc func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective)

// newPresetActionCmd builds one preset subcommand. The name argument is
// optional at the cobra level so a missing name reports the same error as
// a blank one.
func newPresetActionCmd(use, short string, action commands.PresetAction, complete completionFunc) *cobra.Command {
	positional := cobra.MaximumNArgs(1)
	if action == commands.PresetList {
		positional = cobra.NoArgs
	}

	return &cobra.Command{
		Use:               use,
		Short:             short,
		Args:              positional,
		ValidArgsFunction: complete,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup(cmd)
			if err != nil {
				return err
			}

			var name string
			if len(args) == 1 {
				name = args[0]
			}

			return commands.Preset(commands.PresetOptions{
				Services: env.Services,
				Action:   action,
				Name:     name,
			})
		},
	}
}

// runDashboard opens the dashboard on the working directory and runs the
// transfer chosen on exit, with the directory on screen as destination.
func runDashboard(cmd *cobra.Command) error {
	env, err := setup(cmd)
	if err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf(MsgErrWorkingDir, err)
	}

	exit, err := dashboard.Run(dashboard.Options{
		Config:   env.Config,
		Files:    env.FS,
		FS:       env.Disk,
		Dir:      cwd,
		Settings: env.Settings.Dashboard,
		Color:    env.Terminal.ColorEnabled(),
	})
	if err != nil {
		return err
	}

	log.Debug().
		Str("action", exit.Action.String()).
		Str("dir", exit.Dir).
		Msg("Dashboard closed")

	return routeExit(env, exit)
}

// routeExit runs the command matching the dashboard exit action.
func routeExit(env *cli.Environment, exit dashboard.Exit) error {
	opts := commands.TransferOptions{
		Services:    env.Services,
		Destination: exit.Dir,
	}

	switch exit.Action {
	case dashboard.ActionCopy:
		return commands.Copy(opts)
	case dashboard.ActionMove:
		return commands.Move(opts)
	case dashboard.ActionLink:
		return commands.Link(opts)
	default:
		return nil
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, MsgVersionFormat, version.Version)
			if version.Commit != "" {
				fmt.Fprintf(out, MsgCommitFormat, version.Commit)
			}
			if version.Date != "" {
				fmt.Fprintf(out, MsgBuiltFormat, version.Date)
			}
		},
	}
}

// ManHeader is shared by the man subcommand and the fuga-manpage tool.
func ManHeader() *doc.GenManHeader {
	return &doc.GenManHeader{
		Title:   "FUGA",
		Section: "1",
		Source:  "fuga " + version.Version,
		Manual:  "fuga manual",
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "man",
		Short:   MsgManShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := doc.GenMan(cmd.Root(), ManHeader(), cmd.OutOrStdout()); err != nil {
				return fmt.Errorf(MsgErrManPage, err)
			}
			return nil
		},
	}
}
