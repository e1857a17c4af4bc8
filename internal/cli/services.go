// Package cli assembles the concrete services the fuga commands run against.
package cli

import (
	"io"

	"github.com/arthur-debert/fuga/pkg/config"
	"github.com/arthur-debert/fuga/pkg/datastore"
	"github.com/arthur-debert/fuga/pkg/errors"
	"github.com/arthur-debert/fuga/pkg/filesystem"
	"github.com/arthur-debert/fuga/pkg/logging"
	"github.com/arthur-debert/fuga/pkg/paths"
	"github.com/arthur-debert/fuga/pkg/types"
	"github.com/arthur-debert/fuga/pkg/ui"
)

// Environment is everything a command invocation needs.
type Environment struct {
	types.Services

	Paths    types.Pather
	Settings *config.Settings
	Store    *datastore.FileStore
	Disk     types.FS
	Terminal *ui.TerminalUI
}

// Setup resolves the fuga directories, loads settings and wires the
// OS-backed services. Status lines go to out, progress bars to errOut.
func Setup(out, errOut io.Writer) (*Environment, error) {
	logger := logging.GetLogger("cli")

	p, err := paths.New()
	if err != nil {
		return nil, err
	}

	settings, err := config.Load(p.SettingsFile())
	if err != nil {
		return nil, errors.Config(err)
	}

	disk := filesystem.NewOS()
	store := datastore.New(disk, p.ConfigFile(), p.BoxPath())
	terminal := ui.New(settings.UI, ui.DetectFormat(out))
	files := filesystem.NewService(disk, filesystem.WithProgress(ui.ProgressFactory(errOut)))

	logger.Debug().
		Str("config_file", p.ConfigFile()).
		Str("settings_file", p.SettingsFile()).
		Bool("disable_emoji", settings.UI.DisableEmoji).
		Msg("Services ready")

	return &Environment{
		Services: types.Services{
			Config: store,
			FS:     files,
			UI:     terminal,
			Out:    out,
		},
		Paths:    p,
		Settings: settings,
		Store:    store,
		Disk:     disk,
		Terminal: terminal,
	}, nil
}
