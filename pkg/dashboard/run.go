package dashboard

import (
	"github.com/arthur-debert/fuga/pkg/errors"
	tea "github.com/charmbracelet/bubbletea"
)

// Action is what the user chose when leaving the dashboard.
type Action int

const (
	ActionQuit Action = iota
	ActionCopy
	ActionMove
	ActionLink
)

func (a Action) String() string {
	switch a {
	case ActionCopy:
		return "copy"
	case ActionMove:
		return "move"
	case ActionLink:
		return "link"
	default:
		return "quit"
	}
}

// Exit carries the action and the directory shown when it was chosen.
type Exit struct {
	Action Action
	Dir    string
}

// Run starts a full-screen session and blocks until it ends. bubbletea
// restores the terminal on every exit path, panics included.
func Run(opts Options, programOpts ...tea.ProgramOption) (Exit, error) {
	m, err := New(opts)
	if err != nil {
		return Exit{}, err
	}

	programOpts = append([]tea.ProgramOption{tea.WithAltScreen()}, programOpts...)
	final, err := tea.NewProgram(m, programOpts...).Run()
	if err != nil {
		return Exit{}, errors.Wrap(err, errors.ErrInternal, "dashboard failed")
	}

	model, ok := final.(*Model)
	if !ok {
		return Exit{Action: ActionQuit}, nil
	}
	return model.Exit(), nil
}
