package dashboard

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every binding the dashboard reacts to.
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Enter       key.Binding
	Parent      key.Binding
	Mark        key.Binding
	Copy        key.Binding
	Move        key.Binding
	Link        key.Binding
	Filter      key.Binding
	ClearFilter key.Binding
	Hidden      key.Binding
	Reset       key.Binding
	LoadPreset  key.Binding
	SavePreset  key.Binding
	Help        key.Binding
	Quit        key.Binding

	// Preset popup
	Select       key.Binding
	Close        key.Binding
	DeletePreset key.Binding
}

// DefaultKeyMap returns the stock bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "move down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("l", "right", "enter"),
			key.WithHelp("l/enter", "enter directory"),
		),
		Parent: key.NewBinding(
			key.WithKeys("h", "left", "backspace"),
			key.WithHelp("h/backspace", "parent directory"),
		),
		Mark: key.NewBinding(
			key.WithKeys("m", " "),
			key.WithHelp("m/space", "toggle mark"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy marks here"),
		),
		Move: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "move marks here"),
		),
		Link: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "link marks here"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		ClearFilter: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "clear filter"),
		),
		Hidden: key.NewBinding(
			key.WithKeys(".", "ctrl+h"),
			key.WithHelp("./ctrl+h", "toggle hidden files"),
		),
		Reset: key.NewBinding(
			key.WithKeys("R", "ctrl+r"),
			key.WithHelp("R/ctrl+r", "reset mark list"),
		),
		LoadPreset: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "load preset"),
		),
		SavePreset: key.NewBinding(
			key.WithKeys("P"),
			key.WithHelp("P", "save preset"),
		),
		Help: key.NewBinding(
			key.WithKeys("?", "f1"),
			key.WithHelp("?/F1", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q/esc/ctrl+c", "quit"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		DeletePreset: key.NewBinding(
			key.WithKeys("D", "x"),
			key.WithHelp("D/x", "delete preset"),
		),
	}
}

// browseBindings lists the bindings shown in the help overlay, in order.
func (k KeyMap) browseBindings() []key.Binding {
	return []key.Binding{
		k.Quit, k.Mark, k.Copy, k.Move, k.Link,
		k.Up, k.Down, k.Parent, k.Enter,
		k.Hidden, k.Filter, k.ClearFilter, k.Reset,
		k.LoadPreset, k.SavePreset, k.DeletePreset, k.Help,
	}
}
