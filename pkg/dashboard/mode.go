package dashboard

// Mode is the overlay that currently receives keys.
type Mode int

const (
	ModeBrowse Mode = iota
	ModeFilter
	ModePresetPopup
	ModeConfirm
	ModePrompt
	ModeHelp
)

func (m Mode) String() string {
	switch m {
	case ModeBrowse:
		return "browse"
	case ModeFilter:
		return "filter"
	case ModePresetPopup:
		return "preset-popup"
	case ModeConfirm:
		return "confirm"
	case ModePrompt:
		return "prompt"
	case ModeHelp:
		return "help"
	default:
		return "unknown"
	}
}

// Mode returns the active mode. Overlays are checked highest first so a
// confirmation raised from the preset popup owns the keyboard until it is
// answered.
func (m *Model) Mode() Mode {
	switch {
	case m.help:
		return ModeHelp
	case m.prompt != nil:
		return ModePrompt
	case m.confirm != nil:
		return ModeConfirm
	case m.popup != nil:
		return ModePresetPopup
	case m.filtering:
		return ModeFilter
	default:
		return ModeBrowse
	}
}
