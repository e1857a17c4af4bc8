package dashboard

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/fuga/pkg/errors"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// NewPresetEntry is the first row of the save popup.
const NewPresetEntry = "Create New Preset..."

// PopupKind tells the preset popup what Enter does.
type PopupKind int

const (
	PopupLoad PopupKind = iota
	PopupSave
)

type presetPopup struct {
	kind      PopupKind
	names     []string
	filter    string
	filtering bool
	selection int
}

// items returns the rows shown. The save sentinel ignores the filter.
func (p *presetPopup) items() []string {
	var items []string
	if p.kind == PopupSave {
		items = append(items, NewPresetEntry)
	}
	for _, name := range p.names {
		if Matches(name, p.filter) {
			items = append(items, name)
		}
	}
	return items
}

func (p *presetPopup) selected() (string, bool) {
	items := p.items()
	if p.selection < 0 || p.selection >= len(items) {
		return "", false
	}
	return items[p.selection], true
}

func (p *presetPopup) clamp() {
	n := len(p.items())
	if p.selection >= n {
		p.selection = n - 1
	}
	if p.selection < 0 {
		p.selection = 0
	}
}

func (p *presetPopup) move(delta int) {
	p.selection += delta
	p.clamp()
}

// selectName highlights name, reporting whether it is visible.
func (p *presetPopup) selectName(name string) bool {
	for i, item := range p.items() {
		if item == name && !(p.kind == PopupSave && i == 0) {
			p.selection = i
			return true
		}
	}
	return false
}

type confirmKind int

const (
	confirmReset confirmKind = iota
	confirmOverwrite
	confirmDelete
)

type confirmation struct {
	kind   confirmKind
	preset string
}

func (c confirmation) question() string {
	switch c.kind {
	case confirmOverwrite:
		return fmt.Sprintf("Overwrite preset '%s' with the current marks? [y/N]", c.preset)
	case confirmDelete:
		return fmt.Sprintf("Delete preset '%s'? [y/N]", c.preset)
	default:
		return "Reset marks? [y/N]"
	}
}

func (m *Model) openPopup(kind PopupKind) {
	names, err := m.config.ListPresets()
	if err != nil {
		m.setError(err)
		return
	}
	m.popup = &presetPopup{kind: kind, names: names}
	m.status = status{}
}

// reloadPopup re-reads the preset names, keeping keep highlighted when it
// is still listed.
func (m *Model) reloadPopup(keep string) {
	names, err := m.config.ListPresets()
	if err != nil {
		m.setError(err)
		return
	}
	m.popup.names = names
	if keep == "" || !m.popup.selectName(keep) {
		m.popup.clamp()
	}
}

func (m *Model) updatePopup(msg tea.KeyMsg) tea.Cmd {
	p := m.popup
	if p.filtering {
		switch msg.Type {
		case tea.KeyEsc:
			p.filtering = false
			p.filter = ""
		case tea.KeyEnter:
			p.filtering = false
		case tea.KeyBackspace:
			p.filter = popRune(p.filter)
		case tea.KeyRunes, tea.KeySpace:
			if !msg.Alt {
				p.filter += string(msg.Runes)
			}
		}
		p.clamp()
		return nil
	}

	k := m.keys
	switch {
	case key.Matches(msg, k.Close):
		m.popup = nil
	case key.Matches(msg, k.Select):
		return m.popupSelect()
	case key.Matches(msg, k.Up):
		p.move(-1)
	case key.Matches(msg, k.Down):
		p.move(1)
	case key.Matches(msg, k.Filter):
		p.filtering = true
		p.filter = ""
		p.clamp()
	case p.kind == PopupLoad && key.Matches(msg, k.DeletePreset):
		if name, ok := p.selected(); ok {
			m.confirm = &confirmation{kind: confirmDelete, preset: name}
		}
	}
	return nil
}

func (m *Model) popupSelect() tea.Cmd {
	name, ok := m.popup.selected()
	if !ok {
		m.setStatus(MsgNoPresets)
		return nil
	}

	if m.popup.kind == PopupLoad {
		m.loadPreset(name)
		return nil
	}

	if m.popup.selection == 0 {
		return m.openPrompt()
	}
	m.confirm = &confirmation{kind: confirmOverwrite, preset: name}
	return nil
}

func (m *Model) openPrompt() tea.Cmd {
	input := textinput.New()
	input.Placeholder = "preset name"
	input.CharLimit = 64
	cmd := input.Focus()
	m.prompt = &input
	return cmd
}

func (m *Model) updatePrompt(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.prompt = nil
		m.setStatus(MsgSaveCancelled)
		return nil
	case tea.KeyEnter:
		name := strings.TrimSpace(m.prompt.Value())
		if name == "" {
			m.setError(errors.New(errors.ErrOperationFailed, MsgPresetNameEmpty))
			return nil
		}
		m.prompt = nil
		m.savePreset(name)
		return nil
	}

	input, cmd := m.prompt.Update(msg)
	m.prompt = &input
	return cmd
}

func (m *Model) updateConfirm(msg tea.KeyMsg) {
	c := *m.confirm
	switch msg.String() {
	case "y", "Y":
		m.confirm = nil
		switch c.kind {
		case confirmReset:
			m.resetMarks()
		case confirmOverwrite:
			m.savePreset(c.preset)
		case confirmDelete:
			m.deletePreset(c.preset)
		}
	case "n", "N", "esc":
		m.confirm = nil
		switch c.kind {
		case confirmReset:
			m.setStatus(MsgResetCancelled)
		case confirmOverwrite:
			m.setStatus(MsgOverwriteCancel)
		case confirmDelete:
			m.setStatus(MsgDeleteCancelled)
		}
	}
}

func (m *Model) resetMarks() {
	if err := m.config.ResetMarks(); err != nil {
		m.setError(err)
		return
	}
	if err := m.refreshMarks(); err != nil {
		m.setError(err)
		return
	}
	m.setStatus(MsgMarksCleared)
}

func (m *Model) loadPreset(name string) {
	marks, ok, err := m.config.GetPreset(name)
	if err != nil {
		m.setError(err)
		return
	}
	if !ok {
		m.setError(errors.New(errors.ErrOperationFailed, fmt.Sprintf(MsgPresetNotFound, name)))
		return
	}
	if err := m.config.SetMarkedTargets(marks); err != nil {
		m.setError(err)
		return
	}
	if err := m.refreshMarks(); err != nil {
		m.setError(err)
		return
	}
	m.popup = nil
	m.setStatus(fmt.Sprintf(MsgPresetLoaded, name, len(marks)))
}

// savePreset stores the live mark list under name and highlights it.
func (m *Model) savePreset(name string) {
	if err := m.refreshMarks(); err != nil {
		m.setError(err)
		return
	}
	if err := m.config.SavePreset(name, m.marks); err != nil {
		m.setError(err)
		return
	}
	if m.popup != nil {
		m.reloadPopup("")
		if !m.popup.selectName(name) {
			m.popup.filter = ""
			m.popup.selectName(name)
		}
	}
	m.setStatus(fmt.Sprintf(MsgPresetSaved, name, len(m.marks)))
}

func (m *Model) deletePreset(name string) {
	found, err := m.config.DeletePreset(name)
	if err != nil {
		m.setError(err)
		return
	}
	if !found {
		m.setError(errors.New(errors.ErrOperationFailed, fmt.Sprintf(MsgPresetNotFound, name)))
		return
	}
	if m.popup != nil {
		m.reloadPopup(name)
	}
	m.setStatus(fmt.Sprintf(MsgPresetDeleted, name))
}

// PopupItems returns the preset popup rows, or nil when it is closed.
func (m *Model) PopupItems() []string {
	if m.popup == nil {
		return nil
	}
	return m.popup.items()
}

// PopupSelected returns the highlighted popup row.
func (m *Model) PopupSelected() string {
	if m.popup == nil {
		return ""
	}
	name, _ := m.popup.selected()
	return name
}
