package dashboard

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/arthur-debert/fuga/pkg/config"
	"github.com/arthur-debert/fuga/pkg/errors"
	"github.com/arthur-debert/fuga/pkg/logging"
	"github.com/arthur-debert/fuga/pkg/targets"
	"github.com/arthur-debert/fuga/pkg/types"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var log = logging.GetLogger("dashboard")

// Status messages
const (
	MsgMarked          = "Marked %s"
	MsgRemovedMark     = "Removed mark %s"
	MsgCannotMark      = "Cannot mark missing path"
	MsgMarksCleared    = "Marks cleared"
	MsgResetCancelled  = "Reset cancelled"
	MsgEntered         = "Entered %s"
	MsgHiddenShown     = "Hidden files shown"
	MsgHiddenHidden    = "Hidden files hidden"
	MsgFilterCleared   = "Filter cleared"
	MsgFilterNoop      = "Filter already cleared"
	MsgPresetLoaded    = "Preset '%s' loaded. Mark list now tracks %d target(s)."
	MsgPresetSaved     = "Preset '%s' saved with %d target(s)."
	MsgPresetDeleted   = "Preset '%s' deleted."
	MsgPresetNotFound  = "Preset '%s' not found."
	MsgPresetNameEmpty = "Preset name cannot be empty."
	MsgNoPresets       = "No presets saved."
	MsgSaveCancelled   = "Save cancelled"
	MsgOverwriteCancel = "Overwrite cancelled"
	MsgDeleteCancelled = "Delete cancelled"
)

// Options configures a dashboard session.
type Options struct {
	Config types.ConfigRepository
	Files  types.FileSystemService
	FS     types.FS

	// Dir is the directory shown first.
	Dir      string
	Settings config.DashboardSettings

	// Color selects the styled help renderer.
	Color bool
}

type status struct {
	text    string
	isError bool
}

type tickMsg time.Time

// Model is the dashboard session state.
type Model struct {
	config types.ConfigRepository
	files  types.FileSystemService
	fs     types.FS
	keys   KeyMap
	poll   time.Duration
	color  bool

	dir        string
	entries    []Entry
	visible    []int
	selection  int
	showHidden bool
	filter     string
	filtering  bool
	marks      []string
	status     status

	help    bool
	confirm *confirmation
	popup   *presetPopup
	prompt  *textinput.Model

	width    int
	height   int
	helpView string
	helpFor  int
	exit     Exit
}

var _ tea.Model = (*Model)(nil)

// New loads the mark list and the first directory listing.
func New(opts Options) (*Model, error) {
	if opts.Dir == "" {
		return nil, errors.OperationFailed("Dashboard needs a starting directory")
	}
	poll := opts.Settings.PollInterval
	if poll <= 0 {
		poll = config.DefaultPollInterval
	}

	m := &Model{
		config:     opts.Config,
		files:      opts.Files,
		fs:         opts.FS,
		keys:       DefaultKeyMap(),
		poll:       poll,
		color:      opts.Color,
		dir:        filepath.Clean(opts.Dir),
		showHidden: opts.Settings.ShowHidden,
		width:      80,
		height:     24,
		exit:       Exit{Action: ActionQuit},
	}
	if err := m.refreshMarks(); err != nil {
		return nil, err
	}
	if err := m.reload(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Model) Init() tea.Cmd {
	return m.tick()
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.poll, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.refresh()
		return m, m.tick()

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch m.Mode() {
	case ModeHelp:
		m.updateHelp(msg)
	case ModePrompt:
		return m.updatePrompt(msg)
	case ModeConfirm:
		m.updateConfirm(msg)
	case ModePresetPopup:
		return m.updatePopup(msg)
	case ModeFilter:
		m.updateFilter(msg)
	default:
		return m.updateBrowse(msg)
	}
	return nil
}

func (m *Model) updateHelp(msg tea.KeyMsg) {
	if key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Close) {
		m.help = false
	}
}

func (m *Model) updateBrowse(msg tea.KeyMsg) tea.Cmd {
	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		return m.finish(ActionQuit)
	case key.Matches(msg, k.Copy):
		return m.finish(ActionCopy)
	case key.Matches(msg, k.Move):
		return m.finish(ActionMove)
	case key.Matches(msg, k.Link):
		return m.finish(ActionLink)
	case key.Matches(msg, k.Help):
		m.help = true
	case key.Matches(msg, k.Filter):
		m.filtering = true
		m.filter = ""
		m.rebuild()
	case key.Matches(msg, k.ClearFilter):
		m.clearFilter()
	case key.Matches(msg, k.Hidden):
		m.toggleHidden()
	case key.Matches(msg, k.Mark):
		m.toggleMark()
	case key.Matches(msg, k.Up):
		m.moveSelection(-1)
	case key.Matches(msg, k.Down):
		m.moveSelection(1)
	case key.Matches(msg, k.Enter):
		m.enterSelected()
	case key.Matches(msg, k.Parent):
		m.goParent()
	case key.Matches(msg, k.Reset):
		m.confirm = &confirmation{kind: confirmReset}
		m.status = status{}
	case key.Matches(msg, k.LoadPreset):
		m.openPopup(PopupLoad)
	case key.Matches(msg, k.SavePreset):
		m.openPopup(PopupSave)
	}
	return nil
}

func (m *Model) updateFilter(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filtering = false
		m.filter = ""
	case tea.KeyEnter:
		m.filtering = false
		return
	case tea.KeyBackspace:
		m.filter = popRune(m.filter)
	case tea.KeyRunes, tea.KeySpace:
		if msg.Alt {
			return
		}
		m.filter += string(msg.Runes)
	default:
		return
	}
	m.rebuild()
}

func (m *Model) finish(action Action) tea.Cmd {
	m.exit = Exit{Action: action, Dir: m.dir}
	log.Debug().Str("action", action.String()).Str("dir", m.dir).Msg("Dashboard finished")
	return tea.Quit
}

// refresh re-reads the directory and marks on every tick, keeping the
// selected entry when it still exists.
func (m *Model) refresh() {
	selected := m.selectedPath()
	if err := m.reload(); err != nil {
		m.setError(err)
		return
	}
	m.selectPath(selected)
	if err := m.refreshMarks(); err != nil {
		m.setError(err)
	}
}

func (m *Model) reload() error {
	entries, err := readDir(m.fs, m.dir)
	if err != nil {
		return err
	}
	m.entries = entries
	m.rebuild()
	return nil
}

func (m *Model) refreshMarks() error {
	marks, err := m.config.GetMarkedTargets()
	if err != nil {
		return err
	}
	m.marks = marks
	return nil
}

// rebuild recomputes the visible rows and clamps the selection.
func (m *Model) rebuild() {
	m.visible = m.visible[:0]
	for i, entry := range m.entries {
		if entry.Hidden && !m.showHidden {
			continue
		}
		if !Matches(entry.Name, m.filter) {
			continue
		}
		m.visible = append(m.visible, i)
	}
	switch {
	case len(m.visible) == 0:
		m.selection = 0
	case m.selection >= len(m.visible):
		m.selection = len(m.visible) - 1
	}
}

func (m *Model) selectedEntry() (Entry, bool) {
	if m.selection < 0 || m.selection >= len(m.visible) {
		return Entry{}, false
	}
	return m.entries[m.visible[m.selection]], true
}

func (m *Model) selectedPath() string {
	entry, ok := m.selectedEntry()
	if !ok {
		return ""
	}
	return entry.Path
}

func (m *Model) selectPath(path string) {
	for i, idx := range m.visible {
		if m.entries[idx].Path == path {
			m.selection = i
			return
		}
	}
}

func (m *Model) moveSelection(delta int) {
	if len(m.visible) == 0 {
		return
	}
	m.selection += delta
	if m.selection < 0 {
		m.selection = 0
	}
	if m.selection >= len(m.visible) {
		m.selection = len(m.visible) - 1
	}
}

func (m *Model) changeDir(dir string) {
	previous := m.dir
	m.dir = dir
	m.filter = ""
	m.filtering = false
	m.selection = 0
	if err := m.reload(); err != nil {
		m.dir = previous
		_ = m.reload()
		m.setError(err)
		return
	}
	m.setStatus(fmt.Sprintf(MsgEntered, dir))
}

func (m *Model) enterSelected() {
	entry, ok := m.selectedEntry()
	if !ok || !entry.IsDir {
		return
	}
	m.changeDir(entry.Path)
}

func (m *Model) goParent() {
	parent := filepath.Dir(m.dir)
	if parent == m.dir {
		return
	}
	m.changeDir(parent)
}

func (m *Model) toggleHidden() {
	m.showHidden = !m.showHidden
	m.rebuild()
	if m.showHidden {
		m.setStatus(MsgHiddenShown)
	} else {
		m.setStatus(MsgHiddenHidden)
	}
}

func (m *Model) clearFilter() {
	if m.filter == "" {
		m.setStatus(MsgFilterNoop)
		return
	}
	m.filtering = false
	m.filter = ""
	m.rebuild()
	m.setStatus(MsgFilterCleared)
}

func (m *Model) isMarked(path string) bool {
	for _, mark := range m.marks {
		if mark == path {
			return true
		}
	}
	return false
}

func (m *Model) toggleMark() {
	entry, ok := m.selectedEntry()
	if !ok {
		return
	}

	info, err := m.files.Describe(entry.Path)
	if err != nil {
		m.setError(err)
		return
	}
	if !info.Exists {
		m.setError(errors.New(errors.ErrFileNotFound, MsgCannotMark))
		return
	}

	current, err := m.config.GetMarkedTargets()
	if err != nil {
		m.setError(err)
		return
	}

	var next []string
	var msg string
	if m.isMarked(entry.Path) {
		for _, mark := range current {
			if mark != entry.Path {
				next = append(next, mark)
			}
		}
		msg = fmt.Sprintf(MsgRemovedMark, entry.Path)
	} else {
		next = targets.Dedupe(append(current, entry.Path))
		msg = fmt.Sprintf(MsgMarked, entry.Path)
	}

	if err := m.config.SetMarkedTargets(next); err != nil {
		m.setError(err)
		return
	}
	if err := m.refreshMarks(); err != nil {
		m.setError(err)
		return
	}
	m.setStatus(msg)
}

func (m *Model) setStatus(text string) {
	m.status = status{text: text}
}

func (m *Model) setError(err error) {
	log.Debug().Err(err).Msg("Dashboard error")
	m.status = status{text: err.Error(), isError: true}
}

// Dir returns the directory being shown.
func (m *Model) Dir() string { return m.dir }

// Filter returns the browse filter.
func (m *Model) Filter() string { return m.filter }

// Marks returns the mark list as last read.
func (m *Model) Marks() []string { return append([]string(nil), m.marks...) }

// Status returns the status line text and whether it reports an error.
func (m *Model) Status() (string, bool) { return m.status.text, m.status.isError }

// Exit returns what the session asked for when it ended.
func (m *Model) Exit() Exit { return m.exit }

// Selected returns the highlighted entry name, or "".
func (m *Model) Selected() string {
	entry, ok := m.selectedEntry()
	if !ok {
		return ""
	}
	return entry.Name
}

// Visible returns the names of the rows currently shown.
func (m *Model) Visible() []string {
	names := make([]string, len(m.visible))
	for i, idx := range m.visible {
		names[i] = m.entries[idx].Name
	}
	return names
}
