package dashboard

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/fuga/pkg/style"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
)

const browseHint = "[q] quit  [m]/[space] mark  [c] copy  [v] move  [s] link  [/] filter  [ctrl+l] clear filter  [.] hidden  [p]/[P] presets  [?] help"

// View redraws the whole screen.
func (m *Model) View() string {
	if m.help {
		if m.helpView == "" || m.helpFor != m.width {
			m.helpView = renderHelp(helpMarkdown(m.keys), m.width-4, m.color)
			m.helpFor = m.width
		}
		return m.helpView
	}

	header := style.Render("Header", "fuga") + "  " +
		style.Render("Path", truncateLeft(m.dir, m.width-8))

	rows := m.height - 3
	if rows < 3 {
		rows = 3
	}
	leftWidth := m.width * 7 / 10
	rightWidth := m.width - leftWidth - 1

	var body string
	if m.popup != nil {
		body = m.popupView(leftWidth, rows)
	} else {
		body = m.listView(leftWidth, rows)
	}
	body = lipgloss.JoinHorizontal(lipgloss.Top, body, " ", m.marksView(rightWidth, rows))

	return lipgloss.JoinVertical(lipgloss.Left, header, body, m.statusView())
}

func (m *Model) listView(width, rows int) string {
	if len(m.visible) == 0 {
		text := "Empty directory"
		if m.filter != "" {
			text = "No entries match the filter"
		}
		return style.Render("Muted", runewidth.FillRight(text, width))
	}

	start := 0
	if m.selection >= rows {
		start = m.selection - rows + 1
	}
	end := start + rows
	if end > len(m.visible) {
		end = len(m.visible)
	}

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, m.entryLine(m.entries[m.visible[i]], width, i == m.selection))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) entryLine(entry Entry, width int, selected bool) string {
	marker := " "
	if m.isMarked(entry.Path) {
		marker = "*"
	}
	label, size := "FILE", humanize.Bytes(uint64(entry.Size))
	if entry.IsDir {
		label, size = "DIR", ""
	}

	const sizeWidth = 10
	nameWidth := width - sizeWidth
	if nameWidth < 10 {
		nameWidth = 10
	}
	line := fmt.Sprintf("[%s] %-4s %s", marker, label, entry.Name)
	line = runewidth.FillRight(runewidth.Truncate(line, nameWidth, "…"), nameWidth) +
		fmt.Sprintf("%*s", sizeWidth, size)

	switch {
	case selected:
		return style.Render("Selected", line)
	case marker == "*":
		return style.Render("Marked", line)
	case entry.IsDir:
		return style.Render("Dir", line)
	default:
		return style.Render("File", line)
	}
}

func (m *Model) marksView(width, rows int) string {
	lines := []string{style.Render("Header", fmt.Sprintf("Marked Targets (%d)", len(m.marks)))}
	if len(m.marks) == 0 {
		lines = append(lines, style.Render("Muted", "No targets marked"))
	}
	for i, mark := range m.marks {
		if i >= rows-1 {
			lines = append(lines, style.Render("Muted", fmt.Sprintf("… %d more", len(m.marks)-i)))
			break
		}
		lines = append(lines, style.Render("Path", truncateLeft(mark, width)))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) popupView(width, rows int) string {
	p := m.popup
	title := "Load Preset"
	if p.kind == PopupSave {
		title = "Save Preset"
	}

	lines := []string{style.Render("PopupTitle", title)}
	if p.filtering || p.filter != "" {
		cursor := ""
		if p.filtering {
			cursor = "_"
		}
		lines = append(lines, style.Render("Prompt", "Filter: "+p.filter+cursor))
	}

	items := p.items()
	if len(items) == 0 {
		lines = append(lines, style.Render("Muted", MsgNoPresets))
	}
	for i, item := range items {
		if i >= rows-4 {
			break
		}
		line := runewidth.Truncate(item, width-6, "…")
		if i == p.selection {
			line = style.Render("Selected", "> "+line)
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}

	if m.prompt != nil {
		lines = append(lines, "", style.Render("Prompt", "Name: ")+m.prompt.View())
	}

	return style.Get("Popup").Width(width - 2).Render(strings.Join(lines, "\n"))
}

func (m *Model) statusView() string {
	var base string
	switch m.Mode() {
	case ModeFilter:
		base = "Filter: " + m.filter + "_"
	case ModeConfirm:
		base = m.confirm.question()
	case ModePrompt:
		base = "[enter] save  [esc] cancel"
	case ModePresetPopup:
		base = "[enter] select  [j/k] move  [/] filter  [esc] close"
		if m.popup.kind == PopupLoad {
			base += "  [D]/[x] delete"
		}
	default:
		base = browseHint
	}

	line := style.Render("Muted", base)
	if m.status.text != "" {
		name := "StatusOk"
		if m.status.isError {
			name = "StatusError"
		}
		line += "  |  " + style.Render(name, m.status.text)
	}
	return line
}

// truncateLeft keeps the tail of s, which is the informative part of a path.
func truncateLeft(s string, width int) string {
	if width <= 1 || runewidth.StringWidth(s) <= width {
		return s
	}
	r := []rune(s)
	w := 1
	i := len(r)
	for i > 0 {
		rw := runewidth.RuneWidth(r[i-1])
		if w+rw > width {
			break
		}
		w += rw
		i--
	}
	return "…" + string(r[i:])
}
