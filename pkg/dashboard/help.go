package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

func helpMarkdown(k KeyMap) string {
	var b strings.Builder
	b.WriteString("# Key Bindings\n\n")
	b.WriteString("| Keys | Action |\n|------|--------|\n")
	for _, binding := range k.browseBindings() {
		h := binding.Help()
		fmt.Fprintf(&b, "| `%s` | %s |\n", h.Key, h.Desc)
	}
	b.WriteString("\nPress `?`, `F1` or `esc` to close.\n")
	return b.String()
}

// renderHelp renders the help markdown, falling back to the raw text when
// glamour fails.
func renderHelp(content string, width int, color bool) string {
	style := "notty"
	if color {
		style = "dark"
	}

	options := []glamour.TermRendererOption{glamour.WithStylePath(style)}
	if width > 0 {
		options = append(options, glamour.WithWordWrap(width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
