package tui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// Cache Glamour renderers by width to avoid expensive re-creation
var rendererCache sync.Map // map[int]*glamour.TermRenderer

// getRenderer returns a cached renderer for the given width
func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// helpMarkdown builds the help text from the active key mappings
func (m Model) helpMarkdown() string {
	km := m.Config.KeyMappings
	var b strings.Builder
	b.WriteString("# Phonebook\n\n")
	b.WriteString("| Key | Action |\n|---|---|\n")
	rows := [][2]string{
		{km.AddContact, "Add a contact"},
		{km.DeleteContact, "Delete the selected contact"},
		{km.Filter, "Filter contacts by name"},
		{km.ClearFilter, "Clear the filter"},
		{km.LoadDefaults, "Load the default contacts (empty list only)"},
		{km.NextContact + " / ↓", "Next contact"},
		{km.PrevContact + " / ↑", "Previous contact"},
		{km.ShowHelp, "Toggle this help"},
		{km.Quit, "Quit"},
	}
	for _, r := range rows {
		fmt.Fprintf(&b, "| `%s` | %s |\n", r[0], r[1])
	}
	b.WriteString("\nIn the add form, `tab` switches fields, `enter` saves and `esc` cancels.\n")
	return b.String()
}

// viewHelp renders the help screen, falling back to raw markdown if glamour fails
func (m Model) viewHelp() string {
	width := m.UiState.Width()
	if width <= 0 {
		width = 80
	}

	md := m.helpMarkdown()
	renderer, err := getRenderer(width)
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
