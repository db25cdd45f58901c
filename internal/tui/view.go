package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/phonebook/internal/tui/notifications"
	"github.com/thenoetrevino/phonebook/internal/tui/state"
	"github.com/thenoetrevino/phonebook/internal/tui/theme"
)

const (
	loadingText   = "Loading . . ."
	emptyListText = "There is no contacts"
)

// View renders the current state of the application
// This implements the "View" part of the Model-View-Update pattern
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.BackgroundColor = lipgloss.Color(theme.Background)

	if m.UiState.Mode() == state.HelpMode {
		view.Content = m.viewHelp()
		return view
	}

	sections := []string{
		titleStyle().Render("Phonebook"),
		m.viewForm(),
		headerStyle().Render("Contacts"),
	}
	sections = append(sections, m.viewContacts()...)

	if m.NotificationState.HasAny() {
		sections = append(sections, "", notifications.RenderAll(m.NotificationState.All()))
	}
	sections = append(sections, m.viewStatusBar())

	view.Content = lipgloss.JoinVertical(lipgloss.Left, sections...)
	return view
}

// viewForm renders the add form while it is open, otherwise a hint
func (m Model) viewForm() string {
	if m.UiState.Mode() == state.AddFormMode {
		box := formBoxStyle()
		if w := m.UiState.Width(); w > 0 {
			box = box.Width(min(w-2, 48))
		}
		return box.Render(m.Form.View())
	}
	return subtleStyle().Render(fmt.Sprintf("press %s to add a contact", m.Config.KeyMappings.AddContact))
}

// viewContacts renders the loading placeholder, the empty prompt, or the filter and rows
func (m Model) viewContacts() []string {
	if !m.Store.Loaded() || m.UiState.LoadingDefaults() {
		return []string{loadingText}
	}

	if m.Store.DefaultPromptVisible() {
		return []string{
			emptyListText,
			buttonStyle().Render(fmt.Sprintf("[%s] Default Contacts", m.Config.KeyMappings.LoadDefaults)),
		}
	}

	lines := []string{m.viewFilter()}
	selected := m.UiState.Selected()
	for i, c := range m.Visible() {
		row := fmt.Sprintf("%s: %s", c.Name, c.Number)
		if i == selected {
			lines = append(lines, selectedRowStyle().Render("> "+row))
			continue
		}
		lines = append(lines, rowStyle().Render(row))
	}
	return lines
}

// viewFilter renders the filter line: live input in filter mode, the active filter otherwise
func (m Model) viewFilter() string {
	label := subtleStyle().Render("Find contacts by name: ")
	if m.UiState.Mode() == state.FilterMode {
		return label + m.FilterInput.View()
	}
	if f := m.Store.Filter(); f != "" {
		return label + f
	}
	return label + subtleStyle().Render(fmt.Sprintf("(%s to filter)", m.Config.KeyMappings.Filter))
}

// viewStatusBar renders the mode and key hints
func (m Model) viewStatusBar() string {
	km := m.Config.KeyMappings
	var hints []string
	switch m.UiState.Mode() {
	case state.AddFormMode:
		hints = []string{"tab next field", "enter save", "esc cancel"}
	case state.FilterMode:
		hints = []string{"enter keep", "esc clear"}
	default:
		hints = []string{
			km.AddContact + " add",
			km.DeleteContact + " delete",
			km.Filter + " filter",
			km.ShowHelp + " help",
			km.Quit + " quit",
		}
	}
	return statusBarStyle().Render(fmt.Sprintf("[%s] %s", m.UiState.Mode(), strings.Join(hints, " • ")))
}
