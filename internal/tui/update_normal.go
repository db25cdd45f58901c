package tui

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/phonebook/internal/tui/state"
)

func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m.NotificationState.Clear()

	key := msg.String()
	km := m.Config.KeyMappings

	switch key {
	case km.Quit, "ctrl+c":
		return m.handleQuit()
	case km.ShowHelp:
		m.UiState.SetMode(state.HelpMode)
		return m, nil
	case km.AddContact:
		return m.handleOpenAddForm()
	case km.DeleteContact, "delete":
		return m.handleDeleteContact()
	case km.Filter:
		return m.handleEnterFilter()
	case km.ClearFilter:
		return m.handleClearFilter()
	case km.LoadDefaults:
		return m.handleLoadDefaults()
	case km.NextContact, "down":
		m.UiState.MoveSelection(1, len(m.Visible()))
		return m, nil
	case km.PrevContact, "up":
		m.UiState.MoveSelection(-1, len(m.Visible()))
		return m, nil
	}
	return m, nil
}

// handleOpenAddForm switches to the add form with empty fields
func (m Model) handleOpenAddForm() (tea.Model, tea.Cmd) {
	if !m.Store.Loaded() {
		return m, nil
	}
	m.UiState.SetMode(state.AddFormMode)
	return m, m.Form.Open()
}

// handleDeleteContact removes the highlighted contact
func (m Model) handleDeleteContact() (tea.Model, tea.Cmd) {
	selected, ok := m.SelectedContact()
	if !ok {
		return m, nil
	}
	if _, _, err := m.Store.Remove(m.Ctx, selected.ID); err != nil {
		slog.Error("failed to persist contact removal", "id", selected.ID, "error", err)
	}
	m.refresh()
	return m, nil
}

// handleEnterFilter focuses the filter input. The filter only exists while there are contacts.
func (m Model) handleEnterFilter() (tea.Model, tea.Cmd) {
	if m.Store.Len() == 0 {
		return m, nil
	}
	m.UiState.SetMode(state.FilterMode)
	return m, m.FilterInput.Open(m.Store.Filter())
}

// handleClearFilter drops the active filter
func (m Model) handleClearFilter() (tea.Model, tea.Cmd) {
	if m.Store.Filter() == "" {
		return m, nil
	}
	m.Store.SetFilter("")
	m.FilterInput.SetValue("")
	m.refresh()
	return m, nil
}

// handleLoadDefaults schedules the seed set. Only offered while the list is empty.
func (m Model) handleLoadDefaults() (tea.Model, tea.Cmd) {
	if !m.Store.DefaultPromptVisible() || m.UiState.LoadingDefaults() {
		return m, nil
	}
	m.UiState.SetLoadingDefaults(true)
	return m, delayCmd(m.Ctx, m.Config.Storage.DefaultsDelay, defaultsMsg{})
}

// handleHelpMode handles input in the help screen.
func (m Model) handleHelpMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case m.Config.KeyMappings.ShowHelp, m.Config.KeyMappings.Quit, "esc", "enter", "space":
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	case "ctrl+c":
		return m.handleQuit()
	}
	return m, nil
}
