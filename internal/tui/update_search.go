package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/phonebook/internal/tui/state"
)

// handleFilterMode handles keyboard input in filter mode.
// Every keystroke updates the store filter so the list narrows as the user types.
func (m Model) handleFilterMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m.handleFilterConfirm()
	case "esc":
		return m.handleFilterCancel()
	case "ctrl+c":
		return m.handleQuit()
	}

	cmd := m.FilterInput.Update(msg)
	return m.applyFilter(cmd)
}

// applyFilter pushes the input text into the store if it changed
func (m Model) applyFilter(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	value := m.FilterInput.Value()
	if value == m.Store.Filter() {
		return m, cmd
	}
	m.NotificationState.Clear()
	m.Store.SetFilter(value)
	m.UiState.SetSelected(0)
	m.refresh()
	return m, cmd
}

// handleFilterConfirm keeps the filter and returns to normal mode
func (m Model) handleFilterConfirm() (tea.Model, tea.Cmd) {
	m.FilterInput.Close()
	m.UiState.SetMode(state.NormalMode)
	return m, nil
}

// handleFilterCancel clears the filter and returns to normal mode
func (m Model) handleFilterCancel() (tea.Model, tea.Cmd) {
	m.FilterInput.Close()
	m.FilterInput.SetValue("")
	m.UiState.SetMode(state.NormalMode)
	if m.Store.Filter() != "" {
		m.Store.SetFilter("")
		m.refresh()
	}
	return m, nil
}
