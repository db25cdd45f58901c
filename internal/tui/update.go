package tui

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/phonebook/internal/tui/state"
)

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadMsg:
		return m.handleLoad()
	case defaultsMsg:
		return m.handleDefaultsReady()
	case tea.WindowSizeMsg:
		m.UiState.SetWindowSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyPressMsg:
		return m.handleKeyPress(msg)
	}

	// Let the focused input consume anything else (cursor blink, paste, ...)
	switch m.UiState.Mode() {
	case state.AddFormMode:
		return m, m.Form.Update(msg)
	case state.FilterMode:
		return m, m.FilterInput.Update(msg)
	}
	return m, nil
}

// handleKeyPress dispatches a key press to the handler of the current mode
func (m Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch m.UiState.Mode() {
	case state.AddFormMode:
		return m.handleAddFormMode(msg)
	case state.FilterMode:
		return m.handleFilterMode(msg)
	case state.HelpMode:
		return m.handleHelpMode(msg)
	default:
		return m.handleNormalMode(msg)
	}
}

// handleLoad runs the startup load once its delay has elapsed
func (m Model) handleLoad() (tea.Model, tea.Cmd) {
	if m.Ctx.Err() != nil {
		return m, nil
	}
	m.Store.Load(m.Ctx)
	m.refresh()
	slog.Debug("contacts loaded", "count", m.Store.Len())
	return m, nil
}

// handleDefaultsReady replaces the list with the seed set once its delay has elapsed
func (m Model) handleDefaultsReady() (tea.Model, tea.Cmd) {
	m.UiState.SetLoadingDefaults(false)
	if m.Ctx.Err() != nil {
		return m, nil
	}
	if err := m.Store.LoadDefaults(m.Ctx); err != nil {
		slog.Error("failed to persist default contacts", "error", err)
	}
	m.FilterInput.SetValue("")
	m.refresh()
	return m, nil
}

// handleQuit cancels pending work and exits the program
func (m Model) handleQuit() (tea.Model, tea.Cmd) {
	m.Shutdown()
	return m, tea.Quit
}
