package tui

import (
	"errors"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/phonebook/internal/services/contact"
	"github.com/thenoetrevino/phonebook/internal/tui/state"
)

// handleAddFormMode handles keyboard input while the add form is open
func (m Model) handleAddFormMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.handleCancelAddForm()
	case "ctrl+c":
		return m.handleQuit()
	case "tab", "down":
		return m, m.Form.NextField()
	case "shift+tab", "up":
		return m, m.Form.PrevField()
	case "enter":
		if !m.Form.OnLastField() {
			return m, m.Form.NextField()
		}
		return m.handleSubmitAddForm()
	}
	return m, m.Form.Update(msg)
}

// handleSubmitAddForm hands the form values to the store.
// The form stays open when the store refuses the contact.
func (m Model) handleSubmitAddForm() (tea.Model, tea.Cmd) {
	m.NotificationState.Clear()

	name, number := m.Form.Name(), m.Form.Number()
	if name == "" {
		m.Form.Err = errFormMessage(contact.ErrEmptyName)
		return m, m.Form.setFocus(fieldName)
	}

	c, err := m.Store.Add(m.Ctx, name, number)
	switch {
	case errors.Is(err, contact.ErrDuplicateName), errors.Is(err, contact.ErrEmptyName):
		m.Form.Err = errFormMessage(err)
		return m, m.Form.setFocus(fieldName)
	case err != nil:
		// added in memory, not persisted
		slog.Error("failed to persist new contact", "name", name, "error", err)
	}

	m.Form.Close()
	m.UiState.SetMode(state.NormalMode)
	m.refresh()
	if i := m.indexOfVisible(c.ID); i >= 0 {
		m.UiState.SetSelected(i)
	}
	return m, nil
}

// handleCancelAddForm closes the form without adding anything
func (m Model) handleCancelAddForm() (tea.Model, tea.Cmd) {
	m.Form.Close()
	m.UiState.SetMode(state.NormalMode)
	return m, nil
}

// indexOfVisible returns the row of the contact with id, or -1
func (m Model) indexOfVisible(id string) int {
	for i, c := range m.Visible() {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// errFormMessage maps a refused submit to the text shown under the form
func errFormMessage(err error) string {
	switch {
	case errors.Is(err, contact.ErrEmptyName):
		return "Name is required"
	case errors.Is(err, contact.ErrDuplicateName):
		return "Choose a different name"
	default:
		return "Could not save contact"
	}
}
