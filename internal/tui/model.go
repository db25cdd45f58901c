package tui

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/phonebook/internal/config"
	"github.com/thenoetrevino/phonebook/internal/models"
	"github.com/thenoetrevino/phonebook/internal/services/contact"
	"github.com/thenoetrevino/phonebook/internal/tui/state"
)

// Model represents the application state for the TUI.
// The contact list itself lives in the contact store; Model only holds
// presentation state and the handles needed to drive the store.
type Model struct {
	Ctx    context.Context
	cancel context.CancelFunc

	Store             *contact.Store
	Config            *config.Config
	UiState           *state.UIState
	NotificationState *state.NotificationState
	Form              *ContactForm
	FilterInput       *FilterInput

	// visible is the filtered list as of the last refresh
	visible *[]models.Contact
}

// InitialModel creates the TUI model.
// notes must be the notifier the store was built with so store notifications reach the view.
func InitialModel(ctx context.Context, store *contact.Store, cfg *config.Config, notes *state.NotificationState) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	if notes == nil {
		notes = state.NewNotificationState()
	}

	ctx, cancel := context.WithCancel(ctx)
	visible := []models.Contact{}

	return Model{
		Ctx:               ctx,
		cancel:            cancel,
		Store:             store,
		Config:            cfg,
		UiState:           state.NewUIState(),
		NotificationState: notes,
		Form:              NewContactForm(),
		FilterInput:       NewFilterInput(),
		visible:           &visible,
	}
}

// Init schedules the initial load behind the configured delay.
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return delayCmd(m.Ctx, m.Config.Storage.LoadDelay, loadMsg{})
}

// Shutdown cancels the model context. Pending delayed loads become no-ops.
func (m Model) Shutdown() {
	m.cancel()
}

// Visible returns the filtered contacts currently on screen
func (m Model) Visible() []models.Contact {
	return *m.visible
}

// SelectedContact returns the highlighted contact, if any
func (m Model) SelectedContact() (models.Contact, bool) {
	visible := m.Visible()
	i := m.UiState.Selected()
	if i < 0 || i >= len(visible) {
		return models.Contact{}, false
	}
	return visible[i], true
}

// refresh re-evaluates the filter against the store and keeps the selection in range
func (m Model) refresh() {
	*m.visible = m.Store.FilteredContacts()
	m.UiState.ClampSelection(len(*m.visible))
}
