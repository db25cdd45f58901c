package tui

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/phonebook/internal/config"
	"github.com/thenoetrevino/phonebook/internal/database"
	"github.com/thenoetrevino/phonebook/internal/models"
	"github.com/thenoetrevino/phonebook/internal/services/contact"
	"github.com/thenoetrevino/phonebook/internal/testutil"
	"github.com/thenoetrevino/phonebook/internal/tui/state"
)

// setupTestModel builds a model over an in-memory slot store seeded with contacts.
// A nil seed leaves the slot empty. Delays are zero so scheduled messages fire at once.
func setupTestModel(t *testing.T, seed []models.Contact) (Model, *database.MemoryStore) {
	t.Helper()

	repo := testutil.SeededMemoryStore(t, seed)
	notes := state.NewNotificationState()
	store := contact.NewStore(repo, contact.WithNotifier(notes))

	cfg := config.Default()
	cfg.Storage.LoadDelay = 0
	cfg.Storage.DefaultsDelay = 0

	m := InitialModel(context.Background(), store, cfg, notes)
	t.Cleanup(m.Shutdown)
	return m, repo
}

// setupLoadedModel is setupTestModel followed by the startup load
func setupLoadedModel(t *testing.T, seed []models.Contact) (Model, *database.MemoryStore) {
	t.Helper()
	m, repo := setupTestModel(t, seed)
	m, _ = send(m, loadMsg{})
	require.True(t, m.Store.Loaded())
	return m, repo
}

// send runs one Update and returns the concrete model
func send(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

// typeText sends one key press per rune
func typeText(m Model, text string) Model {
	for _, r := range text {
		m, _ = send(m, keyRune(r))
	}
	return m
}

func keyRune(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg(tea.Key{Text: string(r), Code: r})
}

func keyCode(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg(tea.Key{Code: code})
}

func twoContacts() []models.Contact {
	return testutil.SampleContacts()
}
