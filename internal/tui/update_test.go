package tui

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/phonebook/internal/database"
	"github.com/thenoetrevino/phonebook/internal/events"
	"github.com/thenoetrevino/phonebook/internal/testutil"
	"github.com/thenoetrevino/phonebook/internal/tui/state"
)

func persisted(t *testing.T, repo *database.MemoryStore) []string {
	return testutil.PersistedNames(t, repo)
}

func TestWindowSize(t *testing.T) {
	m, _ := setupTestModel(t, nil)

	m, _ = send(m, tea.WindowSizeMsg{Width: 100, Height: 40})

	assert.Equal(t, 100, m.UiState.Width())
	assert.Equal(t, 40, m.UiState.Height())
}

func TestAddForm_SubmitAddsContact(t *testing.T) {
	m, repo := setupLoadedModel(t, twoContacts())

	m, _ = send(m, keyRune('a'))
	require.Equal(t, state.AddFormMode, m.UiState.Mode())

	m = typeText(m, "Eden Clements")
	m, _ = send(m, keyCode(tea.KeyTab))
	m = typeText(m, "645-17-79")
	m, _ = send(m, keyCode(tea.KeyEnter))

	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	require.Len(t, m.Visible(), 3)
	assert.Equal(t, "Eden Clements", m.Visible()[2].Name)
	assert.Equal(t, "645-17-79", m.Visible()[2].Number)
	assert.Equal(t, 2, m.UiState.Selected(), "new contact should be selected")
	assert.Equal(t, []string{"Rosie Simpson", "Hermione Kline", "Eden Clements"}, persisted(t, repo))

	all := m.NotificationState.All()
	require.Len(t, all, 1)
	assert.Equal(t, events.LevelSuccess, all[0].Level)
	assert.Equal(t, "Eden Clements added to contacts.", all[0].Message)
}

func TestAddForm_EnterOnNameMovesToNumber(t *testing.T) {
	m, _ := setupLoadedModel(t, twoContacts())

	m, _ = send(m, keyRune('a'))
	m = typeText(m, "Eden")
	m, _ = send(m, keyCode(tea.KeyEnter))

	assert.Equal(t, state.AddFormMode, m.UiState.Mode())
	assert.True(t, m.Form.OnLastField())
	assert.Equal(t, 2, m.Store.Len())
}

func TestAddForm_DuplicateKeepsFormOpen(t *testing.T) {
	m, _ := setupLoadedModel(t, twoContacts())

	m, _ = send(m, keyRune('a'))
	m = typeText(m, "rosie SIMPSON")
	m, _ = send(m, keyCode(tea.KeyTab))
	m = typeText(m, "000")
	m, _ = send(m, keyCode(tea.KeyEnter))

	assert.Equal(t, state.AddFormMode, m.UiState.Mode())
	assert.Equal(t, 2, m.Store.Len())
	assert.NotEmpty(t, m.Form.Err)

	all := m.NotificationState.All()
	require.Len(t, all, 1)
	assert.Equal(t, events.LevelFailure, all[0].Level)
	assert.Equal(t, "rosie SIMPSON is already in contacts.", all[0].Message)
}

func TestAddForm_EmptyNameRefused(t *testing.T) {
	m, _ := setupLoadedModel(t, twoContacts())

	m, _ = send(m, keyRune('a'))
	m, _ = send(m, keyCode(tea.KeyTab))
	m = typeText(m, "123")
	m, _ = send(m, keyCode(tea.KeyEnter))

	assert.Equal(t, state.AddFormMode, m.UiState.Mode())
	assert.Equal(t, "Name is required", m.Form.Err)
	assert.Equal(t, 2, m.Store.Len())
}

func TestAddForm_EscCancels(t *testing.T) {
	m, _ := setupLoadedModel(t, twoContacts())

	m, _ = send(m, keyRune('a'))
	m = typeText(m, "Jack")
	m, _ = send(m, keyCode(tea.KeyEsc))

	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Equal(t, 2, m.Store.Len())

	// Reopening starts from empty fields
	m, _ = send(m, keyRune('a'))
	assert.Empty(t, m.Form.Name())
}

func TestAddForm_NotBeforeLoad(t *testing.T) {
	m, _ := setupTestModel(t, nil)

	m, _ = send(m, keyRune('a'))

	assert.Equal(t, state.NormalMode, m.UiState.Mode())
}

func TestDelete_RemovesSelected(t *testing.T) {
	m, repo := setupLoadedModel(t, twoContacts())

	m, _ = send(m, keyRune('j'))
	m, _ = send(m, keyRune('d'))

	require.Len(t, m.Visible(), 1)
	assert.Equal(t, "Rosie Simpson", m.Visible()[0].Name)
	assert.Equal(t, 0, m.UiState.Selected())
	assert.Equal(t, []string{"Rosie Simpson"}, persisted(t, repo))

	all := m.NotificationState.All()
	require.Len(t, all, 1)
	assert.Equal(t, "Hermione Kline removed from contacts.", all[0].Message)
}

func TestDelete_LastContactShowsPrompt(t *testing.T) {
	m, _ := setupLoadedModel(t, twoContacts()[:1])

	m, _ = send(m, keyRune('d'))

	assert.Empty(t, m.Visible())
	assert.True(t, m.Store.DefaultPromptVisible())

	all := m.NotificationState.All()
	require.Len(t, all, 2)
	assert.Equal(t, events.LevelSuccess, all[0].Level)
	assert.Equal(t, events.LevelInfo, all[1].Level)
	assert.Equal(t, "You deleted all contacts.", all[1].Message)
}

func TestDelete_EmptyListNoop(t *testing.T) {
	m, _ := setupLoadedModel(t, nil)

	m, _ = send(m, keyRune('d'))

	assert.False(t, m.NotificationState.HasAny())
}

func TestNavigation_Clamped(t *testing.T) {
	m, _ := setupLoadedModel(t, twoContacts())

	m, _ = send(m, keyCode(tea.KeyDown))
	m, _ = send(m, keyCode(tea.KeyDown))
	assert.Equal(t, 1, m.UiState.Selected())

	m, _ = send(m, keyRune('k'))
	m, _ = send(m, keyCode(tea.KeyUp))
	assert.Equal(t, 0, m.UiState.Selected())
}

func TestFilter_NarrowsAsYouType(t *testing.T) {
	m, _ := setupLoadedModel(t, twoContacts())

	m, _ = send(m, keyRune('/'))
	require.Equal(t, state.FilterMode, m.UiState.Mode())

	m = typeText(m, "ro")

	assert.Equal(t, "ro", m.Store.Filter())
	require.Len(t, m.Visible(), 1)
	assert.Equal(t, "Rosie Simpson", m.Visible()[0].Name)

	m, _ = send(m, keyCode(tea.KeyEnter))
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Equal(t, "ro", m.Store.Filter(), "enter keeps the filter")
}

func TestFilter_NoMatchesNotifiesOncePerChange(t *testing.T) {
	m, _ := setupLoadedModel(t, twoContacts())

	m, _ = send(m, keyRune('/'))
	m = typeText(m, "zz")

	// "z" and "zz" are two distinct filter values; only the latest notification survives
	all := m.NotificationState.All()
	require.Len(t, all, 1)
	assert.Equal(t, events.LevelInfo, all[0].Level)
	assert.Equal(t, "No contacts with this name.", all[0].Message)

	// Cursor movement does not change the filter and must not refire
	m.NotificationState.Clear()
	m, _ = send(m, keyCode(tea.KeyLeft))
	assert.False(t, m.NotificationState.HasAny())
}

func TestFilter_EscClears(t *testing.T) {
	m, _ := setupLoadedModel(t, twoContacts())

	m, _ = send(m, keyRune('/'))
	m = typeText(m, "her")
	m, _ = send(m, keyCode(tea.KeyEsc))

	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Empty(t, m.Store.Filter())
	assert.Len(t, m.Visible(), 2)
}

func TestFilter_ClearKey(t *testing.T) {
	m, _ := setupLoadedModel(t, twoContacts())

	m, _ = send(m, keyRune('/'))
	m = typeText(m, "her")
	m, _ = send(m, keyCode(tea.KeyEnter))
	require.Len(t, m.Visible(), 1)

	m, _ = send(m, keyRune('c'))

	assert.Empty(t, m.Store.Filter())
	assert.Len(t, m.Visible(), 2)
}

func TestFilter_UnavailableWhenEmpty(t *testing.T) {
	m, _ := setupLoadedModel(t, nil)

	m, _ = send(m, keyRune('/'))

	assert.Equal(t, state.NormalMode, m.UiState.Mode())
}

func TestLoadDefaults_AfterDelay(t *testing.T) {
	m, repo := setupLoadedModel(t, nil)

	m, cmd := send(m, keyRune('D'))
	require.NotNil(t, cmd)
	assert.True(t, m.UiState.LoadingDefaults())
	assert.Equal(t, 0, m.Store.Len(), "defaults apply only once the delay fires")

	// A second press while pending schedules nothing
	_, again := send(m, keyRune('D'))
	assert.Nil(t, again)

	m, _ = send(m, cmd())

	assert.False(t, m.UiState.LoadingDefaults())
	assert.Len(t, m.Visible(), 6)
	assert.False(t, m.Store.DefaultPromptVisible())
	assert.Len(t, persisted(t, repo), 6)
}

func TestLoadDefaults_IgnoredWhenListNotEmpty(t *testing.T) {
	m, _ := setupLoadedModel(t, twoContacts())

	m, cmd := send(m, keyRune('D'))

	assert.Nil(t, cmd)
	assert.False(t, m.UiState.LoadingDefaults())
	assert.Equal(t, 2, m.Store.Len())
}

func TestLoadDefaults_CancelledByShutdown(t *testing.T) {
	m, _ := setupLoadedModel(t, nil)

	m, _ = send(m, keyRune('D'))
	m.Shutdown()
	m, _ = send(m, defaultsMsg{})

	assert.Equal(t, 0, m.Store.Len())
	assert.False(t, m.UiState.LoadingDefaults())
}

func TestHelp_OpenAndClose(t *testing.T) {
	m, _ := setupLoadedModel(t, nil)

	m, _ = send(m, keyRune('?'))
	require.Equal(t, state.HelpMode, m.UiState.Mode())

	m, _ = send(m, keyCode(tea.KeyEsc))
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
}

func TestQuit(t *testing.T) {
	m, _ := setupLoadedModel(t, nil)

	m, cmd := send(m, keyRune('q'))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Error(t, m.Ctx.Err(), "quitting cancels the model context")
}

func TestKeyPress_ClearsNotifications(t *testing.T) {
	m, _ := setupLoadedModel(t, twoContacts())
	m.NotificationState.Notify(events.NewNotification(events.LevelInfo, "stale"))

	m, _ = send(m, keyRune('j'))

	assert.False(t, m.NotificationState.HasAny())
}
