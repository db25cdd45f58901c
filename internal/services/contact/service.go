// Package contact holds the in-memory contact list and keeps it in sync with the slot store.
package contact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/thenoetrevino/phonebook/internal/database"
	"github.com/thenoetrevino/phonebook/internal/events"
	"github.com/thenoetrevino/phonebook/internal/models"
)

// Notification messages
const (
	msgNoMatches      = "No contacts with this name."
	msgAllRemoved     = "You deleted all contacts."
	msgDuplicateName  = "%s is already in contacts."
	msgContactAdded   = "%s added to contacts."
	msgContactRemoved = "%s removed from contacts."
)

// AppState is the complete application state owned by a Store.
type AppState struct {
	// Contacts in insertion order, which is also display order
	Contacts []models.Contact
	// Filter is the raw user-entered filter text
	Filter string
	// DefaultPromptVisible is true when there is nothing to show and the seed set can be offered
	DefaultPromptVisible bool
	// Loaded becomes true once the persisted snapshot has been read
	Loaded bool
}

// Store owns the contact list and the active filter.
// It is not safe for concurrent use; all calls are expected on the UI goroutine.
type Store struct {
	repo     database.SlotStore
	notifier events.Notifier
	logger   *slog.Logger
	slotKey  string

	state AppState

	// snapshotErr is why the last Load found no usable snapshot, if it found one at all
	snapshotErr error

	// filterPending is set when the filter changes and cleared by the next
	// FilteredContacts call, so "no matches" fires once per filter change.
	filterPending bool
}

// NewStore creates a Store backed by repo.
// Nothing is read until Load is called.
func NewStore(repo database.SlotStore, opts ...Option) *Store {
	s := &Store{
		repo:     repo,
		notifier: events.Discard,
		logger:   slog.Default(),
		slotKey:  database.ContactsKey,
		state: AppState{
			Contacts: []models.Contact{},
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the persisted snapshot.
// A present, non-empty snapshot replaces the in-memory list; anything else
// (missing, malformed, empty) leaves the list alone and shows the default prompt.
func (s *Store) Load(ctx context.Context) {
	loaded := s.readSnapshot(ctx)
	if len(loaded) > 0 {
		s.state.Contacts = loaded
	}

	s.state.Loaded = true
	s.state.DefaultPromptVisible = len(s.state.Contacts) == 0
	s.logger.Debug("contacts loaded", "count", len(s.state.Contacts))
}

func (s *Store) readSnapshot(ctx context.Context) []models.Contact {
	s.snapshotErr = nil

	data, err := s.repo.GetSlot(ctx, s.slotKey)
	if errors.Is(err, database.ErrSlotNotFound) {
		return nil
	}
	if err != nil {
		s.logger.Warn("failed to read contacts snapshot", "key", s.slotKey, "error", err)
		s.snapshotErr = fmt.Errorf("failed to read contacts: %w", err)
		return nil
	}

	contacts, err := DecodeSnapshot(data)
	if err != nil {
		s.logger.Warn("ignoring malformed contacts snapshot", "key", s.slotKey, "error", err)
		s.snapshotErr = err
		return nil
	}
	return contacts
}

// SnapshotErr reports why the last Load started from an empty list despite a stored slot.
// It is nil when the slot was absent or decoded cleanly.
func (s *Store) SnapshotErr() error {
	return s.snapshotErr
}

// Add appends a new contact with a fresh id.
// A name that matches an existing contact ignoring case is rejected with a
// failure notification and ErrDuplicateName; the list is left unchanged.
func (s *Store) Add(ctx context.Context, name, number string) (models.Contact, error) {
	name = strings.TrimSpace(name)
	number = strings.TrimSpace(number)
	if name == "" {
		return models.Contact{}, ErrEmptyName
	}

	if s.hasName(name) {
		s.notify(events.LevelFailure, fmt.Sprintf(msgDuplicateName, name))
		return models.Contact{}, ErrDuplicateName
	}

	prevCount := len(s.state.Contacts)
	contact := models.NewContact(name, number)
	s.state.Contacts = append(slices.Clip(s.state.Contacts), contact)

	err := s.sync(ctx, prevCount)
	s.notify(events.LevelSuccess, fmt.Sprintf(msgContactAdded, contact.Name))
	return contact, err
}

// hasName is a linear scan; the list is small.
func (s *Store) hasName(name string) bool {
	return slices.ContainsFunc(s.state.Contacts, func(c models.Contact) bool {
		return c.SameName(name)
	})
}

// Remove deletes the contact with the given id.
// It returns the removed contact and true, or false when no contact has that id.
// Removing the last contact emits an extra info notification.
func (s *Store) Remove(ctx context.Context, id string) (models.Contact, bool, error) {
	idx := slices.IndexFunc(s.state.Contacts, func(c models.Contact) bool {
		return c.ID == id
	})
	if idx < 0 {
		return models.Contact{}, false, nil
	}

	prevCount := len(s.state.Contacts)
	removed := s.state.Contacts[idx]
	s.state.Contacts = slices.Delete(slices.Clone(s.state.Contacts), idx, idx+1)

	err := s.sync(ctx, prevCount)
	s.notify(events.LevelSuccess, fmt.Sprintf(msgContactRemoved, removed.Name))
	if len(s.state.Contacts) == 0 {
		s.notify(events.LevelInfo, msgAllRemoved)
	}
	return removed, true, err
}

// SetFilter replaces the active filter. The text is stored as given.
func (s *Store) SetFilter(text string) {
	if text == s.state.Filter {
		return
	}
	s.state.Filter = text
	s.filterPending = true
}

// Filter returns the active filter text
func (s *Store) Filter() string {
	return s.state.Filter
}

// FilteredContacts returns the contacts whose name contains the filter, ignoring case,
// in list order. An empty filter returns every contact.
//
// The first call after a filter change that yields nothing emits a single
// "no matches" info notification; later calls with the same filter stay quiet.
func (s *Store) FilteredContacts() []models.Contact {
	filter := s.state.Filter
	pending := s.filterPending
	s.filterPending = false

	if filter == "" {
		return slices.Clone(s.state.Contacts)
	}

	filtered := []models.Contact{}
	for _, c := range s.state.Contacts {
		if c.MatchesFilter(filter) {
			filtered = append(filtered, c)
		}
	}

	if pending && len(filtered) == 0 {
		s.notify(events.LevelInfo, msgNoMatches)
	}
	return filtered
}

// LoadDefaults replaces the whole list with the built-in seed set and clears the filter.
// The snapshot is always rewritten, even when the count happens to stay the same.
func (s *Store) LoadDefaults(ctx context.Context) error {
	s.state.Contacts = models.DefaultContacts()
	s.state.Filter = ""
	s.filterPending = false
	return s.persist(ctx)
}

// sync writes the snapshot when the contact count differs from prevCount
func (s *Store) sync(ctx context.Context, prevCount int) error {
	if len(s.state.Contacts) == prevCount {
		return nil
	}
	return s.persist(ctx)
}

// persist recomputes the default prompt and writes the full list to the slot store
func (s *Store) persist(ctx context.Context) error {
	s.state.DefaultPromptVisible = len(s.state.Contacts) == 0

	data, err := EncodeSnapshot(s.state.Contacts)
	if err != nil {
		return err
	}
	if err := s.repo.PutSlot(ctx, s.slotKey, data); err != nil {
		s.logger.Error("failed to persist contacts", "key", s.slotKey, "error", err)
		return fmt.Errorf("failed to persist contacts: %w", err)
	}
	s.logger.Debug("contacts persisted", "count", len(s.state.Contacts))
	return nil
}

func (s *Store) notify(level events.Level, message string) {
	s.notifier.Notify(events.NewNotification(level, message))
}

// Contacts returns a copy of the full list in display order
func (s *Store) Contacts() []models.Contact {
	return slices.Clone(s.state.Contacts)
}

// Len returns the number of contacts
func (s *Store) Len() int {
	return len(s.state.Contacts)
}

// DefaultPromptVisible reports whether the seed set should be offered
func (s *Store) DefaultPromptVisible() bool {
	return s.state.DefaultPromptVisible
}

// Loaded reports whether Load has run
func (s *Store) Loaded() bool {
	return s.state.Loaded
}

// State returns a copy of the current application state
func (s *Store) State() AppState {
	st := s.state
	st.Contacts = slices.Clone(s.state.Contacts)
	return st
}

// Find returns the contact with the given id
func (s *Store) Find(id string) (models.Contact, error) {
	for _, c := range s.state.Contacts {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Contact{}, ErrContactNotFound
}
