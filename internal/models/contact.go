package models

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
)

// Contact is a single phonebook entry.
// ID is assigned once at creation and never changes.
type Contact struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Number string `json:"number"`
}

// NewContact creates a contact with a freshly generated id
func NewContact(name, number string) Contact {
	return Contact{
		ID:     uuid.NewString(),
		Name:   name,
		Number: number,
	}
}

// foldName maps a name to its Unicode case-folded form.
// Uniqueness and filtering both compare folded names.
func foldName(s string) string {
	return cases.Fold().String(s)
}

// SameName reports whether name matches the contact's name, ignoring case
func (c Contact) SameName(name string) bool {
	return foldName(c.Name) == foldName(name)
}

// MatchesFilter reports whether the contact name contains filter, ignoring case.
// An empty filter matches every contact.
func (c Contact) MatchesFilter(filter string) bool {
	if filter == "" {
		return true
	}
	return strings.Contains(foldName(c.Name), foldName(filter))
}

// GetID returns the contact id (used by quiet CLI output)
func (c Contact) GetID() string {
	return c.ID
}

// defaultContacts is the built-in seed set offered when storage is empty
var defaultContacts = []Contact{
	{ID: "seed-1", Name: "Rosie Simpson", Number: "459-12-56"},
	{ID: "seed-2", Name: "Rosie Sompson", Number: "145-23-65"},
	{ID: "seed-3", Name: "Hermione Kline", Number: "443-89-12"},
	{ID: "seed-4", Name: "Eden Clements", Number: "645-17-79"},
	{ID: "seed-5", Name: "Annie Copeland", Number: "227-91-26"},
	{ID: "seed-6", Name: "Jack Shepart", Number: "345-53-81"},
}

// DefaultContacts returns a fresh copy of the seed set.
// Callers may mutate the result freely.
func DefaultContacts() []Contact {
	out := make([]Contact, len(defaultContacts))
	copy(out, defaultContacts)
	return out
}
