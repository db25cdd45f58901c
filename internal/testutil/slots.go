// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/phonebook/internal/database"
	"github.com/thenoetrevino/phonebook/internal/models"
	"github.com/thenoetrevino/phonebook/internal/services/contact"
)

// SampleContacts returns two contacts with fixed ids
func SampleContacts() []models.Contact {
	return []models.Contact{
		{ID: "id-1", Name: "Rosie Simpson", Number: "459-12-56"},
		{ID: "id-2", Name: "Hermione Kline", Number: "443-89-12"},
	}
}

// SeededMemoryStore returns an in-memory slot store whose contacts slot holds seed.
// A nil seed leaves the slot absent.
func SeededMemoryStore(t *testing.T, seed []models.Contact) *database.MemoryStore {
	t.Helper()

	repo := database.NewMemoryStore()
	if seed != nil {
		data, err := contact.EncodeSnapshot(seed)
		require.NoError(t, err)
		require.NoError(t, repo.PutSlot(context.Background(), database.ContactsKey, data))
	}
	return repo
}

// PersistedNames decodes the contacts slot of repo and returns the names in order
func PersistedNames(t *testing.T, repo database.SlotStore) []string {
	t.Helper()

	data, err := repo.GetSlot(context.Background(), database.ContactsKey)
	require.NoError(t, err)
	contacts, err := contact.DecodeSnapshot(data)
	require.NoError(t, err)

	names := make([]string, 0, len(contacts))
	for _, c := range contacts {
		names = append(names, c.Name)
	}
	return names
}
