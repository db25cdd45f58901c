package cli

import (
	"strings"

	"github.com/thenoetrevino/phonebook/internal/models"
	"github.com/thenoetrevino/phonebook/internal/services/contact"
)

// ResolveContact finds a contact by exact id, falling back to a case-insensitive name.
func ResolveContact(store *contact.Store, ref string) (models.Contact, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return models.Contact{}, false
	}
	if c, err := store.Find(ref); err == nil {
		return c, true
	}
	for _, c := range store.Contacts() {
		if c.SameName(ref) {
			return c, true
		}
	}
	return models.Contact{}, false
}
