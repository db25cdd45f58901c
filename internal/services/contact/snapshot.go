package contact

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/thenoetrevino/phonebook/internal/models"
)

// EncodeSnapshot serializes contacts as a JSON array of {id, name, number}.
// A nil list encodes as an empty array.
func EncodeSnapshot(contacts []models.Contact) ([]byte, error) {
	if contacts == nil {
		contacts = []models.Contact{}
	}
	data, err := json.Marshal(contacts)
	if err != nil {
		return nil, fmt.Errorf("failed to encode contacts: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses a snapshot written by EncodeSnapshot.
// A JSON null decodes to an empty list. Entries without an id or name, and
// repeated ids or names, make the whole snapshot ErrMalformedSnapshot.
func DecodeSnapshot(data []byte) ([]models.Contact, error) {
	var contacts []models.Contact
	if err := json.Unmarshal(data, &contacts); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedSnapshot, err)
	}
	if contacts == nil {
		contacts = []models.Contact{}
	}
	if err := validateSnapshot(contacts); err != nil {
		return nil, err
	}
	return contacts, nil
}

func validateSnapshot(contacts []models.Contact) error {
	ids := make(map[string]struct{}, len(contacts))
	for i, c := range contacts {
		if c.ID == "" {
			return fmt.Errorf("%w: entry %d has no id", ErrMalformedSnapshot, i)
		}
		if strings.TrimSpace(c.Name) == "" {
			return fmt.Errorf("%w: entry %d has no name", ErrMalformedSnapshot, i)
		}
		if _, dup := ids[c.ID]; dup {
			return fmt.Errorf("%w: id %q repeated", ErrMalformedSnapshot, c.ID)
		}
		ids[c.ID] = struct{}{}

		for _, prev := range contacts[:i] {
			if prev.SameName(c.Name) {
				return fmt.Errorf("%w: name %q repeated", ErrMalformedSnapshot, c.Name)
			}
		}
	}
	return nil
}
