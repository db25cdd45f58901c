package database

import "context"

// MemoryStore is a map-backed SlotStore used for ephemeral sessions and tests.
// Values are copied on the way in and out.
type MemoryStore struct {
	slots map[string][]byte
}

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: map[string][]byte{}}
}

// GetSlot returns a copy of the value stored under key, or ErrSlotNotFound
func (m *MemoryStore) GetSlot(_ context.Context, key string) ([]byte, error) {
	value, ok := m.slots[key]
	if !ok {
		return nil, ErrSlotNotFound
	}
	return append([]byte(nil), value...), nil
}

// PutSlot stores a copy of value under key
func (m *MemoryStore) PutSlot(_ context.Context, key string, value []byte) error {
	m.slots[key] = append([]byte(nil), value...)
	return nil
}

// DeleteSlot removes key
func (m *MemoryStore) DeleteSlot(_ context.Context, key string) error {
	delete(m.slots, key)
	return nil
}
