package database

import (
	"context"
	"errors"
)

// ContactsKey is the slot holding the serialized contact list
const ContactsKey = "contacts"

// ErrSlotNotFound is returned by GetSlot when nothing has been stored under the key
var ErrSlotNotFound = errors.New("slot not found")

// SlotStore is a persistent key-value store of serialized snapshots.
// Each key holds one value; PutSlot replaces it whole.
type SlotStore interface {
	GetSlot(ctx context.Context, key string) ([]byte, error)
	PutSlot(ctx context.Context, key string, value []byte) error
	DeleteSlot(ctx context.Context, key string) error
}

// Compile-time verification that both stores implement SlotStore
var (
	_ SlotStore = (*Repository)(nil)
	_ SlotStore = (*MemoryStore)(nil)
)
