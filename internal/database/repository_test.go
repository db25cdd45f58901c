package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// slotStoreContract runs the same behaviour checks against any SlotStore
func slotStoreContract(t *testing.T, store SlotStore) {
	t.Helper()
	ctx := context.Background()

	_, err := store.GetSlot(ctx, ContactsKey)
	assert.ErrorIs(t, err, ErrSlotNotFound)

	require.NoError(t, store.PutSlot(ctx, ContactsKey, []byte(`[{"id":"1"}]`)))
	got, err := store.GetSlot(ctx, ContactsKey)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, string(got))

	// put replaces the previous value
	require.NoError(t, store.PutSlot(ctx, ContactsKey, []byte(`[]`)))
	got, err = store.GetSlot(ctx, ContactsKey)
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))

	// other keys are independent
	_, err = store.GetSlot(ctx, "other")
	assert.ErrorIs(t, err, ErrSlotNotFound)

	require.NoError(t, store.DeleteSlot(ctx, ContactsKey))
	_, err = store.GetSlot(ctx, ContactsKey)
	assert.ErrorIs(t, err, ErrSlotNotFound)

	// deleting again is fine
	assert.NoError(t, store.DeleteSlot(ctx, ContactsKey))
}

func TestRepository_SlotContract(t *testing.T) {
	t.Parallel()
	slotStoreContract(t, NewRepository(setupTestDB(t)))
}

func TestMemoryStore_SlotContract(t *testing.T) {
	t.Parallel()
	slotStoreContract(t, NewMemoryStore())
}

func TestMemoryStore_CopiesValues(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	value := []byte("abc")
	require.NoError(t, store.PutSlot(ctx, "k", value))
	value[0] = 'z'

	got, err := store.GetSlot(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))

	got[1] = 'z'
	again, err := store.GetSlot(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(again))
}

func TestInitDB_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "nested", "phonebook.db")

	db, err := InitDB(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, NewRepository(db).PutSlot(ctx, ContactsKey, []byte(`["saved"]`)))
	require.NoError(t, db.Close())

	reopened, err := InitDB(ctx, dbPath)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	got, err := NewRepository(reopened).GetSlot(ctx, ContactsKey)
	require.NoError(t, err)
	assert.Equal(t, `["saved"]`, string(got))
}

func TestRunMigrations_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	assert.NoError(t, runMigrations(context.Background(), db))
}
