package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Repository is the SQLite-backed SlotStore
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// GetSlot returns the value stored under key, or ErrSlotNotFound
func (r *Repository) GetSlot(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, "SELECT value FROM slots WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read slot %q: %w", key, err)
	}
	return value, nil
}

// PutSlot replaces the value stored under key
func (r *Repository) PutSlot(ctx context.Context, key string, value []byte) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO slots (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
		`, key, value)
		if err != nil {
			return fmt.Errorf("failed to write slot %q: %w", key, err)
		}
		return nil
	})
}

// DeleteSlot removes key. Deleting a missing key is not an error.
func (r *Repository) DeleteSlot(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM slots WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to delete slot %q: %w", key, err)
	}
	return nil
}

// Close closes the underlying database connection
func (r *Repository) Close() error {
	return r.db.Close()
}
