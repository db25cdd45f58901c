package contact

import (
	"log/slog"

	"github.com/thenoetrevino/phonebook/internal/events"
)

// Option is a functional option for configuring a Store
type Option func(*Store)

// WithNotifier sets where user-facing notifications are sent
func WithNotifier(n events.Notifier) Option {
	return func(s *Store) {
		if n != nil {
			s.notifier = n
		}
	}
}

// WithLogger sets the logger used for persistence warnings
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithSlotKey overrides the slot the contact list is persisted under
func WithSlotKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.slotKey = key
		}
	}
}
