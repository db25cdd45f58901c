package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/thenoetrevino/phonebook/internal/config"
	"github.com/thenoetrevino/phonebook/internal/database"
	"github.com/thenoetrevino/phonebook/internal/events"
	"github.com/thenoetrevino/phonebook/internal/services/contact"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Repository layer (slot store)
	repo database.SlotStore

	// closer releases the repository's resources, if it owns any
	closer io.Closer

	// Service layer (contact list state)
	Contacts *contact.Store
}

// New creates a new App over repo with the contact store wired up.
func New(repo database.SlotStore, opts ...Option) *App {
	cfg := &appConfig{
		notifier: events.Discard,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	a := &App{
		repo: repo,
		Contacts: contact.NewStore(repo,
			contact.WithNotifier(events.Logged(cfg.notifier)),
			contact.WithLogger(cfg.logger),
		),
	}
	if c, ok := repo.(io.Closer); ok {
		a.closer = c
	}
	return a
}

// Open builds an App from configuration.
// Ephemeral sessions use an in-memory store; otherwise the SQLite database at
// cfg.Storage.Path is opened (and created) first.
func Open(ctx context.Context, cfg *config.Config, ephemeral bool, opts ...Option) (*App, error) {
	if ephemeral {
		return New(database.NewMemoryStore(), opts...), nil
	}

	db, err := database.InitDB(ctx, cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return New(database.NewRepository(db), opts...), nil
}

// Repo returns the underlying slot store.
func (a *App) Repo() database.SlotStore {
	return a.repo
}

// Close performs cleanup of application resources.
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}
