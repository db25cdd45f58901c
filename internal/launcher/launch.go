// Package launcher starts the interactive contact list.
package launcher

import (
	"context"
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/phonebook/internal/app"
	"github.com/thenoetrevino/phonebook/internal/config"
	"github.com/thenoetrevino/phonebook/internal/logging"
	"github.com/thenoetrevino/phonebook/internal/tui"
	"github.com/thenoetrevino/phonebook/internal/tui/state"
	"github.com/thenoetrevino/phonebook/internal/tui/theme"
)

// Options selects the storage backing the session
type Options struct {
	// DBPath overrides the configured database path when non-empty
	DBPath string
	// Ephemeral keeps contacts in memory only
	Ephemeral bool
}

// Launch runs the TUI until the user quits or ctx is cancelled
func Launch(ctx context.Context, opts Options) error {
	cfg, err := config.Load()
	if err != nil {
		slog.Warn("failed to load configuration, using defaults", "error", err)
		cfg = config.Default()
	}
	if opts.DBPath != "" {
		cfg.Storage.Path = opts.DBPath
	}

	theme.Init(cfg.ColorScheme)

	notes := state.NewNotificationState()
	application, err := app.Open(ctx, cfg, opts.Ephemeral, app.WithNotifier(notes), app.WithLogger(logging.Logger))
	if err != nil {
		return err
	}
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing application", "error", err)
		}
	}()

	model := tui.InitialModel(ctx, application.Contacts, cfg, notes)
	defer model.Shutdown()

	p := tea.NewProgram(model, tea.WithContext(ctx))

	// goroutine to monitor cancellation
	errChan := make(chan error, 1)
	go func() {
		_, err := p.Run()
		errChan <- err
	}()

	select {
	case err := <-errChan:
		// a cancelled context also ends Run; that is a normal shutdown
		if err != nil && ctx.Err() == nil {
			return fmt.Errorf("error running program: %w", err)
		}
	case <-ctx.Done():
		slog.Info("shutdown signal received, cleaning up")
		model.Shutdown()
		p.Quit()
		<-errChan
	}
	return nil
}
