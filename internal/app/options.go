package app

import (
	"log/slog"

	"github.com/thenoetrevino/phonebook/internal/events"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	notifier events.Notifier
	logger   *slog.Logger
}

// WithNotifier sets where contact notifications are delivered
func WithNotifier(n events.Notifier) Option {
	return func(cfg *appConfig) {
		if n != nil {
			cfg.notifier = n
		}
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}
