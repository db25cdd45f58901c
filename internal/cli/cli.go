package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/phonebook/internal/app"
	"github.com/thenoetrevino/phonebook/internal/config"
	"github.com/thenoetrevino/phonebook/internal/events"
	"github.com/thenoetrevino/phonebook/internal/logging"
)

// CLI represents the CLI application context
type CLI struct {
	App   *app.App // Application container with services
	Notes *events.Recorder

	// owned is false for an injected instance, which the caller closes
	owned bool
}

type cliKey struct{}

// New wraps an existing app. The app must have been built with notes as its notifier.
// Close on the result is a no-op.
func New(application *app.App, notes *events.Recorder) *CLI {
	return &CLI{App: application, Notes: notes}
}

// WithCLI returns a context carrying c. Commands pick it up instead of opening storage.
func WithCLI(ctx context.Context, c *CLI) context.Context {
	return context.WithValue(ctx, cliKey{}, c)
}

// NewCLI loads configuration, opens storage per the --db and --ephemeral flags,
// and reads the persisted contact list.
func NewCLI(ctx context.Context, cmd *cobra.Command) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		slog.Warn("failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}
	if dbPath, _ := cmd.Flags().GetString("db"); dbPath != "" {
		cfg.Storage.Path = dbPath
	}
	ephemeral, _ := cmd.Flags().GetBool("ephemeral")

	notes := events.NewRecorder()
	application, err := app.Open(ctx, cfg, ephemeral, app.WithNotifier(notes), app.WithLogger(logging.Logger))
	if err != nil {
		return nil, err
	}

	c := &CLI{App: application, Notes: notes, owned: true}
	c.App.Contacts.Load(ctx)
	return c, nil
}

// GetCLIFromContext returns the CLI stored in the command context, or opens a new one.
// An injected CLI is loaded on first use.
func GetCLIFromContext(ctx context.Context, cmd *cobra.Command) (*CLI, error) {
	if c, ok := ctx.Value(cliKey{}).(*CLI); ok && c != nil {
		if !c.App.Contacts.Loaded() {
			c.App.Contacts.Load(ctx)
		}
		return c, nil
	}
	c, err := NewCLI(ctx, cmd)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize CLI: %w", err)
	}
	return c, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}

// Setup is the common prologue of every contact command: it builds the formatter
// from --json/--quiet and resolves the CLI. Failures are reported before returning.
func Setup(cmd *cobra.Command) (*CLI, *OutputFormatter, error) {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &OutputFormatter{
		JSON:  jsonOutput,
		Quiet: quietMode,
		Out:   cmd.OutOrStdout(),
		Err:   cmd.ErrOrStderr(),
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	c, err := GetCLIFromContext(ctx, cmd)
	if err != nil {
		if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return nil, formatter, Exit(ExitError, err)
	}
	return c, formatter, nil
}

// Report writes a failure through the formatter and returns it wrapped with code
func Report(f *OutputFormatter, code int, errCode string, err error, suggestion string) error {
	if fmtErr := f.ErrorWithSuggestion(errCode, err.Error(), suggestion); fmtErr != nil {
		slog.Error("Error formatting error message", "error", fmtErr)
	}
	return Exit(code, err)
}
