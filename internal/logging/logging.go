package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
)

// Logger is the global slog instance for the application
var Logger *slog.Logger

// Init initializes the logging system, writing logs to ~/.phonebook/logs/phonebook.log
// Uses text format for human readability.
func Init() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	return InitAt(filepath.Join(homeDir, ".phonebook", "logs"))
}

// InitAt initializes logging into logDir/phonebook.log, creating the directory if needed.
func InitAt(logDir string) error {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return err
	}

	// Open log file in append mode
	logPath := filepath.Join(logDir, "phonebook.log")
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}

	setOutput(file)
	return nil
}

// Discard routes all logging to io.Discard; used when the log file cannot be opened
// so the terminal UI is never written to.
func Discard() {
	setOutput(io.Discard)
}

func setOutput(w io.Writer) {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})

	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	// Redirect standard log package output to the same file
	log.SetOutput(w)
	log.SetFlags(log.LstdFlags)
}
