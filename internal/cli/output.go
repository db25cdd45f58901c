package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/thenoetrevino/phonebook/internal/events"
	"github.com/thenoetrevino/phonebook/internal/models"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	// Out and Err default to os.Stdout and os.Stderr
	Out io.Writer
	Err io.Writer
}

func (f *OutputFormatter) out() io.Writer {
	if f.Out == nil {
		return os.Stdout
	}
	return f.Out
}

func (f *OutputFormatter) errOut() io.Writer {
	if f.Err == nil {
		return os.Stderr
	}
	return f.Err
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data any) error {
	if f.Quiet {
		return f.quietPrint(data)
	}

	if f.JSON {
		return json.NewEncoder(f.out()).Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	// Human-readable format
	return f.prettyPrint(data)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(f.out()).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	fmt.Fprintf(f.errOut(), "❌ Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(f.errOut(), "💡 Suggestion: %s\n", suggestion)
	}
	return nil
}

// Notifications writes store notifications to stderr, one per line.
// Quiet mode suppresses them.
func (f *OutputFormatter) Notifications(notes []events.Notification) {
	if f.Quiet {
		return
	}
	for _, n := range notes {
		fmt.Fprintf(f.errOut(), "[%s] %s\n", n.Level, n.Message)
	}
}

// quietPrint prints only ids: one per line for lists
func (f *OutputFormatter) quietPrint(data any) error {
	switch v := data.(type) {
	case interface{ GetID() string }:
		_, err := fmt.Fprintln(f.out(), v.GetID())
		return err
	case []models.Contact:
		for _, c := range v {
			if _, err := fmt.Fprintln(f.out(), c.ID); err != nil {
				return err
			}
		}
		return nil
	}
	return nil
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data any) error {
	switch v := data.(type) {
	case models.Contact:
		_, err := fmt.Fprintf(f.out(), "%s: %s (%s)\n", v.Name, v.Number, v.ID)
		return err
	case []models.Contact:
		if len(v) == 0 {
			_, err := fmt.Fprintln(f.out(), "No contacts")
			return err
		}
		for _, c := range v {
			if _, err := fmt.Fprintf(f.out(), "%s: %s (%s)\n", c.Name, c.Number, c.ID); err != nil {
				return err
			}
		}
		return nil
	}
	_, err := fmt.Fprintf(f.out(), "%+v\n", data)
	return err
}
