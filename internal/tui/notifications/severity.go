package notifications

import "github.com/thenoetrevino/phonebook/internal/events"

// Severity represents the severity level of a notification
type Severity int

const (
	Success Severity = iota
	Failure
	Info
)

// FromLevel maps a notification channel level to a display severity
func FromLevel(level events.Level) Severity {
	switch level {
	case events.LevelSuccess:
		return Success
	case events.LevelFailure:
		return Failure
	default:
		return Info
	}
}
