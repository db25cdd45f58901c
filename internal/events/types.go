package events

import "time"

// Level indicates the severity of a user-facing notification
type Level int

const (
	// LevelSuccess confirms a completed change (contact added or removed)
	LevelSuccess Level = iota
	// LevelFailure reports a rejected change (duplicate name)
	LevelFailure
	// LevelInfo reports an empty-result condition
	LevelInfo
)

// String returns the lowercase level name used in logs and JSON output
func (l Level) String() string {
	switch l {
	case LevelSuccess:
		return "success"
	case LevelFailure:
		return "failure"
	case LevelInfo:
		return "info"
	default:
		return "unknown"
	}
}

// Notification is a single message emitted on the notification channel
type Notification struct {
	Level     Level     `json:"level"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// NewNotification builds a notification stamped with the current time
func NewNotification(level Level, message string) Notification {
	return Notification{
		Level:     level,
		Message:   message,
		Timestamp: time.Now(),
	}
}
