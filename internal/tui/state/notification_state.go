package state

import "github.com/thenoetrevino/phonebook/internal/events"

// NotificationState manages notification display state.
// It is the TUI's end of the notification channel: the contact store
// notifies it directly and the view renders whatever it holds.
type NotificationState struct {
	// notifications contains the list of current notifications to display
	notifications []events.Notification
}

// NewNotificationState creates a new NotificationState with no notifications.
func NewNotificationState() *NotificationState {
	return &NotificationState{
		notifications: []events.Notification{},
	}
}

// Notify implements events.Notifier
func (s *NotificationState) Notify(n events.Notification) {
	s.notifications = append(s.notifications, n)
}

// Clear removes all notifications.
func (s *NotificationState) Clear() {
	s.notifications = []events.Notification{}
}

// All returns all current notifications.
func (s *NotificationState) All() []events.Notification {
	return s.notifications
}

// HasAny returns true if there are any notifications.
func (s *NotificationState) HasAny() bool {
	return len(s.notifications) > 0
}

// Compile-time verification that *NotificationState implements events.Notifier
var _ events.Notifier = (*NotificationState)(nil)
