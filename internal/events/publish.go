package events

import "log/slog"

// Recorder collects notifications in emission order.
// The CLI uses it to print notifications after a command finishes.
type Recorder struct {
	notifications []Notification
}

// NewRecorder creates an empty Recorder
func NewRecorder() *Recorder {
	return &Recorder{notifications: []Notification{}}
}

// Notify appends n to the recorded list
func (r *Recorder) Notify(n Notification) {
	r.notifications = append(r.notifications, n)
}

// All returns every recorded notification
func (r *Recorder) All() []Notification {
	return r.notifications
}

// Count returns how many notifications of the given level were recorded
func (r *Recorder) Count(level Level) int {
	count := 0
	for _, n := range r.notifications {
		if n.Level == level {
			count++
		}
	}
	return count
}

// Reset drops all recorded notifications
func (r *Recorder) Reset() {
	r.notifications = []Notification{}
}

// Logged wraps a notifier so every notification is also written to slog at debug level
func Logged(next Notifier) Notifier {
	return NotifierFunc(func(n Notification) {
		slog.Debug("notification", "level", n.Level.String(), "message", n.Message)
		if next != nil {
			next.Notify(n)
		}
	})
}
