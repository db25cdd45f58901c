package events

// Notifier receives user-facing notifications.
// Implementations must not block; Notify is called from inside state-mutating handlers.
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a plain function to the Notifier interface
type NotifierFunc func(Notification)

// Notify calls f(n)
func (f NotifierFunc) Notify(n Notification) {
	f(n)
}

// Discard is a Notifier that drops everything
var Discard Notifier = NotifierFunc(func(Notification) {})

// Compile-time verification that *Recorder implements Notifier
var _ Notifier = (*Recorder)(nil)
