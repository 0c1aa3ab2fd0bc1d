package ports

import "context"

// Notification is a templated message to a single recipient.
type Notification struct {
	TemplateID string
	Recipient  string
	Data       map[string]string
}

// Notifier delivers a notification. Delivery is best-effort from the core's
// perspective; errors are reported, never rolled back into the caller.
type Notifier interface {
	Send(ctx context.Context, n Notification) error
}

// NotificationQueue accepts notifications for asynchronous delivery after
// the primary transaction has committed. Enqueue returns an error only when
// the notification cannot be accepted (e.g. the queue is full).
type NotificationQueue interface {
	Enqueue(n Notification) error
}
