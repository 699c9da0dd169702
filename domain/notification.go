package domain

import "time"

type NotificationKind string

const (
	NotificationText  NotificationKind = "text"
	NotificationPhoto NotificationKind = "photo"
)

// Notification is a message waiting in the outbox to reach a user's chat session.
type Notification struct {
	ID        string
	Kind      NotificationKind
	UserID    string
	Text      string
	PhotoRef  string
	Attempts  int
	CreatedAt time.Time
}
