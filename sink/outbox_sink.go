// Package sink holds the notification sinks: where match messages for a user end up.
package sink

import (
	"context"
	"log/slog"

	"swipe-lab/contract"
	"swipe-lab/domain"
)

// OutboxSink persists notifications, the dispatcher worker delivers them later.
type OutboxSink struct {
	outbox contract.INotificationOutbox
	log    *slog.Logger
}

func NewOutboxSink(outbox contract.INotificationOutbox, log *slog.Logger) OutboxSink {
	return OutboxSink{outbox: outbox, log: log}
}

func (o OutboxSink) SendText(ctx context.Context, userID string, text string) error {
	return o.outbox.Enqueue(ctx, domain.Notification{
		Kind:   domain.NotificationText,
		UserID: userID,
		Text:   text,
	})
}

func (o OutboxSink) SendPhoto(ctx context.Context, userID string, photoRef string, caption string) error {
	return o.outbox.Enqueue(ctx, domain.Notification{
		Kind:     domain.NotificationPhoto,
		UserID:   userID,
		Text:     caption,
		PhotoRef: photoRef,
	})
}
