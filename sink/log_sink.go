package sink

import (
	"context"
	"log/slog"
)

// LogSink writes notifications to the structured log. Used when no chat front end is attached.
type LogSink struct {
	log *slog.Logger
}

func NewLogSink(log *slog.Logger) LogSink {
	return LogSink{log: log}
}

func (l LogSink) SendText(_ context.Context, userID string, text string) error {
	l.log.Info("Notification", "user_id", userID, "text", text)
	return nil
}

func (l LogSink) SendPhoto(_ context.Context, userID string, photoRef string, caption string) error {
	l.log.Info("Notification", "user_id", userID, "photo", photoRef, "caption", caption)
	return nil
}
