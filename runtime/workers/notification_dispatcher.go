package workers

import (
	"context"
	"log/slog"
	"time"

	"swipe-lab/contract"
	"swipe-lab/domain"
	"swipe-lab/observability"

	"golang.org/x/time/rate"
)

const (
	statusSent    = "sent"
	statusRetry   = "retry"
	statusDropped = "dropped"
)

type DispatcherConfig struct {
	Interval    time.Duration
	BatchSize   int
	Rate        float64
	Burst       int
	MaxAttempts int
}

// NotificationDispatcher drains the outbox into the delivery sink.
// A notification failing MaxAttempts times is dropped with an error log.
type NotificationDispatcher struct {
	outbox  contract.INotificationOutbox
	sink    contract.INotificationSink
	limiter *rate.Limiter
	metrics *observability.Metrics
	log     *slog.Logger
	cfg     DispatcherConfig
}

func NewNotificationDispatcher(
	outbox contract.INotificationOutbox,
	sink contract.INotificationSink,
	metrics *observability.Metrics,
	log *slog.Logger,
	cfg DispatcherConfig,
) *NotificationDispatcher {
	if cfg.Burst < 1 {
		cfg.Burst = 1
	}
	limit := rate.Limit(cfg.Rate)
	if cfg.Rate <= 0 {
		limit = rate.Inf
	}
	return &NotificationDispatcher{
		outbox:  outbox,
		sink:    sink,
		limiter: rate.NewLimiter(limit, cfg.Burst),
		metrics: metrics,
		log:     log,
		cfg:     cfg,
	}
}

func (w *NotificationDispatcher) Run(ctx context.Context) error {
	w.log.Info("Starting notification dispatcher", "interval", w.cfg.Interval, "batch", w.cfg.BatchSize)
	ticker := time.NewTicker(w.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if _, err := w.DispatchOnce(ctx); err != nil {
				return err
			}
		}
	}
}

// DispatchOnce sends one batch and returns how many notifications reached the sink.
func (w *NotificationDispatcher) DispatchOnce(ctx context.Context) (int, error) {
	pending, err := w.outbox.Pending(ctx, w.cfg.BatchSize)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, n := range pending {
		if err := w.limiter.Wait(ctx); err != nil {
			return sent, err
		}
		if err := w.send(ctx, n); err != nil {
			if err := w.fail(ctx, n, err); err != nil {
				return sent, err
			}
			continue
		}
		if err := w.outbox.Done(ctx, n.ID); err != nil {
			return sent, err
		}
		sent++
		w.metrics.Notifications.WithLabelValues(string(n.Kind), statusSent).Inc()
	}
	return sent, nil
}

func (w *NotificationDispatcher) send(ctx context.Context, n domain.Notification) error {
	if n.Kind == domain.NotificationPhoto {
		return w.sink.SendPhoto(ctx, n.UserID, n.PhotoRef, n.Text)
	}
	return w.sink.SendText(ctx, n.UserID, n.Text)
}

func (w *NotificationDispatcher) fail(ctx context.Context, n domain.Notification, cause error) error {
	attempts := n.Attempts + 1
	if attempts >= w.cfg.MaxAttempts {
		w.log.Error("Dropping notification after too many attempts",
			"id", n.ID, "user_id", n.UserID, "attempts", attempts, "error", cause)
		w.metrics.Notifications.WithLabelValues(string(n.Kind), statusDropped).Inc()
		return w.outbox.Done(ctx, n.ID)
	}
	w.log.Warn("Notification delivery failed", "id", n.ID, "user_id", n.UserID, "attempts", attempts, "error", cause)
	w.metrics.Notifications.WithLabelValues(string(n.Kind), statusRetry).Inc()
	return w.outbox.Retry(ctx, n.ID, attempts)
}
