package workers

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"swipe-lab/domain"
	"swipe-lab/mocks"
	"swipe-lab/observability"

	"github.com/mama165/sdk-go/logs"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newDispatcher(t *testing.T) (*NotificationDispatcher, *mocks.MockINotificationOutbox, *mocks.MockINotificationSink, *observability.Metrics) {
	ctrl := gomock.NewController(t)
	outbox := mocks.NewMockINotificationOutbox(ctrl)
	sink := mocks.NewMockINotificationSink(ctrl)
	metrics := observability.NewMetrics(prometheus.NewRegistry())
	d := NewNotificationDispatcher(outbox, sink, metrics, logs.GetLoggerFromLevel(slog.LevelDebug), DispatcherConfig{
		Interval:    10 * time.Millisecond,
		BatchSize:   10,
		Rate:        0,
		Burst:       1,
		MaxAttempts: 3,
	})
	return d, outbox, sink, metrics
}

func TestNotificationDispatcher_SendsAndAcknowledges(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	d, outbox, sink, metrics := newDispatcher(t)

	// Given a text and a photo waiting in the outbox
	outbox.EXPECT().Pending(ctx, 10).Return([]domain.Notification{
		{ID: "1", Kind: domain.NotificationText, UserID: "u1", Text: "Hello"},
		{ID: "2", Kind: domain.NotificationPhoto, UserID: "u2", Text: "caption", PhotoRef: "user_photos/a.jpg"},
	}, nil)
	gomock.InOrder(
		sink.EXPECT().SendText(ctx, "u1", "Hello").Return(nil),
		outbox.EXPECT().Done(ctx, "1").Return(nil),
		sink.EXPECT().SendPhoto(ctx, "u2", "user_photos/a.jpg", "caption").Return(nil),
		outbox.EXPECT().Done(ctx, "2").Return(nil),
	)

	// When one batch is dispatched
	sent, err := d.DispatchOnce(ctx)

	// Then both reached the sink in outbox order
	req.NoError(err)
	req.Equal(2, sent)
	req.Equal(1.0, testutil.ToFloat64(metrics.Notifications.WithLabelValues("photo", statusSent)))
}

func TestNotificationDispatcher_RetriesFailedDelivery(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	d, outbox, sink, metrics := newDispatcher(t)

	// Given a sink refusing the first delivery
	outbox.EXPECT().Pending(ctx, 10).Return([]domain.Notification{
		{ID: "1", Kind: domain.NotificationText, UserID: "u1", Text: "Hello", Attempts: 0},
	}, nil)
	sink.EXPECT().SendText(ctx, "u1", "Hello").Return(errors.New("session closed"))
	outbox.EXPECT().Retry(ctx, "1", 1).Return(nil)

	// When the batch is dispatched
	sent, err := d.DispatchOnce(ctx)

	// Then the notification stays in the outbox with one more attempt
	req.NoError(err)
	req.Zero(sent)
	req.Equal(1.0, testutil.ToFloat64(metrics.Notifications.WithLabelValues("text", statusRetry)))
}

func TestNotificationDispatcher_DropsAfterMaxAttempts(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	d, outbox, sink, metrics := newDispatcher(t)

	// Given a notification on its last allowed attempt
	outbox.EXPECT().Pending(ctx, 10).Return([]domain.Notification{
		{ID: "1", Kind: domain.NotificationText, UserID: "u1", Text: "Hello", Attempts: 2},
	}, nil)
	sink.EXPECT().SendText(ctx, "u1", "Hello").Return(errors.New("session closed"))
	outbox.EXPECT().Done(ctx, "1").Return(nil)

	// When it fails once more
	_, err := d.DispatchOnce(ctx)

	// Then it is removed from the outbox
	req.NoError(err)
	req.Equal(1.0, testutil.ToFloat64(metrics.Notifications.WithLabelValues("text", statusDropped)))
}

func TestNotificationDispatcher_OutboxFailureStopsWorker(t *testing.T) {
	req := require.New(t)
	d, outbox, _, _ := newDispatcher(t)
	boom := errors.New("disk gone")
	outbox.EXPECT().Pending(gomock.Any(), 10).Return(nil, boom)

	// When the outbox cannot be read
	err := d.Run(context.Background())

	// Then the worker returns so the supervisor restarts it
	req.ErrorIs(err, boom)
}
