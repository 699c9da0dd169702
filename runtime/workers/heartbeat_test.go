package workers

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"swipe-lab/contract"
	"swipe-lab/mocks"
	"swipe-lab/observability"

	"github.com/mama165/sdk-go/logs"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHeartbeat_ExportsChannelDepths(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	channels := mocks.NewMockIChannelManager(ctrl)
	ch := mocks.NewMockIChannel(ctrl)
	metrics := observability.NewMetrics(prometheus.NewRegistry())

	// Given one shared channel holding three messages
	channels.EXPECT().SharedChannels().Return([]contract.IChannel{ch}).MinTimes(1)
	ch.EXPECT().Name().Return("shared.female").AnyTimes()
	ch.EXPECT().Depth(gomock.Any()).Return(3, nil).MinTimes(1)

	w := NewHeartbeatWorker(channels, metrics, logs.GetLoggerFromLevel(slog.LevelDebug), 10*time.Millisecond)
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()

	// When a few beats happened
	_ = w.Run(ctx)

	// Then the gauges reflect the channel and the process
	req.Equal(3.0, testutil.ToFloat64(metrics.ChannelDepth.WithLabelValues("shared.female")))
	req.Greater(testutil.ToFloat64(metrics.Goroutines), 0.0)
}
