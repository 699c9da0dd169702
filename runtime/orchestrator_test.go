package runtime

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"swipe-lab/contract"
	"swipe-lab/domain"
	"swipe-lab/mocks"
	"swipe-lab/observability"
	"swipe-lab/runtime/workers"

	"github.com/mama165/sdk-go/logs"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOrchestrator_RegistersWorkersAndRuns(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	supervisor := mocks.NewMockISupervisor(ctrl)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	var added []contract.Worker
	supervisor.EXPECT().Add(gomock.Any()).DoAndReturn(func(w ...contract.Worker) contract.ISupervisor {
		added = append(added, w...)
		return supervisor
	}).Times(1)
	supervisor.EXPECT().Run(gomock.Any()).Times(1)

	o := NewOrchestrator(log, supervisor,
		mocks.NewMockITransport(ctrl), mocks.NewMockIChannelManager(ctrl),
		mocks.NewMockINotificationOutbox(ctrl), mocks.NewMockINotificationSink(ctrl),
		observability.NewMetrics(prometheus.NewRegistry()), nil,
		OrchestratorConfig{
			Dispatch:          workers.DispatcherConfig{Interval: time.Second, BatchSize: 10, MaxAttempts: 3},
			InflightTimeout:   time.Minute,
			RecoveryInterval:  time.Minute,
			GCInterval:        time.Minute,
			HeartbeatInterval: time.Minute,
		})

	// When the orchestrator starts without a badger handle
	req.NoError(o.Start(context.Background()))

	// Then every worker but the GC is supervised
	var names []string
	for _, w := range added {
		names = append(names, contract.GetWorkerName(w))
	}
	req.ElementsMatch([]string{"NotificationDispatcher", "InflightRecovery", "HeartbeatWorker"}, names)

	// And a second start is refused
	req.Error(o.Start(context.Background()))
}

func TestPrepareModeration_CensorsEmbeddedWords(t *testing.T) {
	req := require.New(t)
	moderator, err := PrepareModeration('*', logs.GetLoggerFromLevel(slog.LevelDebug))
	req.NoError(err)

	// Given a bio containing a word of the shipped english list
	p := moderator.Profile(domain.Profile{Bio: "not a scam, promise"})

	// Then it is masked
	req.NotContains(p.Bio, "scam")
	req.Contains(p.Bio, "****")
}
