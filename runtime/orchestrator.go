package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"swipe-lab/contract"
	"swipe-lab/moderation"
	"swipe-lab/observability"
	"swipe-lab/runtime/workers"

	"github.com/dgraph-io/badger/v4"
)

type OrchestratorConfig struct {
	Dispatch          workers.DispatcherConfig
	InflightTimeout   time.Duration
	RecoveryInterval  time.Duration
	GCInterval        time.Duration
	HeartbeatInterval time.Duration
}

// Orchestrator owns the background side of the engine: the supervised
// workers that keep channels healthy and deliver notifications.
// Request handling lives in the services and never goes through it.
type Orchestrator struct {
	mu         sync.Mutex
	log        *slog.Logger
	supervisor contract.ISupervisor
	transport  contract.ITransport
	channels   contract.IChannelManager
	outbox     contract.INotificationOutbox
	delivery   contract.INotificationSink
	metrics    *observability.Metrics
	db         *badger.DB
	cfg        OrchestratorConfig
	started    bool
}

// NewOrchestrator takes the badger handle only for value log GC, nil disables that worker.
func NewOrchestrator(
	log *slog.Logger,
	supervisor contract.ISupervisor,
	transport contract.ITransport,
	channels contract.IChannelManager,
	outbox contract.INotificationOutbox,
	delivery contract.INotificationSink,
	metrics *observability.Metrics,
	db *badger.DB,
	cfg OrchestratorConfig,
) *Orchestrator {
	return &Orchestrator{
		log:        log,
		supervisor: supervisor,
		transport:  transport,
		channels:   channels,
		outbox:     outbox,
		delivery:   delivery,
		metrics:    metrics,
		db:         db,
		cfg:        cfg,
	}
}

// Start registers every worker then blocks in the supervisor until ctx ends or Stop is called.
func (o *Orchestrator) Start(ctx context.Context) error {
	prepared := o.prepareWorkers()

	o.mu.Lock()
	if o.started {
		o.mu.Unlock()
		return fmt.Errorf("orchestrator already started")
	}
	o.started = true
	o.supervisor.Add(prepared...)
	o.mu.Unlock()

	o.log.Info("Starting orchestrator and all supervised workers", "workers", len(prepared))
	o.supervisor.Run(ctx)
	return nil
}

func (o *Orchestrator) prepareWorkers() []contract.Worker {
	res := []contract.Worker{
		workers.NewNotificationDispatcher(o.outbox, o.delivery, o.metrics,
			o.log.With("worker", "dispatcher"), o.cfg.Dispatch),
		workers.NewInflightRecovery(o.transport, o.metrics,
			o.log.With("worker", "recovery"), o.cfg.RecoveryInterval, o.cfg.InflightTimeout),
		workers.NewHeartbeatWorker(o.channels, o.metrics,
			o.log.With("worker", "heartbeat"), o.cfg.HeartbeatInterval),
	}
	if o.db != nil {
		res = append(res, workers.NewValueLogGC(o.db, o.log.With("worker", "gc"), o.cfg.GCInterval))
	}
	return res
}

func (o *Orchestrator) Stop() {
	o.log.Info("Requesting orchestrator shutdown")
	o.supervisor.Stop()
}

// PrepareModeration loads the embedded blacklists and builds the moderator.
func PrepareModeration(charReplacement rune, log *slog.Logger) (*moderation.Moderator, error) {
	data, err := DefaultCensoredLoader().LoadAll("censored")
	if err != nil {
		return nil, err
	}

	log.Info(fmt.Sprintf("%d censored files loaded [%s]",
		len(data.Languages), strings.Join(data.Languages, ",")))
	log.Info(fmt.Sprintf("%d unique censored words loaded", len(data.Words)))

	return moderation.NewModerator(data.Words, charReplacement, log)
}
