package internal

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"swipe-lab/contract"
	"swipe-lab/infrastructure/postgres"
	"swipe-lab/infrastructure/s3"
	"swipe-lab/infrastructure/storage"
	"swipe-lab/observability"
	"swipe-lab/runtime"
	"swipe-lab/runtime/workers"
	"swipe-lab/services"
	"swipe-lab/sink"

	"github.com/dgraph-io/badger/v4"
	"github.com/prometheus/client_golang/prometheus"
)

// Stack is an assembled engine plus the handles its binary has to close.
// Badger always backs the channels, the seen-set and the outbox,
// the profile store, ledger and photos follow the configured backends.
type Stack struct {
	Engine    *services.Engine
	Channels  *runtime.ChannelManager
	Transport *storage.ChannelRepository
	Outbox    *storage.NotificationRepository
	Profiles  contract.IProfileStore
	Metrics   *observability.Metrics
	Registry  *prometheus.Registry
	sqlDB     *sql.DB
	log       *slog.Logger
}

func BuildStack(ctx context.Context, cfg Config, db *badger.DB, log *slog.Logger) (*Stack, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	char, err := CharacterRune(cfg.CharReplacement)
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	metrics := observability.NewMetrics(registry)

	transport, err := storage.NewChannelRepository(db, log.With("component", "transport"))
	if err != nil {
		return nil, fmt.Errorf("channel transport: %w", err)
	}
	stack := &Stack{
		Channels:  runtime.NewChannelManager(transport, log.With("component", "channels")),
		Transport: transport,
		Outbox:    storage.NewNotificationRepository(db, log.With("component", "outbox")),
		Metrics:   metrics,
		Registry:  registry,
		log:       log,
	}

	var ledger contract.ISwipeLedger
	switch cfg.StoreBackend {
	case BackendPostgres:
		sqlDB, err := postgres.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			_ = stack.Close()
			return nil, err
		}
		stack.sqlDB = sqlDB
		if err := postgres.EnsureSchema(ctx, sqlDB); err != nil {
			_ = stack.Close()
			return nil, err
		}
		stack.Profiles = postgres.NewProfileStore(sqlDB, log.With("component", "profiles"))
		ledger = postgres.NewSwipeLedger(sqlDB, log.With("component", "ledger"))
	default:
		stack.Profiles = storage.NewProfileRepository(db, log.With("component", "profiles"))
		ledger = storage.NewSwipeRepository(db, log.With("component", "ledger"))
	}

	var photos contract.IPhotoStore
	switch cfg.PhotoBackend {
	case BackendS3:
		photos, err = s3.NewPhotoStore(ctx, s3.Options{
			Endpoint:  cfg.S3Endpoint,
			Region:    cfg.S3Region,
			Bucket:    cfg.S3Bucket,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			PathStyle: cfg.S3PathStyle,
		}, log.With("component", "photos"))
		if err != nil {
			_ = stack.Close()
			return nil, err
		}
	default:
		photos = storage.NewPhotoRepository(db, log.With("component", "photos"))
	}

	moderator, err := runtime.PrepareModeration(char, log.With("component", "moderation"))
	if err != nil {
		_ = stack.Close()
		return nil, err
	}

	stack.Engine = services.NewEngine(services.Dependencies{
		Channels:        stack.Channels,
		Profiles:        stack.Profiles,
		Photos:          photos,
		Seen:            storage.NewSeenRepository(db, log.With("component", "seen")),
		Ledger:          ledger,
		Sink:            sink.NewOutboxSink(stack.Outbox, log.With("component", "sink")),
		Locker:          runtime.NewPairLocker(),
		Moderator:       moderator,
		Metrics:         metrics,
		MaxScanAttempts: cfg.MaxScanAttempts,
	}, log)
	return stack, nil
}

// Dispatcher drains the outbox into delivery with the configured throttle.
func (s *Stack) Dispatcher(cfg Config, delivery contract.INotificationSink) *workers.NotificationDispatcher {
	return workers.NewNotificationDispatcher(s.Outbox, delivery, s.Metrics,
		s.log.With("worker", "dispatcher"), DispatcherConfig(cfg))
}

func DispatcherConfig(cfg Config) workers.DispatcherConfig {
	return workers.DispatcherConfig{
		Interval:    cfg.DispatchInterval,
		BatchSize:   cfg.DispatchBatchSize,
		Rate:        cfg.NotificationRate,
		Burst:       cfg.NotificationBurst,
		MaxAttempts: cfg.MaxNotificationAttempts,
	}
}

// Close releases what BuildStack opened. The badger handle stays with the caller.
func (s *Stack) Close() error {
	var err error
	if s.Transport != nil {
		err = s.Transport.Close()
	}
	if s.sqlDB != nil {
		if cerr := s.sqlDB.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}
