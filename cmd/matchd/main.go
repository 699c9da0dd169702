package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"swipe-lab/internal"
	"swipe-lab/runtime"
	"swipe-lab/runtime/workers"
	"swipe-lab/sink"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	grpc3 "github.com/mama165/sdk-go/grpc"
	"github.com/mama165/sdk-go/logs"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

const shutdownTimeout = 10 * time.Second

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "matchd terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run owns every resource so that deferred cleanup happens before os.Exit.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, err
	}
	logger := logs.GetLoggerFromString(config.LogLevel)

	// 2. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Database (BadgerDB)
	db, err := badger.Open(buildBadgerOpts(config, logger, ctx))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 4. Engine
	stack, err := internal.BuildStack(ctx, config, db, logger)
	if err != nil {
		return exitRuntime, fmt.Errorf("engine assembly failed: %w", err)
	}
	defer func() { _ = stack.Close() }()

	// 5. Supervision & Orchestration
	sup := workers.NewSupervisor(logger, config.RestartInterval)
	orchestrator := runtime.NewOrchestrator(
		logger, sup, stack.Transport, stack.Channels, stack.Outbox,
		sink.NewLogSink(logger.With("component", "delivery")),
		stack.Metrics, db,
		runtime.OrchestratorConfig{
			Dispatch:          internal.DispatcherConfig(config),
			InflightTimeout:   config.InflightTimeout,
			RecoveryInterval:  config.RecoveryInterval,
			GCInterval:        config.GCInterval,
			HeartbeatInterval: config.HeartbeatInterval,
		},
	)

	// 6. gRPC Server Setup (health only, front ends embed the engine)
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to listen on %s: %w", address, err)
	}
	s := grpc.NewServer(grpc.ChainUnaryInterceptor(grpc3.UnaryLoggingInterceptor(logger)))
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(s, healthServer)

	debugServer := internal.NewDebugServer(db, fmt.Sprintf("%s:%d", config.Host, config.DebugPort),
		internal.RecordMapper, func() map[string]any {
			stats := map[string]any{"Backend": config.StoreBackend, "Photos": config.PhotoBackend}
			depths, err := stack.Engine.Depths(ctx)
			if err != nil {
				stats["Depths"] = err.Error()
				return stats
			}
			for name, depth := range depths {
				stats[name] = depth
			}
			return stats
		}, stack.Registry, logger)

	// 7. Run everything until a signal or the first failure
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting orchestrator...")
		return orchestrator.Start(gctx)
	})
	g.Go(func() error {
		logger.Info("Starting gRPC server", "address", address, "at", time.Now().UTC())
		healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
		if err := s.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("gRPC server error: %w", err)
		}
		return nil
	})
	g.Go(debugServer.ListenAndServe)
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down gracefully...")
		healthServer.Shutdown()
		s.GracefulStop()
		orchestrator.Stop()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return debugServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return exitRuntime, err
	}
	logger.Info("Program stopped cleanly")
	return exitOK, nil
}

func buildBadgerOpts(config internal.Config, logger *slog.Logger, ctx context.Context) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath)

	if logger.Enabled(ctx, slog.LevelDebug) {
		options = options.WithLoggingLevel(badger.DEBUG)
	} else {
		options = options.WithLoggingLevel(badger.WARNING)
	}
	return options
}
