package workers

import (
	"context"
	"log/slog"
	"time"

	"swipe-lab/contract"
	"swipe-lab/observability"
)

// InflightRecovery puts back deliveries whose consumer never settled them,
// typically after a crash between Pop and Ack.
type InflightRecovery struct {
	transport contract.ITransport
	metrics   *observability.Metrics
	log       *slog.Logger
	interval  time.Duration
	timeout   time.Duration
}

func NewInflightRecovery(transport contract.ITransport, metrics *observability.Metrics, log *slog.Logger, interval, timeout time.Duration) *InflightRecovery {
	return &InflightRecovery{transport: transport, metrics: metrics, log: log, interval: interval, timeout: timeout}
}

func (w *InflightRecovery) Run(ctx context.Context) error {
	// A restart leaves every delivery of the previous process in flight
	if err := w.recover(ctx); err != nil {
		return err
	}
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := w.recover(ctx); err != nil {
				return err
			}
		}
	}
}

func (w *InflightRecovery) recover(ctx context.Context) error {
	n, err := w.transport.RecoverInflight(ctx, w.timeout)
	if err != nil {
		return err
	}
	if n > 0 {
		w.log.Warn("Recovered stale in-flight deliveries", "count", n, "older_than", w.timeout)
		w.metrics.InflightRecovered.Add(float64(n))
	}
	return nil
}
