package workers

import (
	"context"
	"log/slog"
	"os"
	"runtime"
	"time"

	"swipe-lab/contract"
	"swipe-lab/observability"

	"github.com/shirou/gopsutil/process"
)

type HeartbeatWorker struct {
	channels contract.IChannelManager
	metrics  *observability.Metrics
	log      *slog.Logger
	interval time.Duration
}

func NewHeartbeatWorker(channels contract.IChannelManager, metrics *observability.Metrics, log *slog.Logger, interval time.Duration) *HeartbeatWorker {
	return &HeartbeatWorker{channels: channels, metrics: metrics, log: log, interval: interval}
}

// Run samples the process and the shared channel depths on every tick.
func (w *HeartbeatWorker) Run(ctx context.Context) error {
	w.log.Info("Starting heartbeat worker", "interval", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.beat(ctx, p)
		}
	}
}

func (w *HeartbeatWorker) beat(ctx context.Context, p *process.Process) {
	attrs := []any{"goroutines", runtime.NumGoroutine()}
	w.metrics.Goroutines.Set(float64(runtime.NumGoroutine()))

	rss, cpu, err := selfStats(p)
	if err != nil {
		w.log.Error("Failed to collect self stats", "error", err)
	} else {
		w.metrics.ProcessRSS.Set(float64(rss))
		attrs = append(attrs, "rss", rss, "cpu", cpu)
	}

	for _, ch := range w.channels.SharedChannels() {
		depth, err := ch.Depth(ctx)
		if err != nil {
			w.log.Warn("Failed to read channel depth", "channel", ch.Name(), "error", err)
			continue
		}
		w.metrics.ChannelDepth.WithLabelValues(ch.Name()).Set(float64(depth))
		attrs = append(attrs, ch.Name(), depth)
	}
	w.log.Debug("Heartbeat", attrs...)
}

func selfStats(p *process.Process) (uint64, float64, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, err
	}
	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, err
	}
	return memInfo.RSS, cpuPercent, nil
}
