package workers

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"swipe-lab/contract"
	"swipe-lab/errors"
)

const DefaultRestartDelay = 200 * time.Millisecond

// Supervisor runs each worker in its own goroutine and restarts it when it
// panics or fails. A worker returning nil is done and never restarted.
// Cancelling the parent context, or calling Stop, ends every worker.
type Supervisor struct {
	Cancel       context.CancelFunc
	wg           *sync.WaitGroup
	log          *slog.Logger
	restartDelay time.Duration
	workers      []contract.Worker
}

func NewSupervisor(log *slog.Logger, restartDelay time.Duration) *Supervisor {
	if restartDelay <= 0 {
		restartDelay = DefaultRestartDelay
	}
	return &Supervisor{wg: &sync.WaitGroup{}, log: log, restartDelay: restartDelay}
}

// Run blocks until every worker has returned.
// If the parent cancels, we cancel. If we call s.Cancel(), only our children cancel.
func (s *Supervisor) Run(ctx context.Context) {
	supervisedCtx, cancel := context.WithCancel(ctx)
	s.Cancel = cancel
	defer s.Cancel()

	for _, worker := range s.workers {
		s.Start(supervisedCtx, worker)
	}
	s.wg.Wait()
}

func (s *Supervisor) Add(worker ...contract.Worker) contract.ISupervisor {
	s.workers = append(s.workers, worker...)
	return s
}

// Start runs one worker under supervision. A crash in one worker never stops the others.
func (s *Supervisor) Start(ctx context.Context, worker contract.Worker) {
	s.wg.Add(1)
	name := contract.GetWorkerName(worker)

	go func() {
		defer s.wg.Done()
		for restarts := 0; ; restarts++ {
			if ctx.Err() != nil {
				s.log.Info("Stopping worker", "name", name)
				return
			}

			err := runProtected(ctx, worker)
			if err == nil {
				s.log.Info("Worker finished", "name", name)
				return
			}
			if ctx.Err() != nil {
				s.log.Info("Worker stopped (context canceled)", "name", name)
				return
			}

			s.log.Warn("Worker crashed, restarting", "name", name, "restarts", restarts, "error", err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(s.restartDelay):
			}
		}
	}()
}

func (s *Supervisor) Stop() {
	if s.Cancel != nil {
		s.Cancel()
	}
}

func runProtected(ctx context.Context, worker contract.Worker) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.ErrWorkerPanic
		}
	}()
	return worker.Run(ctx)
}
