package workers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const gcDiscardRatio = 0.5

// ValueLogGC reclaims badger value log space left by acked and purged messages.
type ValueLogGC struct {
	db       *badger.DB
	log      *slog.Logger
	interval time.Duration
}

func NewValueLogGC(db *badger.DB, log *slog.Logger, interval time.Duration) *ValueLogGC {
	return &ValueLogGC{db: db, log: log, interval: interval}
}

func (w *ValueLogGC) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := w.collect(ctx); err != nil {
				return err
			}
		}
	}
}

func (w *ValueLogGC) collect(ctx context.Context) error {
	rewrites := 0
	for ctx.Err() == nil {
		err := w.db.RunValueLogGC(gcDiscardRatio)
		if errors.Is(err, badger.ErrNoRewrite) || errors.Is(err, badger.ErrRejected) {
			break
		}
		if err != nil {
			return err
		}
		rewrites++
	}
	if rewrites > 0 {
		w.log.Debug("Value log garbage collected", "rewrites", rewrites)
	}
	return nil
}
