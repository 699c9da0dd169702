package workers

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestValueLogGC_StopsWithContext(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLogger(nil))
	req.NoError(err)
	defer db.Close()

	// Given a database with nothing to rewrite
	w := NewValueLogGC(db, logs.GetLoggerFromLevel(slog.LevelDebug), 10*time.Millisecond)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	// When the worker ticks a few times
	err = w.Run(ctx)

	// Then it only ends because of the context
	req.ErrorIs(err, context.DeadlineExceeded)
}
