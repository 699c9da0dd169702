package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"swipe-lab/domain"
	errs "swipe-lab/errors"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

// openTestDB needs a disposable database, the tests are skipped otherwise.
func openTestDB(t *testing.T) *sql.DB {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL is not set")
	}
	db, err := Open(context.Background(), url)
	require.NoError(t, err)
	require.NoError(t, EnsureSchema(context.Background(), db))
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestProfileStore_Upsert(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	store := NewProfileStore(openTestDB(t), logs.GetLoggerFromLevel(slog.LevelDebug))

	id := uuid.NewString()
	_, err := store.GetProfile(ctx, id)
	req.ErrorIs(err, errs.ErrProfileNotFound)

	p := domain.Profile{
		ID: id, Name: "Ana", Age: 27, City: "Porto", PhotoRef: "user_photos/a.jpg",
		Gender: domain.Female, GenderFilter: domain.FilterMale,
	}
	saved, err := store.UpsertProfile(ctx, p)
	req.NoError(err)
	req.Equal(uint64(1), saved.Version)

	saved, err = store.UpsertProfile(ctx, p)
	req.NoError(err)
	req.Equal(uint64(2), saved.Version)

	got, err := store.GetProfile(ctx, id)
	req.NoError(err)
	req.Equal(domain.FilterMale, got.GenderFilter)
	req.Equal(uint64(2), got.Version)
}

func TestSwipeLedger_CrossingLikesMatchOnce(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	ledger := NewSwipeLedger(openTestDB(t), logs.GetLoggerFromLevel(slog.LevelDebug))

	a, b := uuid.NewString(), uuid.NewString()
	records := make([]domain.SwipeRecord, 2)
	var wg sync.WaitGroup
	for i, pair := range [][2]string{{a, b}, {b, a}} {
		wg.Add(1)
		go func(i int, from, to string) {
			defer wg.Done()
			rec, err := ledger.Record(ctx, domain.SwipeDecision{From: from, To: to, Liked: true, At: time.Now()})
			req.NoError(err)
			records[i] = rec
		}(i, pair[0], pair[1])
	}
	wg.Wait()
	req.NotEqual(records[0].PendingNotification, records[1].PendingNotification)

	req.NoError(ledger.MarkMatchNotified(ctx, a, b))
	rec, err := ledger.Record(ctx, domain.SwipeDecision{From: a, To: b, Liked: true, At: time.Now()})
	req.NoError(err)
	req.True(rec.Mutual)
	req.False(rec.PendingNotification)

	d, err := ledger.Get(ctx, b, a)
	req.NoError(err)
	req.True(d.Liked)
}
