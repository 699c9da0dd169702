package storage

import (
	"context"
	"sync"
	"testing"
	"time"

	"swipe-lab/domain"
	errs "swipe-lab/errors"

	"github.com/stretchr/testify/require"
)

func like(from, to string) domain.SwipeDecision {
	return domain.SwipeDecision{From: from, To: to, Liked: true, At: time.Now()}
}

func TestSwipeRepository_MutualLikeIsPendingOnce(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	db, cleanup := SetupTestDB(t)
	defer cleanup()
	repo := NewSwipeRepository(db, testLogger())

	rec, err := repo.Record(ctx, like("a", "b"))
	req.NoError(err)
	req.False(rec.Mutual)
	req.Nil(rec.Reciprocal)

	rec, err = repo.Record(ctx, like("b", "a"))
	req.NoError(err)
	req.True(rec.Mutual)
	req.True(rec.PendingNotification)
	req.NotNil(rec.Reciprocal)

	// Until the match is marked as notified it stays pending
	rec, err = repo.Record(ctx, like("b", "a"))
	req.NoError(err)
	req.True(rec.PendingNotification)
	req.NotNil(rec.Previous)

	req.NoError(repo.MarkMatchNotified(ctx, "a", "b"))
	rec, err = repo.Record(ctx, like("a", "b"))
	req.NoError(err)
	req.True(rec.Mutual)
	req.False(rec.PendingNotification)
}

func TestSwipeRepository_OverwriteByPair(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	db, cleanup := SetupTestDB(t)
	defer cleanup()
	repo := NewSwipeRepository(db, testLogger())

	_, err := repo.Get(ctx, "a", "b")
	req.ErrorIs(err, errs.ErrSwipeNotFound)

	_, err = repo.Record(ctx, like("a", "b"))
	req.NoError(err)
	_, err = repo.Record(ctx, domain.SwipeDecision{From: "a", To: "b", Liked: false, At: time.Now()})
	req.NoError(err)

	d, err := repo.Get(ctx, "a", "b")
	req.NoError(err)
	req.False(d.Liked)
}

func TestSwipeRepository_BrokenPairCanMatchAgain(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	db, cleanup := SetupTestDB(t)
	defer cleanup()
	repo := NewSwipeRepository(db, testLogger())

	_, err := repo.Record(ctx, like("a", "b"))
	req.NoError(err)
	_, err = repo.Record(ctx, like("b", "a"))
	req.NoError(err)
	req.NoError(repo.MarkMatchNotified(ctx, "b", "a"))

	rec, err := repo.Record(ctx, domain.SwipeDecision{From: "a", To: "b", Liked: false, At: time.Now()})
	req.NoError(err)
	req.False(rec.Mutual)

	rec, err = repo.Record(ctx, like("a", "b"))
	req.NoError(err)
	req.True(rec.PendingNotification)
}

func TestSwipeRepository_CrossingLikesMatchExactlyOnce(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	db, cleanup := SetupTestDB(t)
	defer cleanup()
	repo := NewSwipeRepository(db, testLogger())

	for round := 0; round < 20; round++ {
		a, b := "a"+string(rune('A'+round)), "b"+string(rune('A'+round))
		records := make([]domain.SwipeRecord, 2)
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			rec, err := repo.Record(ctx, like(a, b))
			req.NoError(err)
			records[0] = rec
		}()
		go func() {
			defer wg.Done()
			rec, err := repo.Record(ctx, like(b, a))
			req.NoError(err)
			records[1] = rec
		}()
		wg.Wait()

		pending := 0
		for _, r := range records {
			if r.PendingNotification {
				pending++
			}
		}
		req.Equal(1, pending, "round %d", round)
	}
}
