package storage

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	errs "swipe-lab/errors"

	"github.com/stretchr/testify/require"
)

func newChannelRepository(t *testing.T) (*ChannelRepository, func()) {
	db, cleanup := SetupTestDB(t)
	repo, err := NewChannelRepository(db, testLogger())
	require.NoError(t, err)
	return repo, func() {
		_ = repo.Close()
		cleanup()
	}
}

func TestChannelRepository_FIFO(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repo, cleanup := newChannelRepository(t)
	defer cleanup()

	for i := 0; i < 12; i++ {
		req.NoError(repo.Push(ctx, "profiles_all", []byte(fmt.Sprintf("m%d", i))))
	}
	depth, err := repo.Depth(ctx, "profiles_all")
	req.NoError(err)
	req.Equal(12, depth)

	for i := 0; i < 12; i++ {
		d, err := repo.Pop(ctx, "profiles_all", "")
		req.NoError(err)
		req.NotNil(d)
		req.Equal(fmt.Sprintf("m%d", i), string(d.Body))
		req.NoError(repo.Ack(ctx, d))
	}

	d, err := repo.Pop(ctx, "profiles_all", "")
	req.NoError(err)
	req.Nil(d, "an empty channel pops nothing")
}

func TestChannelRepository_ChannelsAreIsolated(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repo, cleanup := newChannelRepository(t)
	defer cleanup()

	req.NoError(repo.Push(ctx, "inbox_1", []byte("for one")))
	req.NoError(repo.Push(ctx, "inbox_10", []byte("for ten")))

	d, err := repo.Pop(ctx, "inbox_1", "")
	req.NoError(err)
	req.Equal("for one", string(d.Body))

	d, err = repo.Pop(ctx, "inbox_1", "")
	req.NoError(err)
	req.Nil(d)
}

func TestChannelRepository_RequeueKeepsPosition(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repo, cleanup := newChannelRepository(t)
	defer cleanup()

	req.NoError(repo.Push(ctx, "profiles_male", []byte("first")))
	req.NoError(repo.Push(ctx, "profiles_male", []byte("second")))

	// When the head is popped then requeued
	first, err := repo.Pop(ctx, "profiles_male", "")
	req.NoError(err)
	req.NoError(repo.Requeue(ctx, first))

	// Then it is still the head
	again, err := repo.Pop(ctx, "profiles_male", "")
	req.NoError(err)
	req.Equal("first", string(again.Body))
	req.Equal(first.Tag, again.Tag)

	// And settling twice is refused
	req.NoError(repo.Ack(ctx, again))
	req.ErrorIs(repo.Ack(ctx, again), errs.ErrDeliveryNotFound)
}

func TestChannelRepository_PopAfterCursor(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repo, cleanup := newChannelRepository(t)
	defer cleanup()

	req.NoError(repo.Push(ctx, "profiles_all", []byte("mine")))
	req.NoError(repo.Push(ctx, "profiles_all", []byte("theirs")))

	mine, err := repo.Pop(ctx, "profiles_all", "")
	req.NoError(err)
	req.NoError(repo.Requeue(ctx, mine))

	// Given the cursor past the requeued message
	next, err := repo.Pop(ctx, "profiles_all", mine.Tag)
	req.NoError(err)
	req.Equal("theirs", string(next.Body))

	none, err := repo.Pop(ctx, "profiles_all", next.Tag)
	req.NoError(err)
	req.Nil(none)

	depth, err := repo.Depth(ctx, "profiles_all")
	req.NoError(err)
	req.Equal(1, depth, "the requeued message is still ready")
}

func TestChannelRepository_Purge(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repo, cleanup := newChannelRepository(t)
	defer cleanup()

	for _, body := range []string{"a:1", "b:1", "a:2", "c:1"} {
		req.NoError(repo.Push(ctx, "profiles_female", []byte(body)))
	}

	removed, err := repo.Purge(ctx, "profiles_female", func(body []byte) bool {
		return body[0] == 'a'
	})
	req.NoError(err)
	req.Equal(2, removed)

	var left []string
	for {
		d, err := repo.Pop(ctx, "profiles_female", "")
		req.NoError(err)
		if d == nil {
			break
		}
		left = append(left, string(d.Body))
		req.NoError(repo.Ack(ctx, d))
	}
	req.Equal([]string{"b:1", "c:1"}, left)
}

func TestChannelRepository_RecoverInflight(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repo, cleanup := newChannelRepository(t)
	defer cleanup()

	now := time.Now()
	repo.now = func() time.Time { return now }

	req.NoError(repo.Push(ctx, "profiles_all", []byte("lost")))
	_, err := repo.Pop(ctx, "profiles_all", "")
	req.NoError(err)

	// Nothing is old enough yet
	n, err := repo.RecoverInflight(ctx, time.Minute)
	req.NoError(err)
	req.Zero(n)

	// When the consumer never came back
	now = now.Add(2 * time.Minute)
	n, err = repo.RecoverInflight(ctx, time.Minute)
	req.NoError(err)
	req.Equal(1, n)

	d, err := repo.Pop(ctx, "profiles_all", "")
	req.NoError(err)
	req.Equal("lost", string(d.Body))
}

func TestChannelRepository_InvalidChannel(t *testing.T) {
	req := require.New(t)
	repo, cleanup := newChannelRepository(t)
	defer cleanup()

	req.ErrorIs(repo.Push(context.Background(), "bad:name", []byte("x")), errs.ErrInvalidChannel)
	_, err := repo.Pop(context.Background(), "", "")
	req.ErrorIs(err, errs.ErrInvalidChannel)
}

func TestChannelRepository_ConcurrentPopsDeliverOnce(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repo, cleanup := newChannelRepository(t)
	defer cleanup()

	const total = 50
	for i := 0; i < total; i++ {
		req.NoError(repo.Push(ctx, "profiles_all", []byte(fmt.Sprintf("%d", i))))
	}

	var (
		mu   sync.Mutex
		seen = map[string]int{}
		wg   sync.WaitGroup
	)
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				d, err := repo.Pop(ctx, "profiles_all", "")
				if err != nil {
					continue
				}
				if d == nil {
					return
				}
				mu.Lock()
				seen[string(d.Body)]++
				mu.Unlock()
				_ = repo.Ack(ctx, d)
			}
		}()
	}
	wg.Wait()

	req.Len(seen, total)
	for body, count := range seen {
		req.Equal(1, count, "message %s delivered more than once", body)
	}
}
