package runtime_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"

	"swipe-lab/domain"
	swipeErrors "swipe-lab/errors"
	"swipe-lab/infrastructure/storage"
	"swipe-lab/runtime"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func TestChannels_LoadTest(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	log := slog.New(slog.DiscardHandler)

	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	req.NoError(err)
	defer db.Close()
	transport, err := storage.NewChannelRepository(db, log)
	req.NoError(err)
	defer transport.Close()
	channel := runtime.NewChannelManager(transport, log).Shared(domain.FilterAll)

	const (
		owners  = 50
		edits   = 20
		readers = 8
	)

	// Given every owner republishing its profile many times concurrently
	var wg sync.WaitGroup
	for o := 0; o < owners; o++ {
		wg.Add(1)
		go func(owner string) {
			defer wg.Done()
			prefix := []byte(owner + ":")
			for v := 1; v <= edits; v++ {
				_, err := channel.Replace(ctx, func(body []byte) bool {
					return bytes.HasPrefix(body, prefix)
				}, []byte(fmt.Sprintf("%s:%d", owner, v)))
				if err != nil {
					t.Errorf("replace %s: %v", owner, err)
					return
				}
			}
		}(fmt.Sprintf("owner-%d", o))
	}
	wg.Wait()

	// Then only the last snapshot of each owner is left
	depth, err := channel.Depth(ctx)
	req.NoError(err)
	req.Equal(owners, depth)

	// When readers drain the channel concurrently
	var consumed sync.Map
	var total atomic.Int32
	for r := 0; r < readers; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				d, err := channel.Pop(ctx, "")
				if errors.Is(err, swipeErrors.ErrTransportBusy) {
					continue
				}
				if err != nil {
					t.Errorf("pop: %v", err)
					return
				}
				if d == nil {
					return
				}
				if _, dup := consumed.LoadOrStore(string(d.Body), struct{}{}); dup {
					t.Errorf("%s delivered twice", d.Body)
				}
				total.Add(1)
				if err := channel.Ack(ctx, d); err != nil {
					t.Errorf("ack: %v", err)
				}
			}
		}()
	}
	wg.Wait()

	// Then each snapshot went to exactly one reader and it was the latest one
	req.Equal(int32(owners), total.Load())
	consumed.Range(func(k, _ any) bool {
		req.Contains(k.(string), fmt.Sprintf(":%d", edits))
		return true
	})
}
