package runtime

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPairLocker_OrderDoesNotMatter(t *testing.T) {
	req := require.New(t)
	locker := NewPairLocker()

	var (
		wg      sync.WaitGroup
		counter int
	)
	for i := 0; i < 100; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			unlock := locker.Lock("alice", "bob")
			counter++
			unlock()
		}()
		go func() {
			defer wg.Done()
			unlock := locker.Lock("bob", "alice")
			counter++
			unlock()
		}()
	}
	wg.Wait()
	req.Equal(200, counter)
}
