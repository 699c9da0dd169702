package runtime

import (
	"hash/fnv"
	"sync"

	"swipe-lab/domain"
)

const pairLockStripes = 256

// PairLocker serializes swipes between the same two users inside this process.
// Locks are striped: unrelated pairs may share a stripe, which only costs a wait.
type PairLocker struct {
	stripes [pairLockStripes]sync.Mutex
}

func NewPairLocker() *PairLocker {
	return &PairLocker{}
}

// Lock takes the lock of the unordered pair {a, b} and returns its release.
func (p *PairLocker) Lock(a, b string) func() {
	lo, hi := domain.PairKey(a, b)
	h := fnv.New32a()
	_, _ = h.Write([]byte(lo))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(hi))
	m := &p.stripes[h.Sum32()%pairLockStripes]
	m.Lock()
	return m.Unlock
}
