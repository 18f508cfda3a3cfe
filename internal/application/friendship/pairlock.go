package friendship

import (
	"hash/fnv"
	"sync"

	"github.com/mittr/linkup/internal/domain/friendship"
	"github.com/mittr/linkup/internal/domain/uuid"
)

// defaultStripes is the number of mutex stripes in a PairLock.
const defaultStripes = 64

// PairLock serializes mutations per unordered user pair. The store writes
// single documents, but send/accept on the same pair still race between the
// existence check and the write; holding the pair's lock for the whole
// operation removes that window. The pair key is canonical (sorted), so
// lock(a, b) and lock(b, a) contend on the same stripe.
type PairLock struct {
	stripes []sync.Mutex
}

// NewPairLock creates a PairLock with the default stripe count.
func NewPairLock() *PairLock {
	return &PairLock{
		stripes: make([]sync.Mutex, defaultStripes),
	}
}

// Lock acquires the lock for the unordered pair {a, b} and returns the
// unlock function.
func (l *PairLock) Lock(a, b uuid.UUID) func() {
	m := &l.stripes[l.stripeFor(a, b)]
	m.Lock()
	return m.Unlock
}

func (l *PairLock) stripeFor(a, b uuid.UUID) uint32 {
	first, second := friendship.SortPair(a, b)
	h := fnv.New32a()
	_, _ = h.Write([]byte(first.String()))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(second.String()))
	return h.Sum32() % uint32(len(l.stripes))
}
