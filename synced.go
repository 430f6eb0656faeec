package policycache

import (
	"sync"

	"github.com/cachelab/policycache/api"
	"github.com/cachelab/policycache/types"
)

/*
Synced makes a cache safe for concurrent use with a single mutex
around every operation.

One boundary is the only correct shape here: Get mutates policy state
(recency, frequency), so there are no read-only operations to hand an
RLock. The core cache stays single-threaded and pays nothing; callers
that share an instance across goroutines wrap it once.
*/
type Synced[K comparable, V any] struct {
	mu    sync.Mutex
	inner api.Cache[K, V]
}

var _ api.Cache[string, int] = (*Synced[string, int])(nil)

// NewSynced wraps a cache in a single mutual-exclusion boundary.
func NewSynced[K comparable, V any](inner api.Cache[K, V]) *Synced[K, V] {
	return &Synced[K, V]{inner: inner}
}

func (s *Synced[K, V]) Get(key K) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Get(key)
}

func (s *Synced[K, V]) Put(key K, value V) types.PutResult[K] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Put(key, value)
}

func (s *Synced[K, V]) Remove(key K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Remove(key)
}

func (s *Synced[K, V]) Display() []types.Entry[K, V] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Display()
}

func (s *Synced[K, V]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Len()
}

func (s *Synced[K, V]) Cap() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Cap()
}
