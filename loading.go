package policycache

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/cachelab/policycache/api"
	"github.com/cachelab/policycache/types"
)

/*
LoadingCache is a read-through wrapper around a cache.

On a miss it asks the Loader for the value, stores it, and returns it;
hits never touch the Loader. When the wrapper is shared across
goroutines, concurrent misses for the same key are collapsed into a
single Load call by singleflight, so a slow loader is hit once per key,
not once per caller.

The wrapped cache is guarded by the wrapper's own mutex; callers should
hand it an unwrapped cache, not a Synced one.
*/
type LoadingCache[K comparable, V any] struct {
	mu     sync.Mutex
	cache  api.Cache[K, V]
	loader types.Loader[K, V]
	sf     singleflight.Group
}

// NewLoading wraps a cache with a read-through loader.
func NewLoading[K comparable, V any](cache api.Cache[K, V], loader types.Loader[K, V]) *LoadingCache[K, V] {
	return &LoadingCache[K, V]{cache: cache, loader: loader}
}

// Get returns the cached value for key, loading it on a miss. A Load
// failure is returned as-is and nothing is stored.
func (l *LoadingCache[K, V]) Get(ctx context.Context, key K) (V, error) {
	l.mu.Lock()
	if v, ok := l.cache.Get(key); ok {
		l.mu.Unlock()
		return v, nil
	}
	l.mu.Unlock()

	// singleflight keys on a string; fmt.Sprint gives a stable one
	// for any comparable key type.
	v, err, _ := l.sf.Do(fmt.Sprint(key), func() (any, error) {
		val, err := l.loader.Load(ctx, key)
		if err != nil {
			return nil, err
		}
		l.mu.Lock()
		l.cache.Put(key, val)
		l.mu.Unlock()
		return val, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return v.(V), nil
}

// Put writes through to the wrapped cache.
func (l *LoadingCache[K, V]) Put(key K, value V) types.PutResult[K] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cache.Put(key, value)
}

// Remove deletes a key from the wrapped cache. The next Get for it
// will go back to the Loader.
func (l *LoadingCache[K, V]) Remove(key K) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cache.Remove(key)
}
