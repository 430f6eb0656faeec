// Package policycache is an in-memory key-value cache with pluggable
// eviction policies.
//
// The cache keeps two structures in step: a primary key→value index for
// O(1) lookups, and a per-policy auxiliary structure (recency list,
// recency stack, frequency buckets, insertion queue) that makes the
// eviction decision O(1) as well. The policy is chosen once at
// construction; callers work against the api.Cache contract and never
// see which one is behind it.
//
// A cache instance is single-threaded: Get mutates policy state, so
// there are no pure readers to exploit. Wrap an instance in Synced when
// it has to be shared across goroutines.
package policycache

import (
	"errors"
	"fmt"

	"github.com/cachelab/policycache/api"
	"github.com/cachelab/policycache/eviction"
	"github.com/cachelab/policycache/types"
)

// ErrInvalidCapacity is returned by New for a negative capacity.
// Capacity 0 is valid: a degenerate cache that stores nothing.
var ErrInvalidCapacity = errors.New("capacity must not be negative")

/*
Cache is the concrete cache behind the api.Cache contract.

It owns the primary index and exactly one eviction policy instance.
Every mutation goes through Get/Put/Remove, which report to the policy
so the auxiliary structure mirrors the index at all times. The one
tolerated divergence is MRU's never-pruned stack, whose stale records
are filtered out on eviction and display.
*/
type Cache[K comparable, V any] struct {
	// capacity is the maximum number of entries, fixed at
	// construction. Fullness is resolved by eviction, never
	// surfaced as an error.
	capacity int

	// index is the primary key→value mapping.
	index map[K]V

	// policy owns the ordering/frequency structure and picks
	// eviction victims.
	policy eviction.Policy[K]

	// metrics receives one classified event per operation.
	metrics types.Metrics
}

var _ api.Cache[string, int] = (*Cache[string, int])(nil)

// New builds a cache with the given eviction policy and capacity.
// A negative capacity or an unknown policy is a construction error;
// no cache is returned in that case.
func New[K comparable, V any](policy eviction.PolicyType, capacity int, opts ...Option[K, V]) (*Cache[K, V], error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}

	p, err := eviction.NewPolicy[K](policy)
	if err != nil {
		return nil, err
	}

	c := &Cache[K, V]{
		capacity: capacity,
		index:    make(map[K]V, capacity),
		policy:   p,
		metrics:  types.NopMetrics{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Get retrieves the value stored for key. A hit counts as an access
// for the eviction policy; a miss has no side effect at all.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	v, ok := c.index[key]
	if !ok {
		c.metrics.Miss()
		var zero V
		return zero, false
	}

	c.policy.OnGet(key)
	c.metrics.Hit()
	return v, true
}

/*
Put inserts or updates a key.

Updates replace the value and touch the policy, so an updated key is
"recent" again (and one access more frequent, under LFU).

Inserting into a full cache evicts exactly one victim first. The policy
names the victim; if it names a key the index no longer holds (an MRU
stale-stack record), the pop is treated as a no-op eviction and the
insertion proceeds anyway.

On a zero-capacity cache Put stores nothing, evicts nothing, and
reports Dropped.
*/
func (c *Cache[K, V]) Put(key K, value V) types.PutResult[K] {
	if c.capacity == 0 {
		return types.PutResult[K]{Outcome: types.Dropped}
	}

	if _, ok := c.index[key]; ok {
		c.index[key] = value
		c.policy.OnPut(key)
		c.metrics.Update()
		return types.PutResult[K]{Outcome: types.Updated}
	}

	res := types.PutResult[K]{Outcome: types.Inserted}
	if len(c.index) >= c.capacity {
		if victim, ok := c.policy.Evict(); ok {
			if _, live := c.index[victim]; live {
				delete(c.index, victim)
				c.metrics.Eviction()
				res.Victim = victim
				res.Evicted = true
			}
		}
	}

	c.index[key] = value
	c.policy.OnPut(key)
	c.metrics.Insert()
	return res
}

// Remove deletes a key immediately and reports whether it was present.
// The policy cleans up its bookkeeping too, with the documented MRU
// exception: its stack keeps the stale record.
func (c *Cache[K, V]) Remove(key K) bool {
	if _, ok := c.index[key]; !ok {
		return false
	}
	delete(c.index, key)
	c.policy.Remove(key)
	return true
}

// Display returns a snapshot of all live entries in the policy's
// display order. Stale and duplicate keys reported by the policy (MRU)
// are filtered against the index, so every live entry appears exactly
// once and every listed entry is retrievable.
func (c *Cache[K, V]) Display() []types.Entry[K, V] {
	entries := make([]types.Entry[K, V], 0, len(c.index))
	seen := make(map[K]struct{}, len(c.index))

	for _, k := range c.policy.Keys() {
		v, ok := c.index[k]
		if !ok {
			continue // stale policy record
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		entries = append(entries, types.Entry[K, V]{
			Key:       k,
			Value:     v,
			Frequency: c.policy.Frequency(k),
		})
	}
	return entries
}

// Len returns the number of live entries.
func (c *Cache[K, V]) Len() int { return len(c.index) }

// Cap returns the capacity the cache was built with.
func (c *Cache[K, V]) Cap() int { return c.capacity }
