package eviction

/*
This file defines how the cache decides what to remove when it runs out
of space.
*/

import (
	"errors"
	"fmt"
)

// ErrUnknownPolicy is returned by NewPolicy for a PolicyType it does
// not recognize. The caller is expected to refuse to build a cache in
// that case; no half-configured policy is ever returned.
var ErrUnknownPolicy = errors.New("unknown eviction policy")

/*
Policy is the interface every eviction strategy must follow.

A policy owns the auxiliary structure that orders or counts keys
(recency list, recency stack, frequency buckets, insertion queue). The
cache owns the primary key→value index. The two stay in step because
the cache reports every mutation through these methods.

The cache does NOT care how eviction works internally. It only calls
these methods.
*/
type Policy[K comparable] interface {

	// OnGet is called for every successful read of key.
	//
	// Recency policies reorder on reads, frequency policies count
	// them, FIFO and MRU ignore them entirely.
	OnGet(key K)

	// OnPut is called for every write of key, both first insertion
	// and value update. The policy treats an update as a touch:
	// LRU moves the key to the front, LFU bumps its frequency, MRU
	// pushes a fresh stack record.
	OnPut(key K)

	// Remove is called when a key is explicitly deleted from the
	// cache (not evicted). The policy discards its bookkeeping for
	// that key. Removing an untracked key does nothing.
	Remove(key K)

	// Evict selects the next victim and drops it from the policy's
	// own bookkeeping. It returns false when the policy tracks
	// nothing.
	//
	// The cache performs the actual index removal. MRU may name a
	// key the cache has already deleted (see mru.go); the cache
	// treats that as a no-op eviction.
	Evict() (K, bool)

	// Keys lists tracked keys in the policy's display order. The
	// slice may contain stale or duplicate keys for policies that
	// tolerate them (MRU); the cache filters against its index.
	Keys() []K

	// Frequency reports the access count for key. Policies that do
	// not count accesses return 0.
	Frequency(key K) int
}

// PolicyType is a simple identifier for supported eviction strategies.
type PolicyType string

const (
	// LRU (Least Recently Used) evicts the key untouched for the
	// longest time.
	LRU PolicyType = "LRU"

	// MRU (Most Recently Used) evicts the key written most
	// recently. Useful when the newest data is the least likely to
	// be asked for again.
	MRU PolicyType = "MRU"

	// LFU (Least Frequently Used) evicts the key accessed the
	// fewest times.
	LFU PolicyType = "LFU"

	// FIFO (First In First Out) evicts the oldest inserted key,
	// regardless of access.
	FIFO PolicyType = "FIFO"
)

// NewPolicy is a small factory function. Given a PolicyType, it creates
// the corresponding eviction policy.
func NewPolicy[K comparable](t PolicyType) (Policy[K], error) {
	switch t {
	case LRU:
		return newLRU[K](), nil
	case MRU:
		return newMRU[K](), nil
	case LFU:
		return newLFU[K](), nil
	case FIFO:
		return newFIFO[K](), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, t)
	}
}
