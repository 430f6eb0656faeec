package api

import "github.com/cachelab/policycache/types"

/*
Cache defines the PUBLIC contract of a policy-driven cache.

There is one concrete cache per eviction policy, all behind this one
interface; the policy is chosen once at construction and a caller never
needs to know which one it got. Drivers depend on this interface only.

The contract is deliberately silent about input and output: every
operation communicates through typed return values, never by writing to
a terminal.
*/
type Cache[K comparable, V any] interface {

	/*
		Get retrieves the value stored for key.

		Hit: the policy's bookkeeping is updated (recency moves,
		frequency counts), the value is returned with ok=true.

		Miss: the zero value is returned with ok=false and nothing
		else happens. A miss is an answer, not an error.
	*/
	Get(key K) (value V, ok bool)

	/*
		Put inserts or updates a key.

		If the key is present its value is replaced and the policy
		treats the write as a touch. If the key is new and the
		cache is full, exactly one victim is evicted first, per the
		policy's rule. A zero-capacity cache stores nothing and
		evicts nothing.

		The returned PutResult says which of those happened and
		names the victim if there was one.
	*/
	Put(key K, value V) types.PutResult[K]

	/*
		Remove deletes a key immediately, bypassing eviction. It
		reports whether the key was present. Removing an absent
		key is a safe no-op.
	*/
	Remove(key K) bool

	/*
		Display returns a snapshot of all live entries in the
		policy's display order: recency order for LRU, stack order
		for MRU, frequency groups for LFU, insertion order for
		FIFO. Every live entry appears exactly once.
	*/
	Display() []types.Entry[K, V]

	// Len returns the number of live entries.
	Len() int

	// Cap returns the fixed capacity the cache was built with.
	Cap() int
}
