// This file implements MRU eviction.

package eviction

/*
mru evicts the MOST recently written key.

The auxiliary structure is a plain stack of keys: every OnPut pushes,
Evict pops. Reads do not reorder anything; only writes count as
"recent" here.

The stack is deliberately never pruned. Updating an existing key pushes
a second record without removing the first, and Remove leaves the stack
untouched, so the stack can hold stale entries for keys that are long
gone from the index. Evict therefore may return a key the cache no
longer holds; the cache treats that as a no-op eviction and carries on.
Display callers get the raw stack from Keys and must filter it against
the live index themselves.
*/
type mru[K comparable] struct {
	// stack holds pushed keys, most recent last. May contain
	// duplicates and stale keys.
	stack []K
}

func newMRU[K comparable]() *mru[K] {
	return &mru[K]{}
}

// OnGet does nothing: reads do not affect MRU eviction order.
func (m *mru[K]) OnGet(K) {}

// OnPut pushes the key, making it the current eviction candidate.
// Duplicates of already-tracked keys accumulate on purpose.
func (m *mru[K]) OnPut(k K) {
	m.stack = append(m.stack, k)
}

// Evict pops the top of the stack: the most recently written key, or
// a stale record of one.
func (m *mru[K]) Evict() (K, bool) {
	if len(m.stack) == 0 {
		var zero K
		return zero, false
	}

	k := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	return k, true
}

// Remove intentionally leaves the stack alone. Scanning the stack for
// every explicit delete would cost O(n) per call; the stale record is
// harmless because Evict pops of absent keys are no-ops.
func (m *mru[K]) Remove(K) {}

// Keys returns the stack top-first, i.e. most recently written first.
// The slice may contain stale and duplicate keys.
func (m *mru[K]) Keys() []K {
	keys := make([]K, 0, len(m.stack))
	for i := len(m.stack) - 1; i >= 0; i-- {
		keys = append(keys, m.stack[i])
	}
	return keys
}

// Frequency is 0: MRU does not count accesses.
func (m *mru[K]) Frequency(K) int { return 0 }
