// This file implements LRU eviction.

package eviction

// lruNode represents one key inside the LRU structure. The nodes form a
// doubly-linked list ordered by recency of use.
type lruNode[K comparable] struct {
	key K

	prev *lruNode[K]
	next *lruNode[K]
}

// lru is the concrete implementation of the LRU eviction policy.
//
// A key has exactly one node for its whole lifetime in the cache:
// touches move the node, they never recreate it. Re-inserting a key
// after removal allocates a fresh node, so the list can never hold
// duplicates.
type lru[K comparable] struct {
	// nodes maps cache keys to their list nodes, giving O(1) moves
	// and removals.
	nodes map[K]*lruNode[K]

	// head is the MOST recently used key.
	head *lruNode[K]

	// tail is the LEAST recently used key, i.e. the next victim.
	tail *lruNode[K]
}

func newLRU[K comparable]() *lru[K] {
	return &lru[K]{nodes: make(map[K]*lruNode[K])}
}

// OnGet marks the key as most recently used.
func (l *lru[K]) OnGet(k K) {
	if n, ok := l.nodes[k]; ok {
		l.moveToFront(n)
	}
}

// OnPut records a write. An update counts as a touch, so an existing
// key moves to the front just like a read; a new key gets a fresh node
// at the front.
func (l *lru[K]) OnPut(k K) {
	if n, ok := l.nodes[k]; ok {
		l.moveToFront(n)
		return
	}
	n := &lruNode[K]{key: k}
	l.nodes[k] = n
	l.addFront(n)
}

// Evict removes and returns the least recently used key, the tail of
// the list.
func (l *lru[K]) Evict() (K, bool) {
	if l.tail == nil {
		var zero K
		return zero, false
	}

	k := l.tail.key
	l.remove(l.tail)
	delete(l.nodes, k)
	return k, true
}

// Remove drops the bookkeeping for an explicitly deleted key.
func (l *lru[K]) Remove(k K) {
	if n, ok := l.nodes[k]; ok {
		l.remove(n)
		delete(l.nodes, k)
	}
}

// Keys lists tracked keys most-recent first, which is also the display
// order of an LRU cache.
func (l *lru[K]) Keys() []K {
	keys := make([]K, 0, len(l.nodes))
	for n := l.head; n != nil; n = n.next {
		keys = append(keys, n.key)
	}
	return keys
}

// Frequency is 0: LRU orders by recency, it does not count accesses.
func (l *lru[K]) Frequency(K) int { return 0 }

// addFront links a node in as the most recently used.
func (l *lru[K]) addFront(n *lruNode[K]) {
	n.prev = nil
	n.next = l.head
	if l.head != nil {
		l.head.prev = n
	}
	l.head = n

	// If the list was empty, head and tail are the same.
	if l.tail == nil {
		l.tail = n
	}
}

// remove unlinks a node, fixing up head and tail as needed.
func (l *lru[K]) remove(n *lruNode[K]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev = nil
	n.next = nil
}

func (l *lru[K]) moveToFront(n *lruNode[K]) {
	if l.head == n {
		return
	}
	l.remove(n)
	l.addFront(n)
}
