// This file implements FIFO eviction.

package eviction

type fifo[K comparable] struct {
	// queue keeps keys in insertion order. The front of the queue
	// (index 0) is the oldest key and the next victim.
	queue []K

	// set tracks which keys are currently in the queue.
	set map[K]struct{}
}

func newFIFO[K comparable]() *fifo[K] {
	return &fifo[K]{set: make(map[K]struct{})}
}

// OnGet does nothing. FIFO ignores reads completely.
func (f *fifo[K]) OnGet(K) {}

// OnPut enqueues a key on its first insertion. Updates do not move a
// key; FIFO only cares about when a key first arrived.
func (f *fifo[K]) OnPut(k K) {
	if _, ok := f.set[k]; ok {
		return
	}
	f.queue = append(f.queue, k)
	f.set[k] = struct{}{}
}

// Evict removes and returns the oldest inserted key.
func (f *fifo[K]) Evict() (K, bool) {
	if len(f.queue) == 0 {
		var zero K
		return zero, false
	}

	k := f.queue[0]
	f.queue = f.queue[1:]
	delete(f.set, k)
	return k, true
}

// Remove drops an explicitly deleted key from the queue, preserving
// the order of everything else.
func (f *fifo[K]) Remove(k K) {
	if _, ok := f.set[k]; !ok {
		return
	}

	delete(f.set, k)
	for i, v := range f.queue {
		if v == k {
			f.queue = append(f.queue[:i], f.queue[i+1:]...)
			break
		}
	}
}

// Keys lists tracked keys oldest first, matching eviction order.
func (f *fifo[K]) Keys() []K {
	keys := make([]K, len(f.queue))
	copy(keys, f.queue)
	return keys
}

// Frequency is 0: FIFO does not count accesses.
func (f *fifo[K]) Frequency(K) int { return 0 }
