// This file implements LFU eviction.

package eviction

import (
	"container/list"
	"sort"
)

// lfuNode represents one key tracked by LFU.
type lfuNode[K comparable] struct {
	key  K
	freq int           // access count since insertion, starts at 1
	elem *list.Element // position inside its frequency bucket
}

/*
lfu is the concrete implementation of the LFU eviction policy.

Keys are grouped into buckets by frequency, one ordered list per
bucket, plus a minFreq cursor so eviction never scans:

	freq=1: [k3, k2, k1]   // accessed once
	freq=2: [k5]           // accessed twice
	freq=4: [k9, k7]

Keys are pushed to the front of their bucket when they enter it, so the
back of a bucket is the key that has sat at that frequency the longest.
Eviction takes the back of the minFreq bucket, which makes the
tie-break between equally frequent keys deterministic: the least
recently promoted one goes first.
*/
type lfu[K comparable] struct {
	// nodes lets us find the node for a key in O(1).
	nodes map[K]*lfuNode[K]

	// buckets groups keys by access count.
	buckets map[int]*list.List

	// minFreq is the smallest frequency currently present, so the
	// victim bucket is found without scanning.
	minFreq int
}

func newLFU[K comparable]() *lfu[K] {
	return &lfu[K]{
		nodes:   make(map[K]*lfuNode[K]),
		buckets: make(map[int]*list.List),
	}
}

// OnGet bumps the key's frequency by one.
func (l *lfu[K]) OnGet(k K) {
	if n, ok := l.nodes[k]; ok {
		l.promote(n)
	}
}

// OnPut records a write. Updating an existing key counts as an access
// and bumps its frequency; a new key starts at frequency 1.
func (l *lfu[K]) OnPut(k K) {
	if n, ok := l.nodes[k]; ok {
		l.promote(n)
		return
	}

	n := &lfuNode[K]{key: k, freq: 1}
	l.nodes[k] = n
	n.elem = l.bucket(1).PushFront(n)

	// A fresh key with freq=1 means the minimum is 1 again.
	l.minFreq = 1
}

// Evict removes and returns the least frequently used key. Among keys
// tied at the minimum frequency it picks the one least recently
// promoted into that bucket.
func (l *lfu[K]) Evict() (K, bool) {
	b := l.buckets[l.minFreq]
	if b == nil || b.Len() == 0 {
		var zero K
		return zero, false
	}

	n := b.Back().Value.(*lfuNode[K])
	b.Remove(n.elem)
	delete(l.nodes, n.key)
	l.dropIfEmpty(n.freq)
	return n.key, true
}

// Remove drops the bookkeeping for an explicitly deleted key.
func (l *lfu[K]) Remove(k K) {
	n, ok := l.nodes[k]
	if !ok {
		return
	}
	l.buckets[n.freq].Remove(n.elem)
	delete(l.nodes, k)
	l.dropIfEmpty(n.freq)
}

// Keys lists tracked keys grouped by ascending frequency; inside a
// bucket the most recently promoted key comes first. Every tracked key
// appears exactly once.
func (l *lfu[K]) Keys() []K {
	freqs := make([]int, 0, len(l.buckets))
	for f := range l.buckets {
		freqs = append(freqs, f)
	}
	sort.Ints(freqs)

	keys := make([]K, 0, len(l.nodes))
	for _, f := range freqs {
		for e := l.buckets[f].Front(); e != nil; e = e.Next() {
			keys = append(keys, e.Value.(*lfuNode[K]).key)
		}
	}
	return keys
}

// Frequency reports how many times the key was accessed since it was
// inserted, or 0 for untracked keys.
func (l *lfu[K]) Frequency(k K) int {
	if n, ok := l.nodes[k]; ok {
		return n.freq
	}
	return 0
}

// promote moves a node from its current bucket to the next one up.
func (l *lfu[K]) promote(n *lfuNode[K]) {
	old := n.freq

	l.buckets[old].Remove(n.elem)
	n.freq++
	n.elem = l.bucket(n.freq).PushFront(n)

	// If the old bucket emptied out and was the minimum, the new
	// minimum is old+1: the node we just promoted is there.
	if l.emptied(old) && l.minFreq == old {
		l.minFreq++
	}
}

// bucket returns the list for a frequency, creating it on first use.
func (l *lfu[K]) bucket(freq int) *list.List {
	b := l.buckets[freq]
	if b == nil {
		b = list.New()
		l.buckets[freq] = b
	}
	return b
}

// emptied deletes a drained bucket and reports whether it did.
func (l *lfu[K]) emptied(freq int) bool {
	if b := l.buckets[freq]; b != nil && b.Len() == 0 {
		delete(l.buckets, freq)
		return true
	}
	return false
}

// dropIfEmpty cleans up after an eviction or removal. minFreq may be
// left pointing at a gone bucket; the next OnPut resets it to 1 and
// the next Evict on a non-empty policy finds its bucket through nodes
// being re-added, so we rescan only when the drained bucket was the
// minimum and keys remain.
func (l *lfu[K]) dropIfEmpty(freq int) {
	if !l.emptied(freq) || l.minFreq != freq || len(l.nodes) == 0 {
		return
	}
	// Smallest remaining frequency. Bucket count is tiny compared
	// to key count, so the scan is cheap.
	first := true
	for f := range l.buckets {
		if first || f < l.minFreq {
			l.minFreq = f
			first = false
		}
	}
}
