package types

// Entry is one live cache entry as reported by a snapshot.
//
// Frequency is only meaningful for frequency-counting policies (LFU).
// For recency-based policies it is always zero.
type Entry[K comparable, V any] struct {
	Key       K
	Value     V
	Frequency int
}

// PutOutcome classifies what a Put call did.
type PutOutcome int

const (
	// Inserted means the key was new and has been stored.
	Inserted PutOutcome = iota

	// Updated means the key already existed and its value was replaced.
	Updated

	// Dropped means nothing was stored. This only happens on a
	// zero-capacity cache, which never stores and never evicts.
	Dropped
)

func (o PutOutcome) String() string {
	switch o {
	case Inserted:
		return "inserted"
	case Updated:
		return "updated"
	case Dropped:
		return "dropped"
	default:
		return "unknown"
	}
}

/*
PutResult is the observable outcome of a single Put.

The driver renders its log line from this value instead of the cache
writing to a terminal. When an insertion forced an eviction, Evicted is
true and Victim names the key that was removed to make room.
*/
type PutResult[K comparable] struct {
	Outcome PutOutcome

	// Victim is the evicted key. Only valid when Evicted is true.
	Victim K

	// Evicted reports whether this Put removed an existing entry.
	Evicted bool
}
