package types

// This file defines how the cache reports what it is doing.

/*
Metrics is the event channel between the cache and its caller.

Every Get and Put classifies exactly one event through this interface
(hit, miss, insert, update) plus one Eviction event per victim removed.
The cache never writes these events anywhere itself; the caller decides
whether they end up in a counter, a log line, or nowhere at all.
*/
type Metrics interface {

	// Hit is called when Get finds the requested key.
	Hit()

	// Miss is called when Get does not find the requested key.
	// A miss is a normal outcome, not an error.
	Miss()

	// Insert is called when Put stores a key that was not present.
	Insert()

	// Update is called when Put replaces the value of a present key.
	Update()

	// Eviction is called when a key is removed because the cache was
	// full and needed space for an insertion.
	Eviction()
}

/*
NopMetrics is a "do nothing" implementation of Metrics.

It is the default, so the cache never has to nil-check its metrics
sink on the hot path.
*/
type NopMetrics struct{}

func (NopMetrics) Hit()      {}
func (NopMetrics) Miss()     {}
func (NopMetrics) Insert()   {}
func (NopMetrics) Update()   {}
func (NopMetrics) Eviction() {}

// Counters is a plain counting implementation of Metrics.
//
// It is not synchronized; the core cache is single-threaded and a
// Counters instance belongs to exactly one cache.
type Counters struct {
	Hits      int
	Misses    int
	Inserts   int
	Updates   int
	Evictions int
}

func (c *Counters) Hit()      { c.Hits++ }
func (c *Counters) Miss()     { c.Misses++ }
func (c *Counters) Insert()   { c.Inserts++ }
func (c *Counters) Update()   { c.Updates++ }
func (c *Counters) Eviction() { c.Evictions++ }
