package eviction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cachelab/policycache/eviction"
)

func newPolicy(t *testing.T, pt eviction.PolicyType) eviction.Policy[string] {
	t.Helper()
	p, err := eviction.NewPolicy[string](pt)
	require.NoError(t, err)
	return p
}

func TestFactory(t *testing.T) {
	for _, pt := range []eviction.PolicyType{
		eviction.LRU, eviction.MRU, eviction.LFU, eviction.FIFO,
	} {
		p, err := eviction.NewPolicy[string](pt)
		require.NoError(t, err, "policy %s", pt)
		require.NotNil(t, p)
	}

	_, err := eviction.NewPolicy[string]("RANDOM")
	assert.ErrorIs(t, err, eviction.ErrUnknownPolicy)
}

func TestEvictOnEmptyPolicy(t *testing.T) {
	for _, pt := range []eviction.PolicyType{
		eviction.LRU, eviction.MRU, eviction.LFU, eviction.FIFO,
	} {
		t.Run(string(pt), func(t *testing.T) {
			p := newPolicy(t, pt)
			_, ok := p.Evict()
			assert.False(t, ok)
		})
	}
}

//
// ================= LRU =================
//

func TestLRUOrdering(t *testing.T) {
	p := newPolicy(t, eviction.LRU)

	p.OnPut("a")
	p.OnPut("b")
	p.OnPut("c")
	assert.Equal(t, []string{"c", "b", "a"}, p.Keys())

	// A read moves the key to the front.
	p.OnGet("a")
	assert.Equal(t, []string{"a", "c", "b"}, p.Keys())

	// So does an update.
	p.OnPut("b")
	assert.Equal(t, []string{"b", "a", "c"}, p.Keys())

	victim, ok := p.Evict()
	require.True(t, ok)
	assert.Equal(t, "c", victim)
	assert.Equal(t, []string{"b", "a"}, p.Keys())
}

func TestLRURemoveThenReinsert(t *testing.T) {
	p := newPolicy(t, eviction.LRU)

	p.OnPut("a")
	p.OnPut("b")
	p.Remove("a")
	p.OnPut("a")

	// Re-insertion creates one fresh node, never a duplicate.
	assert.Equal(t, []string{"a", "b"}, p.Keys())

	victim, ok := p.Evict()
	require.True(t, ok)
	assert.Equal(t, "b", victim)
	victim, ok = p.Evict()
	require.True(t, ok)
	assert.Equal(t, "a", victim)
	_, ok = p.Evict()
	assert.False(t, ok)
}

//
// ================= MRU =================
//

func TestMRUStackBehavior(t *testing.T) {
	p := newPolicy(t, eviction.MRU)

	p.OnPut("a")
	p.OnPut("b")
	p.OnGet("a") // reads are ignored

	victim, ok := p.Evict()
	require.True(t, ok)
	assert.Equal(t, "b", victim)
}

// Updates push duplicate records and Remove leaves the stack alone, so
// Evict can hand back stale keys. The cache layer is the one that
// filters them; the policy reports the raw stack.
func TestMRUStaleRecords(t *testing.T) {
	p := newPolicy(t, eviction.MRU)

	p.OnPut("a")
	p.OnPut("a") // duplicate
	p.Remove("a")

	assert.Equal(t, []string{"a", "a"}, p.Keys(), "stack is never pruned")

	victim, ok := p.Evict()
	require.True(t, ok)
	assert.Equal(t, "a", victim)

	victim, ok = p.Evict()
	require.True(t, ok)
	assert.Equal(t, "a", victim, "stale duplicate still pops")

	_, ok = p.Evict()
	assert.False(t, ok)
}

//
// ================= LFU =================
//

func TestLFUFrequencyCounting(t *testing.T) {
	p := newPolicy(t, eviction.LFU)

	p.OnPut("a")
	assert.Equal(t, 1, p.Frequency("a"), "insertion starts at 1")

	p.OnGet("a")
	p.OnGet("a")
	assert.Equal(t, 3, p.Frequency("a"))

	p.OnPut("a") // update counts as an access
	assert.Equal(t, 4, p.Frequency("a"))

	assert.Equal(t, 0, p.Frequency("untracked"))
}

func TestLFUEvictionOrder(t *testing.T) {
	p := newPolicy(t, eviction.LFU)

	p.OnPut("a")
	p.OnPut("b")
	p.OnPut("c")
	p.OnGet("a")
	p.OnGet("a")
	p.OnGet("b")

	// c: freq 1, b: freq 2, a: freq 3.
	for _, want := range []string{"c", "b", "a"} {
		victim, ok := p.Evict()
		require.True(t, ok)
		assert.Equal(t, want, victim)
	}
	_, ok := p.Evict()
	assert.False(t, ok)
}

// After the minimum bucket drains through eviction, the policy must
// find the next lowest frequency, not get stuck on a gone bucket.
func TestLFUMinFrequencyAdvances(t *testing.T) {
	p := newPolicy(t, eviction.LFU)

	p.OnPut("a")
	p.OnPut("b")
	p.OnGet("b") // a: 1, b: 2

	victim, ok := p.Evict()
	require.True(t, ok)
	assert.Equal(t, "a", victim)

	victim, ok = p.Evict()
	require.True(t, ok)
	assert.Equal(t, "b", victim)
}

func TestLFUKeysAscendingFrequency(t *testing.T) {
	p := newPolicy(t, eviction.LFU)

	p.OnPut("hot")
	p.OnPut("cold")
	p.OnGet("hot")
	p.OnGet("hot")

	assert.Equal(t, []string{"cold", "hot"}, p.Keys())
}

//
// ================= FIFO =================
//

func TestFIFOQueueOrder(t *testing.T) {
	p := newPolicy(t, eviction.FIFO)

	p.OnPut("a")
	p.OnPut("b")
	p.OnPut("a") // update: does not re-queue
	p.OnGet("b") // read: ignored

	assert.Equal(t, []string{"a", "b"}, p.Keys())

	victim, ok := p.Evict()
	require.True(t, ok)
	assert.Equal(t, "a", victim)
}

func TestFIFORemovePreservesOrder(t *testing.T) {
	p := newPolicy(t, eviction.FIFO)

	p.OnPut("a")
	p.OnPut("b")
	p.OnPut("c")
	p.Remove("b")

	assert.Equal(t, []string{"a", "c"}, p.Keys())
}
