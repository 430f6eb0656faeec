// Command cachebench compares the throughput of the eviction policies
// under an identical synthetic workload.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	cache "github.com/cachelab/policycache"
	"github.com/cachelab/policycache/eviction"
	"github.com/cachelab/policycache/types"
)

func main() {
	capacity := flag.Int("capacity", 10000, "cache capacity in entries")
	keys := flag.Int("keys", 50000, "distinct keys in the workload")
	ops := flag.Int("ops", 500000, "operations per policy")
	flag.Parse()

	if *capacity < 0 || *keys <= 0 || *ops <= 0 {
		slog.Error("invalid workload parameters",
			"capacity", *capacity, "keys", *keys, "ops", *ops)
		os.Exit(1)
	}

	fmt.Println("================ POLICY BENCHMARK ================")
	fmt.Printf("Capacity     : %d\n", *capacity)
	fmt.Printf("Distinct keys: %d\n", *keys)
	fmt.Printf("Operations   : %d\n", *ops)
	fmt.Println("--------------------------------------------------")

	for _, policy := range []eviction.PolicyType{
		eviction.LRU, eviction.MRU, eviction.LFU, eviction.FIFO,
	} {
		elapsed, counters, err := runWorkload(policy, *capacity, *keys, *ops)
		if err != nil {
			slog.Error("benchmark failed", "policy", policy, "error", err)
			os.Exit(1)
		}

		fmt.Printf("%-4s  %10.0f ops/sec  hits=%d misses=%d evictions=%d\n",
			policy,
			float64(*ops)/elapsed.Seconds(),
			counters.Hits, counters.Misses, counters.Evictions)
	}
}

// runWorkload alternates puts and gets over a rolling key window, so
// every policy sees the same mix of inserts, updates, hits and misses.
func runWorkload(policy eviction.PolicyType, capacity, keys, ops int) (time.Duration, *types.Counters, error) {
	counters := &types.Counters{}
	c, err := cache.New[int, int](policy, capacity,
		cache.WithMetrics[int, int](counters))
	if err != nil {
		return 0, nil, err
	}

	start := time.Now()
	for i := 0; i < ops; i++ {
		k := i % keys
		if i%2 == 0 {
			c.Put(k, i)
		} else {
			c.Get(k)
		}
	}
	return time.Since(start), counters, nil
}
