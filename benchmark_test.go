package policycache_test

import (
	"fmt"
	"testing"

	cache "github.com/cachelab/policycache"
	"github.com/cachelab/policycache/eviction"
)

func newBenchCache(b *testing.B, policy eviction.PolicyType, capacity int) *cache.Cache[string, int] {
	b.Helper()
	c, err := cache.New[string, int](policy, capacity)
	if err != nil {
		b.Fatalf("new cache: %v", err)
	}
	return c
}

//
// ================= HIT PATH =================
//

func BenchmarkGetHit(b *testing.B) {
	for _, policy := range allPolicies {
		b.Run(string(policy), func(b *testing.B) {
			c := newBenchCache(b, policy, 1024)
			for i := 0; i < 1024; i++ {
				c.Put(fmt.Sprintf("key-%d", i), i)
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				c.Get(fmt.Sprintf("key-%d", i%1024))
			}
		})
	}
}

func BenchmarkGetMiss(b *testing.B) {
	for _, policy := range allPolicies {
		b.Run(string(policy), func(b *testing.B) {
			c := newBenchCache(b, policy, 1024)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				c.Get(fmt.Sprintf("miss-%d", i))
			}
		})
	}
}

//
// ================= WRITE PATH =================
//

// BenchmarkPutChurn keeps the cache permanently full, so every insert
// pays for one eviction decision.
func BenchmarkPutChurn(b *testing.B) {
	for _, policy := range allPolicies {
		b.Run(string(policy), func(b *testing.B) {
			c := newBenchCache(b, policy, 512)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				c.Put(fmt.Sprintf("key-%d", i), i)
			}
		})
	}
}

func BenchmarkPutUpdate(b *testing.B) {
	for _, policy := range allPolicies {
		b.Run(string(policy), func(b *testing.B) {
			c := newBenchCache(b, policy, 64)
			c.Put("key", 0)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				c.Put("key", i)
			}
		})
	}
}

//
// ================= SNAPSHOT =================
//

func BenchmarkDisplay(b *testing.B) {
	for _, policy := range allPolicies {
		b.Run(string(policy), func(b *testing.B) {
			c := newBenchCache(b, policy, 256)
			for i := 0; i < 256; i++ {
				c.Put(fmt.Sprintf("key-%d", i), i)
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				c.Display()
			}
		})
	}
}
