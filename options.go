package policycache

import "github.com/cachelab/policycache/types"

// Option configures a Cache at construction time.
type Option[K comparable, V any] func(*Cache[K, V])

// WithMetrics installs a metrics sink. The default sink discards every
// event; passing nil keeps the default.
func WithMetrics[K comparable, V any](m types.Metrics) Option[K, V] {
	return func(c *Cache[K, V]) {
		if m != nil {
			c.metrics = m
		}
	}
}
