package types

import "context"

// Loader is the contract between a read-through cache and its backing
// source of truth.
//
//  1. Cache checks memory, key not found
//  2. Cache calls Load(key)
//  3. Loader fetches the value (computation, API call, ...)
//  4. Cache stores the result and returns it
//
// Load runs only on the miss path; hits never touch the Loader.
type Loader[K comparable, V any] interface {
	Load(ctx context.Context, key K) (V, error)
}

// LoaderFunc adapts an ordinary function to the Loader interface.
type LoaderFunc[K comparable, V any] func(ctx context.Context, key K) (V, error)

func (f LoaderFunc[K, V]) Load(ctx context.Context, key K) (V, error) {
	return f(ctx, key)
}
