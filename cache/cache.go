// Package cache keeps function results for a bounded time, keyed by function identity.
package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"
)

// DefaultTTL is how long results are kept unless configured otherwise.
const DefaultTTL = 24 * time.Hour

// Store holds encoded values until they expire.
type Store interface {
	// Get returns the value of key, false if absent or expired.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// Memoize returns fn with its results cached in store under key for ttl.
//
// Results are stored as JSON. Errors are never cached. A cached value that does not
// decode is dropped and fn is called again.
func Memoize[T any](store Store, key string, ttl time.Duration, fn func(context.Context) (T, error)) func(context.Context) (T, error) {
	return func(ctx context.Context) (T, error) {
		var v T
		if b, ok, err := store.Get(ctx, key); err != nil {
			log.Printf("cache get %s err (ignored): %v", key, err)
		} else if ok {
			if err := json.Unmarshal(b, &v); err == nil {
				return v, nil
			}
			log.Printf("cache %s holds an invalid value, recomputing", key)
		}

		v, err := fn(ctx)
		if err != nil {
			return v, err
		}
		b, err := json.Marshal(v)
		if err != nil {
			log.Printf("cache encode %s err (ignored): %v", key, err)
			return v, nil
		}
		if err := store.Set(ctx, key, b, ttl); err != nil {
			log.Printf("cache set %s err (ignored): %v", key, err)
		}
		return v, nil
	}
}

// Invalidate drops cached results.
func Invalidate(ctx context.Context, store Store, keys ...string) error {
	return store.Delete(ctx, keys...)
}
