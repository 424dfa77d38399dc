package querycache

import (
	"context"
	"fmt"
)

// Fetch is a typed wrapper over Cache.Get. The cached value for a key must
// always carry the same concrete type; a mismatch reports an error instead
// of panicking.
func Fetch[T any](ctx context.Context, c *Cache, key Key, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	v, err := c.Get(ctx, key, func(ctx context.Context) (any, error) {
		return fn(ctx)
	})
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("cache entry %q holds %T, want %T", key.String(), v, zero)
	}
	return t, nil
}

// FetchIf is the typed counterpart of Cache.GetIf.
func FetchIf[T any](ctx context.Context, c *Cache, enabled bool, key Key, fn func(ctx context.Context) (T, error)) (T, error) {
	if !enabled {
		var zero T
		return zero, ErrDisabled
	}
	return Fetch(ctx, c, key, fn)
}
