// Package querycache provides a key-addressed cache for asynchronous reads:
// concurrent reads sharing a key are deduplicated into one in-flight request,
// last-good results are cached until invalidated, and subscribers observing
// the same key are notified together. Writes go through Mutation, which
// declares the keys it staleness-marks on success.
package querycache

import (
	"context"
	"errors"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/jellydator/ttlcache/v3"
	"golang.org/x/sync/singleflight"
)

// ErrDisabled is returned by GetIf when the enabled guard is false, i.e. the
// read depends on a key that is not resolved yet.
var ErrDisabled = errors.New("query disabled")

// FetchFunc loads the value for a key from the source of truth.
type FetchFunc func(ctx context.Context) (any, error)

const (
	defaultEntryTTL      = 5 * time.Minute
	defaultRetryInterval = 250 * time.Millisecond
	defaultMaxRetries    = 1
)

// Cache is the process-wide read cache. Entries with no subscribers are
// garbage-collected after entryTTL of inactivity; subscribed entries are
// retained.
type Cache struct {
	entries *ttlcache.Cache[string, *entry]
	group   singleflight.Group

	entryTTL      time.Duration
	retryInterval time.Duration
	maxRetries    uint64
}

// CacheOption configures a Cache during New.
type CacheOption func(*Cache)

// WithEntryTTL sets how long an unsubscribed, untouched entry stays resident
// before garbage collection.
func WithEntryTTL(d time.Duration) CacheOption {
	return func(c *Cache) { c.entryTTL = d }
}

// WithRetry configures the bounded refetch applied to failing reads. retries
// is the number of additional attempts after the initial one; writes are
// never retried.
func WithRetry(interval time.Duration, retries uint64) CacheOption {
	return func(c *Cache) {
		c.retryInterval = interval
		c.maxRetries = retries
	}
}

// New constructs a Cache and starts its expiration loop. Call Close when the
// cache is no longer needed.
func New(opts ...CacheOption) *Cache {
	c := &Cache{
		entryTTL:      defaultEntryTTL,
		retryInterval: defaultRetryInterval,
		maxRetries:    defaultMaxRetries,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.entries = ttlcache.New(
		ttlcache.WithTTL[string, *entry](c.entryTTL),
	)
	// Subscribed entries survive expiry: re-insert instead of dropping. The
	// re-insert is asynchronous, so a concurrent first read may briefly
	// create a fresh entry that this Set then replaces.
	c.entries.OnEviction(func(_ context.Context, _ ttlcache.EvictionReason, item *ttlcache.Item[string, *entry]) {
		e := item.Value()
		if e.hasSubscribers() {
			go c.entries.Set(item.Key(), e, ttlcache.DefaultTTL)
		}
	})
	go c.entries.Start()
	return c
}

// Close stops the cache's background expiration loop.
func (c *Cache) Close() { c.entries.Stop() }

// lookup returns the entry for key, creating it on first use. Hits extend
// the entry's TTL so active keys stay resident.
func (c *Cache) lookup(key Key) *entry {
	loader := ttlcache.LoaderFunc[string, *entry](
		func(cache *ttlcache.Cache[string, *entry], k string) *ttlcache.Item[string, *entry] {
			return cache.Set(k, newEntry(key), ttlcache.DefaultTTL)
		},
	)
	return c.entries.Get(key.String(), ttlcache.WithLoader[string, *entry](loader)).Value()
}

// Get returns the value for key, fetching it when the entry is absent, stale,
// or errored. Concurrent callers of the same key share a single in-flight
// request and observe the same resolved value. Failed fetches are retried a
// bounded number of times before the error surfaces.
//
// The fetch runs with the context of the caller that initiated it; callers
// that join an in-flight request share its outcome.
func (c *Cache) Get(ctx context.Context, key Key, fetch FetchFunc) (any, error) {
	e := c.lookup(key)
	if v, ok := e.fresh(); ok {
		hitsTotal.Inc()
		return v, nil
	}
	missesTotal.Inc()

	v, err, shared := c.group.Do(key.String(), func() (any, error) {
		// Re-check freshness: another caller may have completed between the
		// fresh() check above and joining the flight group.
		if v, ok := e.fresh(); ok {
			return v, nil
		}
		e.markPending()
		v, err := c.fetchWithRetry(ctx, fetch)
		if err != nil {
			e.storeErr(err)
			return nil, err
		}
		e.storeValue(v)
		return v, nil
	})
	if shared {
		sharedFlightsTotal.Inc()
	}
	return v, err
}

// GetIf behaves like Get when enabled is true and returns ErrDisabled
// otherwise. Used for reads that must wait on a dependent key, e.g. not
// fetching a matter until its customer id is resolved.
func (c *Cache) GetIf(ctx context.Context, enabled bool, key Key, fetch FetchFunc) (any, error) {
	if !enabled {
		return nil, ErrDisabled
	}
	return c.Get(ctx, key, fetch)
}

func (c *Cache) fetchWithRetry(ctx context.Context, fetch FetchFunc) (any, error) {
	var v any
	op := func() error {
		var err error
		v, err = fetch(ctx)
		return err
	}
	b := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(c.retryInterval), c.maxRetries),
		ctx,
	)
	if err := backoff.Retry(op, b); err != nil {
		fetchFailuresTotal.Inc()
		return nil, err
	}
	return v, nil
}

// Invalidate marks every entry whose key starts with prefix as stale; the
// next Get on an affected key refetches. Entry values are kept until then so
// consumers can keep rendering the previous state.
func (c *Cache) Invalidate(prefix Key) {
	for _, item := range c.entries.Items() {
		e := item.Value()
		if !e.key.HasPrefix(prefix) {
			continue
		}
		e.invalidate()
		invalidationsTotal.Inc()
	}
}

// Status reports the lifecycle phase of key's entry, StatusIdle when the key
// is unknown. Each key's status gates its own UI region independently.
func (c *Cache) Status(key Key) Status {
	item := c.entries.Get(key.String(), ttlcache.WithDisableTouchOnHit[string, *entry]())
	if item == nil {
		return StatusIdle
	}
	return item.Value().currentStatus()
}

// Subscribe registers interest in key. The returned channel receives update
// and invalidation events until cancel is called; events are dropped rather
// than queued when the subscriber is slow. Subscribed entries are exempt
// from TTL garbage collection.
func (c *Cache) Subscribe(key Key) (<-chan Event, func()) {
	e := c.lookup(key)
	ch, id := e.subscribe()
	return ch, func() { e.unsubscribe(id) }
}
