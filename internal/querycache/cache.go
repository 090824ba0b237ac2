// Package querycache memoizes query results keyed by resource tag and
// parameter set. Concurrent fetches for an identical key share one in-flight
// request; invalidation marks entries stale without evicting them.
package querycache

import (
	"context"
	"net/url"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Key identifies a cached query result. Equality is structural: two keys
// match when both the resource tag and the canonical parameter encoding
// match.
type Key struct {
	Resource string
	Params   string
}

// NewKey builds a Key from a resource tag and an optional parameter set.
// url.Values.Encode sorts by key, so equal parameter sets produce equal keys.
func NewKey(resource string, params url.Values) Key {
	return Key{Resource: resource, Params: params.Encode()}
}

func (k Key) String() string {
	return k.Resource + "?" + k.Params
}

type entry struct {
	value     interface{}
	fetchedAt time.Time
	stale     bool
}

// Cache is a keyed, request-deduplicating cache of query results.
type Cache struct {
	mu      sync.Mutex
	entries map[Key]*entry
	group   singleflight.Group
	now     func() time.Time
}

// New creates an empty Cache.
func New() *Cache {
	return &Cache{
		entries: make(map[Key]*entry),
		now:     time.Now,
	}
}

// Query returns the cached value for key, or runs fetch to populate it.
// A fresh entry short-circuits without calling fetch. Concurrent callers for
// the same key while a fetch is in flight all receive that fetch's result.
// Errors are propagated and never cached.
func (c *Cache) Query(ctx context.Context, key Key, fetch func(ctx context.Context) (interface{}, error)) (interface{}, error) {
	c.mu.Lock()
	if e, ok := c.entries[key]; ok && !e.stale {
		c.mu.Unlock()
		return e.value, nil
	}
	c.mu.Unlock()

	value, err, _ := c.group.Do(key.String(), func() (interface{}, error) {
		v, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.entries[key] = &entry{value: v, fetchedAt: c.now()}
		c.mu.Unlock()
		return v, nil
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Invalidate marks every entry whose resource tag matches as stale. Stale
// entries are retained; the next Query for their key refetches.
func (c *Cache) Invalidate(resource string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k, e := range c.entries {
		if k.Resource == resource {
			e.stale = true
		}
	}
}

// Query fetches a value of type T through the cache.
func Query[T any](ctx context.Context, c *Cache, key Key, fetch func(ctx context.Context) (T, error)) (T, error) {
	v, err := c.Query(ctx, key, func(ctx context.Context) (interface{}, error) {
		return fetch(ctx)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}
