// Package cache holds query results keyed by query identity.
//
// A key is a (query, argument) pair, e.g. ("posts", "feed") or
// ("community_posts", "<id>"). Invalidation always drops a whole query name
// and bumps its generation; a load that started under an older generation
// is returned to its caller but never stored.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/golang/groupcache/lru"
	"golang.org/x/sync/singleflight"
)

const (
	QueryPosts          = "posts"
	QueryCommunityPosts = "community_posts"
	QueryCommunities    = "communities"

	// DefaultLoadTimeout bounds a shared load once it no longer follows any
	// one caller's context.
	DefaultLoadTimeout = 30 * time.Second
)

type Key struct {
	Query string
	Arg   string
}

func (k Key) String() string { return k.Query + "\x00" + k.Arg }

// Invalidation marks every cached result of Query as stale.
type Invalidation struct {
	Query string
}

type QueryCache struct {
	mu      sync.Mutex
	entries *lru.Cache
	byQuery map[string]map[Key]struct{}
	gens    map[string]uint64
	flight  singleflight.Group

	loadTimeout time.Duration
}

func New(maxEntries int) *QueryCache {
	c := &QueryCache{
		entries: lru.New(maxEntries),
		byQuery: map[string]map[Key]struct{}{},
		gens:    map[string]uint64{},

		loadTimeout: DefaultLoadTimeout,
	}
	c.entries.OnEvicted = func(k lru.Key, _ interface{}) {
		key := k.(Key)
		if set, ok := c.byQuery[key.Query]; ok {
			delete(set, key)
		}
	}
	return c
}

// SetLoadTimeout changes the deadline of shared loads.
func (c *QueryCache) SetLoadTimeout(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loadTimeout = d
}

func (c *QueryCache) timeout() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loadTimeout
}

func (c *QueryCache) Get(key Key) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries.Get(key)
}

// Generation is the current generation of a query name.
func (c *QueryCache) Generation(query string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gens[query]
}

// Put stores v only if no invalidation of key.Query happened since gen.
func (c *QueryCache) Put(key Key, gen uint64, v any) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gens[key.Query] != gen {
		return false
	}
	c.entries.Add(key, v)
	set, ok := c.byQuery[key.Query]
	if !ok {
		set = map[Key]struct{}{}
		c.byQuery[key.Query] = set
	}
	set[key] = struct{}{}
	return true
}

func (c *QueryCache) Invalidate(msgs ...Invalidation) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, m := range msgs {
		c.gens[m.Query]++
		for key := range c.byQuery[m.Query] {
			c.entries.Remove(key)
		}
		delete(c.byQuery, m.Query)
	}
}

func (c *QueryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries.Len()
}

// Fetch returns the cached value for key or runs load, collapsing concurrent
// loads of the same key into one call. The shared load is detached from the
// caller that started it and bounded by the cache's load timeout; each caller
// still stops waiting when its own ctx ends.
func Fetch[T any](ctx context.Context, c *QueryCache, key Key, load func(context.Context) (T, error)) (T, error) {
	var zero T
	if v, ok := c.Get(key); ok {
		return v.(T), nil
	}
	ch := c.flight.DoChan(key.String(), func() (any, error) {
		lctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout())
		defer cancel()

		gen := c.Generation(key.Query)
		out, err := load(lctx)
		if err != nil {
			return nil, err
		}
		c.Put(key, gen, out)
		return out, nil
	})
	select {
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(T), nil
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}
