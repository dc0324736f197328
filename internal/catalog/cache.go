package catalog

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

type entry struct {
	table  *GroupTable
	notice *Notice
}

// Cache memoizes Loader results per group identifier. A group is read from its
// source at most once; later lookups return the same *GroupTable. Concurrent first
// lookups of one group share a single load, so a Cache may be pooled across
// sessions as long as callers treat the tables as read-only.
type Cache struct {
	loader *Loader

	mu      sync.RWMutex
	entries map[string]entry
	flight  singleflight.Group
}

func NewCache(loader *Loader) *Cache {
	return &Cache{
		loader:  loader,
		entries: make(map[string]entry),
	}
}

func (c *Cache) Get(ctx context.Context, group string) (*GroupTable, *Notice) {
	c.mu.RLock()
	e, ok := c.entries[group]
	c.mu.RUnlock()
	if ok {
		return e.table, e.notice
	}

	v, _, _ := c.flight.Do(group, func() (any, error) {
		c.mu.RLock()
		e, ok := c.entries[group]
		c.mu.RUnlock()
		if ok {
			return e, nil
		}

		table, notice := c.loader.Load(ctx, group)
		e = entry{table: table, notice: notice}

		// a load cut short by cancellation is not the group's real state
		if ctx.Err() == nil {
			c.mu.Lock()
			c.entries[group] = e
			c.mu.Unlock()
		}
		return e, nil
	})

	e = v.(entry)
	return e.table, e.notice
}

// Loaded reports whether group has been memoized.
func (c *Cache) Loaded(group string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.entries[group]
	return ok
}

// Preload warms the cache for groups concurrently.
func (c *Cache) Preload(ctx context.Context, groups []string) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)

	for _, group := range groups {
		g.Go(func() error {
			c.Get(gctx, group)
			return gctx.Err()
		})
	}
	return g.Wait()
}
