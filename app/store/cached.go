package store

import (
	"context"
	"fmt"

	"github.com/go-pkgz/lcw/v2"
)

// Interface is the preference storage contract satisfied by Store and Cached.
type Interface interface {
	Get(ctx context.Context, visitor string) (string, error)
	Set(ctx context.Context, visitor, theme string) error
	Delete(ctx context.Context, visitor string) error
	Count(ctx context.Context) (map[string]int, error)
	Close() error
}

// Cached wraps a store Interface with a loading cache and satisfies the Interface itself.
// Cache is populated on reads via loader function, invalidated on writes.
// Misses (ErrNotFound) are not cached.
type Cached struct {
	store Interface
	cache lcw.LoadingCache[string]
}

// NewCached creates a new cached store wrapper.
// maxKeys sets the maximum number of visitors kept in the cache.
func NewCached(store Interface, maxKeys int) (*Cached, error) {
	cache, err := lcw.NewLruCache(lcw.NewOpts[string]().MaxKeys(maxKeys))
	if err != nil {
		return nil, fmt.Errorf("failed to create cache: %w", err)
	}
	return &Cached{store: store, cache: cache}, nil
}

// Get returns the visitor's theme, using cache with load-through.
func (c *Cached) Get(ctx context.Context, visitor string) (string, error) {
	key := NormalizeVisitor(visitor)
	theme, err := c.cache.Get(key, func() (string, error) {
		val, loadErr := c.store.Get(ctx, key)
		if loadErr != nil {
			return "", fmt.Errorf("load from store: %w", loadErr)
		}
		return val, nil
	})
	if err != nil {
		return "", fmt.Errorf("cache get: %w", err)
	}
	return theme, nil
}

// Set stores a theme and invalidates the cache entry.
func (c *Cached) Set(ctx context.Context, visitor, theme string) error {
	key := NormalizeVisitor(visitor)
	if err := c.store.Set(ctx, key, theme); err != nil {
		return fmt.Errorf("store set: %w", err)
	}
	c.cache.Invalidate(func(k string) bool { return k == key })
	return nil
}

// Delete removes a preference and invalidates the cache entry.
func (c *Cached) Delete(ctx context.Context, visitor string) error {
	key := NormalizeVisitor(visitor)
	// invalidate regardless of error - visitor might have been cached
	c.cache.Invalidate(func(k string) bool { return k == key })
	if err := c.store.Delete(ctx, key); err != nil {
		return fmt.Errorf("store delete: %w", err)
	}
	return nil
}

// Count returns per-theme totals from the underlying store (not cached).
func (c *Cached) Count(ctx context.Context) (map[string]int, error) {
	res, err := c.store.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("store count: %w", err)
	}
	return res, nil
}

// Close closes the cache and underlying store.
func (c *Cached) Close() error {
	_ = c.cache.Close()
	if err := c.store.Close(); err != nil {
		return fmt.Errorf("store close: %w", err)
	}
	return nil
}

// Stats returns cache statistics.
func (c *Cached) Stats() lcw.CacheStat {
	return c.cache.Stat()
}
