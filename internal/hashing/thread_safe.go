package hashing

import (
	"sync"

	"github.com/lgbarn/marblechess-go/internal/chess"
	"github.com/lgbarn/marblechess-go/internal/search"
)

// ThreadSafeCache wraps AnalysisCache with mutex protection for concurrent access.
type ThreadSafeCache struct {
	cache *AnalysisCache
	mu    sync.Mutex
}

// NewThreadSafeCache creates a new thread-safe cache.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafeCache(maxCapacity int) *ThreadSafeCache {
	return &ThreadSafeCache{
		cache: NewAnalysisCache(maxCapacity),
	}
}

// Lookup returns the stored entry for board at depth.
func (c *ThreadSafeCache) Lookup(board *chess.Board, depth int) (Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.Lookup(board, depth)
}

// Store records a search result.
func (c *ThreadSafeCache) Store(board *chess.Board, depth int, res search.Result, stats search.Stats) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.Store(board, depth, res, stats)
}

// Hits returns the number of successful lookups.
func (c *ThreadSafeCache) Hits() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.Hits()
}

// Misses returns the number of failed lookups.
func (c *ThreadSafeCache) Misses() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.Misses()
}

// Len returns the number of stored entries.
func (c *ThreadSafeCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.Len()
}

// IsFull returns true if the cache has reached its capacity limit.
func (c *ThreadSafeCache) IsFull() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.IsFull()
}
