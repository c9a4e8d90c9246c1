package hashing

import (
	"github.com/lgbarn/marblechess-go/internal/chess"
	"github.com/lgbarn/marblechess-go/internal/search"
)

// Entry is one cached search.
type Entry struct {
	// Board is kept to reject hash collisions
	Board  chess.Board
	Depth  int
	Result search.Result
	Stats  search.Stats
}

type cacheKey struct {
	hash  uint64
	depth int
}

// AnalysisCache remembers search results so an identical position
// searched to the same depth is only searched once.
type AnalysisCache struct {
	table       map[cacheKey][]Entry
	maxCapacity int // 0 = unlimited
	size        int
	hits        int
	misses      int
}

// NewAnalysisCache creates a cache. maxCapacity of 0 means unlimited.
func NewAnalysisCache(maxCapacity int) *AnalysisCache {
	return &AnalysisCache{
		table:       make(map[cacheKey][]Entry),
		maxCapacity: maxCapacity,
	}
}

// Lookup returns the stored entry for board at depth.
func (c *AnalysisCache) Lookup(board *chess.Board, depth int) (Entry, bool) {
	key := cacheKey{hash: Hash(board), depth: depth}
	for _, e := range c.table[key] {
		if e.Board == *board {
			c.hits++
			return e, true
		}
	}
	c.misses++
	return Entry{}, false
}

// Store records a search result. It returns false when the cache is full
// or the position is already stored.
func (c *AnalysisCache) Store(board *chess.Board, depth int, res search.Result, stats search.Stats) bool {
	if c.IsFull() {
		return false
	}
	key := cacheKey{hash: Hash(board), depth: depth}
	for _, e := range c.table[key] {
		if e.Board == *board {
			return false
		}
	}
	c.table[key] = append(c.table[key], Entry{Board: *board, Depth: depth, Result: res, Stats: stats})
	c.size++
	return true
}

// Hits returns the number of successful lookups.
func (c *AnalysisCache) Hits() int {
	return c.hits
}

// Misses returns the number of failed lookups.
func (c *AnalysisCache) Misses() int {
	return c.misses
}

// Len returns the number of stored entries.
func (c *AnalysisCache) Len() int {
	return c.size
}

// IsFull returns true if the cache has reached its capacity limit.
// Always returns false for unlimited capacity.
func (c *AnalysisCache) IsFull() bool {
	return c.maxCapacity > 0 && c.size >= c.maxCapacity
}
