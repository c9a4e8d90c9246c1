package config

import (
	"fmt"

	"github.com/lgbarn/marblechess-go/internal/errors"
)

// CacheConfig holds settings for reusing search results across identical
// input positions.
type CacheConfig struct {
	// Enabled turns on the analysis cache
	Enabled bool

	// MaxEntries caps the cache size (0 = unbounded)
	MaxEntries int
}

// NewCacheConfig creates a CacheConfig with default values.
func NewCacheConfig() *CacheConfig {
	return &CacheConfig{
		Enabled: true,
	}
}

// Validate checks the cache settings.
func (c *CacheConfig) Validate() error {
	if c.MaxEntries < 0 {
		return fmt.Errorf("%w: negative cache size %d", errors.ErrInvalidConfig, c.MaxEntries)
	}
	return nil
}
