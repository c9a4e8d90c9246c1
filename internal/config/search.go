package config

import (
	"fmt"

	"github.com/lgbarn/marblechess-go/internal/errors"
)

// DefaultDepth is the search depth used when none is configured.
const DefaultDepth = 3

// MaxDepth bounds the configured search depth. The search has no time
// control, so anything deeper is impractical.
const MaxDepth = 8

// SearchConfig holds settings for the minimax search.
type SearchConfig struct {
	// Depth is the search depth in plies
	Depth int

	// MoveOrdering searches captures first
	MoveOrdering bool
}

// NewSearchConfig creates a SearchConfig with default values.
func NewSearchConfig() *SearchConfig {
	return &SearchConfig{
		Depth:        DefaultDepth,
		MoveOrdering: true,
	}
}

// Validate checks the search settings.
func (c *SearchConfig) Validate() error {
	if c.Depth < 1 || c.Depth > MaxDepth {
		return fmt.Errorf("%w: depth %d out of range 1-%d", errors.ErrInvalidConfig, c.Depth, MaxDepth)
	}
	return nil
}
