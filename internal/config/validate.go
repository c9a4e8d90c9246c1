package config

import (
	"fmt"

	"github.com/lgbarn/marblechess-go/internal/errors"
)

// Validate checks the whole configuration. Every returned error wraps
// errors.ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("%w: negative worker count %d", errors.ErrInvalidConfig, c.Workers)
	}
	if c.MaxPly < 0 {
		return fmt.Errorf("%w: negative max ply %d", errors.ErrInvalidConfig, c.MaxPly)
	}
	if c.HumanColour != "white" && c.HumanColour != "black" {
		return fmt.Errorf("%w: colour must be white or black, got %q", errors.ErrInvalidConfig, c.HumanColour)
	}
	if err := c.Search.Validate(); err != nil {
		return err
	}
	if err := c.Cache.Validate(); err != nil {
		return err
	}
	if c.Output.Format == PGN && c.Mode != SelfPlay {
		return fmt.Errorf("%w: PGN output requires selfplay mode", errors.ErrInvalidConfig)
	}
	if c.Mode == Play && len(c.InputFiles) > 0 {
		return fmt.Errorf("%w: play mode reads moves from stdin, not files", errors.ErrInvalidConfig)
	}
	return nil
}
