package config

import (
	"fmt"
	"net"
	"strings"

	"github.com/sirupsen/logrus"
)

// Validate checks every field. Load calls it; commands call it again after
// applying flag overrides.
func (c *Config) Validate() error {
	if err := c.validateDictionary(); err != nil {
		return err
	}

	if err := c.validateSearch(); err != nil {
		return err
	}

	if err := c.validateLogging(); err != nil {
		return err
	}

	if err := c.validateNetwork(); err != nil {
		return err
	}

	return nil
}

func (c *Config) validateDictionary() error {
	if c.WordLength < 1 || c.WordLength > 32 {
		return fmt.Errorf("WORDLADDER_WORD_LENGTH must be between 1 and 32, got %d", c.WordLength)
	}

	if c.CacheSize < 1 {
		return fmt.Errorf("WORDLADDER_CACHE_SIZE must be at least 1, got %d", c.CacheSize)
	}

	return nil
}

func (c *Config) validateSearch() error {
	if c.IDSMaxDepth < 1 {
		return fmt.Errorf("WORDLADDER_IDS_MAX_DEPTH must be at least 1, got %d", c.IDSMaxDepth)
	}

	if c.IDSMaxExpansions < 0 {
		return fmt.Errorf("WORDLADDER_IDS_MAX_EXPANSIONS cannot be negative, got %d", c.IDSMaxExpansions)
	}

	if c.Workers < 1 || c.Workers > 256 {
		return fmt.Errorf("WORDLADDER_WORKERS must be between 1 and 256, got %d", c.Workers)
	}

	return nil
}

func (c *Config) validateLogging() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("WORDLADDER_LOG_LEVEL: %w", err)
	}

	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("WORDLADDER_LOG_FORMAT must be text or json, got %q", c.LogFormat)
	}
}

func (c *Config) validateNetwork() error {
	if _, _, err := net.SplitHostPort(c.Addr); err != nil {
		return fmt.Errorf("WORDLADDER_ADDR must be host:port: %w", err)
	}

	return nil
}
