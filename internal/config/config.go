// Package config provides environment-driven configuration for wordladder.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration values.
type Config struct {
	DictPath         string
	WordLength       int
	CacheDir         string
	CacheSize        int
	LogLevel         string
	LogFormat        string
	IDSMaxDepth      int
	IDSMaxExpansions int
	Workers          int
	Addr             string
}

// Load reads an optional .env file from the working directory, then the
// environment, with sensible defaults. Variables already set in the
// environment win over .env entries.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: read .env: %w", err)
	}

	cfg := &Config{
		DictPath:  envOrDefault("WORDLADDER_DICT", ""),
		CacheDir:  envOrDefault("WORDLADDER_CACHE_DIR", ""),
		LogLevel:  envOrDefault("WORDLADDER_LOG_LEVEL", "info"),
		LogFormat: envOrDefault("WORDLADDER_LOG_FORMAT", "text"),
		Addr:      envOrDefault("WORDLADDER_ADDR", "127.0.0.1:8088"),
	}

	ints := []struct {
		key string
		def int
		dst *int
	}{
		{"WORDLADDER_WORD_LENGTH", 5, &cfg.WordLength},
		{"WORDLADDER_CACHE_SIZE", 4, &cfg.CacheSize},
		{"WORDLADDER_IDS_MAX_DEPTH", 50, &cfg.IDSMaxDepth},
		{"WORDLADDER_IDS_MAX_EXPANSIONS", 0, &cfg.IDSMaxExpansions},
		{"WORDLADDER_WORKERS", 4, &cfg.Workers},
	}
	for _, v := range ints {
		n, err := intOrDefault(v.key, v.def)
		if err != nil {
			return nil, err
		}
		*v.dst = n
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// envOrDefault returns the value of the environment variable or the default.
func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return defaultVal
}

func intOrDefault(key string, defaultVal int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}

	return n, nil
}
