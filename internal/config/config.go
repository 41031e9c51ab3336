// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 StreamPick Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/streampick/streampick

// Package config defines the StreamPick configuration model and its layered
// loader (defaults, optional YAML file, environment variables).
package config

import (
	"fmt"
	"time"
)

// Config is the root configuration for the StreamPick server.
type Config struct {
	Server       ServerConfig       `koanf:"server"`
	Contentstack ContentstackConfig `koanf:"contentstack"`
	Scorer       ScorerConfig       `koanf:"scorer"`
	Cache        CacheConfig        `koanf:"cache"`
	API          APIConfig          `koanf:"api"`
	Logging      LoggingConfig      `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// ContentstackConfig holds credentials and endpoints for the content store.
// The delivery API serves published movie entries; the management API holds
// the single subscriber aggregate entry.
type ContentstackConfig struct {
	DeliveryHost        string        `koanf:"delivery_host"`
	ManagementHost      string        `koanf:"management_host"`
	APIKey              string        `koanf:"api_key"`
	DeliveryToken       string        `koanf:"delivery_token"`
	ManagementToken     string        `koanf:"management_token"`
	Environment         string        `koanf:"environment"`
	SubscribersEntryUID string        `koanf:"subscribers_entry_uid"`
	Timeout             time.Duration `koanf:"timeout"`
}

// ScorerConfig holds settings for the external scoring model.
// The scorer is best-effort: any failure falls back to local scoring,
// so the timeouts here bound how long a request waits before fallback.
type ScorerConfig struct {
	URL         string        `koanf:"url"`
	Timeout     time.Duration `koanf:"timeout"`
	DialTimeout time.Duration `koanf:"dial_timeout"`
	TopN        int           `koanf:"top_n"`
}

// CacheConfig holds settings for the badger-backed catalog cache.
// Path empty means in-memory (useful for development and tests).
type CacheConfig struct {
	Enabled bool          `koanf:"enabled"`
	Path    string        `koanf:"path"`
	TTL     time.Duration `koanf:"ttl"`
}

// APIConfig holds HTTP surface settings.
type APIConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitRequests int           `koanf:"rate_limit_requests"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// defaultConfig returns a Config with all defaults applied. Defaults are
// loaded first, then overridden by the config file and environment.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Contentstack: ContentstackConfig{
			DeliveryHost:   "https://cdn.contentstack.io",
			ManagementHost: "https://api.contentstack.io",
			Environment:    "production",
			Timeout:        10 * time.Second,
		},
		Scorer: ScorerConfig{
			URL:         "",
			Timeout:     10 * time.Second,
			DialTimeout: 5 * time.Second,
			TopN:        5,
		},
		Cache: CacheConfig{
			Enabled: true,
			Path:    "", // in-memory by default
			TTL:     5 * time.Minute,
		},
		API: APIConfig{
			CORSOrigins:       []string{"*"},
			RateLimitRequests: 100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// Validate checks the configuration for values that would prevent startup.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive, got %s", c.Server.Timeout)
	}
	if c.Scorer.Timeout <= 0 {
		return fmt.Errorf("scorer.timeout must be positive, got %s", c.Scorer.Timeout)
	}
	if c.Scorer.TopN <= 0 {
		return fmt.Errorf("scorer.top_n must be positive, got %d", c.Scorer.TopN)
	}
	if c.Cache.Enabled && c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be positive when cache is enabled, got %s", c.Cache.TTL)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}
	return nil
}
