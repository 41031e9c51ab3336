// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 StreamPick Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/streampick/streampick

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Contentstack.DeliveryHost != "https://cdn.contentstack.io" {
		t.Errorf("Contentstack.DeliveryHost = %q", cfg.Contentstack.DeliveryHost)
	}
	if cfg.Scorer.TopN != 5 {
		t.Errorf("Scorer.TopN = %d, want 5", cfg.Scorer.TopN)
	}
	if !cfg.Cache.Enabled || cfg.Cache.TTL != 5*time.Minute {
		t.Errorf("unexpected cache defaults: %+v", cfg.Cache)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  port: 9090
scorer:
  url: http://scorer:8000
  top_n: 3
logging:
  level: debug
  format: console
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Scorer.URL != "http://scorer:8000" || cfg.Scorer.TopN != 3 {
		t.Errorf("unexpected scorer config: %+v", cfg.Scorer)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "console" {
		t.Errorf("unexpected logging config: %+v", cfg.Logging)
	}
	// Untouched sections keep their defaults.
	if cfg.Server.Timeout != 30*time.Second {
		t.Errorf("Server.Timeout = %s, want default", cfg.Server.Timeout)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 9090\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("SCORER_DIAL_TIMEOUT", "2s")
	t.Setenv("CONTENTSTACK_API_KEY", "env-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 7070 {
		t.Errorf("Server.Port = %d, want 7070 from env", cfg.Server.Port)
	}
	if cfg.Scorer.DialTimeout != 2*time.Second {
		t.Errorf("Scorer.DialTimeout = %s, want 2s", cfg.Scorer.DialTimeout)
	}
	if cfg.Contentstack.APIKey != "env-key" {
		t.Errorf("Contentstack.APIKey = %q, want env-key", cfg.Contentstack.APIKey)
	}
}

func TestLoadCORSOriginsFromEnv(t *testing.T) {
	t.Setenv("API_CORS_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := []string{"https://a.example.com", "https://b.example.com"}
	if len(cfg.API.CORSOrigins) != len(want) {
		t.Fatalf("CORSOrigins = %v, want %v", cfg.API.CORSOrigins, want)
	}
	for i := range want {
		if cfg.API.CORSOrigins[i] != want[i] {
			t.Errorf("CORSOrigins[%d] = %q, want %q", i, cfg.API.CORSOrigins[i], want[i])
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(*Config) {}, false},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, true},
		{"port too high", func(c *Config) { c.Server.Port = 70000 }, true},
		{"negative scorer timeout", func(c *Config) { c.Scorer.Timeout = -time.Second }, true},
		{"zero top_n", func(c *Config) { c.Scorer.TopN = 0 }, true},
		{"cache enabled without ttl", func(c *Config) { c.Cache.TTL = 0 }, true},
		{"cache disabled without ttl", func(c *Config) { c.Cache.Enabled = false; c.Cache.TTL = 0 }, false},
		{"bad logging format", func(c *Config) { c.Logging.Format = "xml" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"SERVER_PORT", "server.port"},
		{"SCORER_DIAL_TIMEOUT", "scorer.dial_timeout"},
		{"CONTENTSTACK_SUBSCRIBERS_ENTRY_UID", "contentstack.subscribers_entry_uid"},
		{"HOME", ""},
		{"PATH", ""},
		{"UNKNOWN_SECTION_KEY", ""},
	}
	for _, tt := range tests {
		if got := envTransformFunc(tt.in); got != tt.want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
