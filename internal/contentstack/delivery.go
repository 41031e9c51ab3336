// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 StreamPick Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/streampick/streampick

// Package contentstack implements clients for the content store.
//
// Two APIs are involved: the delivery API serves published movie entries
// (read-only, best-effort), and the management API holds the single
// subscriber aggregate entry (fetch and full-replace only).
package contentstack

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/streampick/streampick/internal/metrics"
	"github.com/streampick/streampick/internal/models"
)

// DeliveryClient fetches published movie entries from the delivery API.
//
// AllMovies never returns an error: the recommendation paths treat a broken
// catalog as an empty one and fail on candidate count instead.
type DeliveryClient struct {
	baseURL       string
	apiKey        string
	deliveryToken string
	environment   string
	httpClient    *http.Client
	cache         *CatalogCache
	logger        zerolog.Logger
}

// entriesResponse is the delivery API envelope for entry queries.
type entriesResponse struct {
	Entries []models.Movie `json:"entries"`
}

// NewDeliveryClient creates a delivery API client. cache may be nil to
// disable catalog caching.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewDeliveryClient(baseURL, apiKey, deliveryToken, environment string, timeout time.Duration, cache *CatalogCache, logger zerolog.Logger) *DeliveryClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &DeliveryClient{
		baseURL:       strings.TrimSuffix(baseURL, "/"),
		apiKey:        apiKey,
		deliveryToken: deliveryToken,
		environment:   environment,
		httpClient:    &http.Client{Timeout: timeout},
		cache:         cache,
		logger:        logger.With().Str("component", "contentstack-delivery").Logger(),
	}
}

// AllMovies returns the full published movie catalog. Any internal error
// yields an empty slice, never an error.
func (c *DeliveryClient) AllMovies(ctx context.Context) []models.Movie {
	if c.cache != nil {
		if movies, ok := c.cache.Get(); ok {
			metrics.CatalogCacheHits.Inc()
			return movies
		}
		metrics.CatalogCacheMisses.Inc()
	}

	start := time.Now()
	movies, err := c.fetchAll(ctx)
	metrics.CatalogFetchDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		c.logger.Error().Err(err).Msg("catalog fetch failed, returning empty catalog")
		return []models.Movie{}
	}

	c.logger.Debug().Int("count", len(movies)).Msg("fetched movie catalog")

	if c.cache != nil {
		if err := c.cache.Set(movies); err != nil {
			c.logger.Warn().Err(err).Msg("failed to cache catalog")
		}
	}

	return movies
}

// MoviesByMood returns movies whose mood tags contain the given mood under
// case-insensitive exact comparison. This filter deliberately matches raw
// canonical tag strings and does not consult the alias table; callers
// normalize the mood first when alias resolution is wanted.
func (c *DeliveryClient) MoviesByMood(ctx context.Context, mood string) []models.Movie {
	want := strings.ToLower(strings.TrimSpace(mood))
	if want == "" {
		return []models.Movie{}
	}

	all := c.AllMovies(ctx)
	filtered := make([]models.Movie, 0, len(all))
	for _, m := range all {
		for _, tag := range m.MoodTags {
			if strings.ToLower(tag) == want {
				filtered = append(filtered, m)
				break
			}
		}
	}

	c.logger.Debug().Str("mood", want).Int("count", len(filtered)).Msg("filtered movies by mood")
	return filtered
}

// fetchAll queries the delivery API for every movie entry.
func (c *DeliveryClient) fetchAll(ctx context.Context) ([]models.Movie, error) {
	url := fmt.Sprintf("%s/v3/content_types/movie/entries?environment=%s", c.baseURL, c.environment)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}
	req.Header.Set("api_key", c.apiKey)
	req.Header.Set("access_token", c.deliveryToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, readErr := io.ReadAll(io.LimitReader(resp.Body, 1024))
		if readErr != nil {
			return nil, fmt.Errorf("catalog request returned status %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("catalog request returned status %d: %s", resp.StatusCode, string(body))
	}

	var parsed entriesResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode catalog response: %w", err)
	}

	if parsed.Entries == nil {
		return []models.Movie{}, nil
	}
	return parsed.Entries, nil
}
