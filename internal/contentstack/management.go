// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 StreamPick Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/streampick/streampick

package contentstack

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/streampick/streampick/internal/models"
)

// ManagementClient talks to the management API for the subscriber aggregate.
// The whole subscriber list lives in one entry of the users content type,
// addressed by a fixed entry UID; writes replace the entire entry.
type ManagementClient struct {
	baseURL         string
	apiKey          string
	managementToken string
	entryUID        string
	httpClient      *http.Client
	logger          zerolog.Logger
}

// entryEnvelope wraps single-entry reads and writes on the management API.
type entryEnvelope struct {
	Entry models.SubscriberEntry `json:"entry"`
}

// NewManagementClient creates a management API client bound to the single
// subscriber aggregate entry.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewManagementClient(baseURL, apiKey, managementToken, entryUID string, timeout time.Duration, logger zerolog.Logger) *ManagementClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &ManagementClient{
		baseURL:         strings.TrimSuffix(baseURL, "/"),
		apiKey:          apiKey,
		managementToken: managementToken,
		entryUID:        entryUID,
		httpClient:      &http.Client{Timeout: timeout},
		logger:          logger.With().Str("component", "contentstack-management").Logger(),
	}
}

func (c *ManagementClient) entryURL() string {
	return fmt.Sprintf("%s/v3/content_types/users/entries/%s", c.baseURL, c.entryUID)
}

// FetchSubscribers reads the current subscriber aggregate entry.
func (c *ManagementClient) FetchSubscribers(ctx context.Context) (*models.SubscriberEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.entryURL(), nil)
	if err != nil {
		return nil, fmt.Errorf("build subscriber fetch request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("subscriber fetch failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError("subscriber fetch", resp)
	}

	var envelope entryEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode subscriber entry: %w", err)
	}

	return &envelope.Entry, nil
}

// ReplaceSubscribers overwrites the subscriber aggregate entry with the
// given state. There is no partial update; callers send the full entry.
func (c *ManagementClient) ReplaceSubscribers(ctx context.Context, entry *models.SubscriberEntry) error {
	body, err := json.Marshal(entryEnvelope{Entry: *entry})
	if err != nil {
		return fmt.Errorf("marshal subscriber entry: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.entryURL(), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build subscriber replace request: %w", err)
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("subscriber replace failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return statusError("subscriber replace", resp)
	}

	c.logger.Debug().Int("count", len(entry.UserDetails)).Msg("replaced subscriber entry")
	return nil
}

func (c *ManagementClient) setHeaders(req *http.Request) {
	req.Header.Set("api_key", c.apiKey)
	req.Header.Set("authorization", c.managementToken)
}

func statusError(op string, resp *http.Response) error {
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1024))
	if err != nil || len(body) == 0 {
		return fmt.Errorf("%s returned status %d", op, resp.StatusCode)
	}
	return fmt.Errorf("%s returned status %d: %s", op, resp.StatusCode, string(body))
}
