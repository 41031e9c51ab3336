// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 StreamPick Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/streampick/streampick

// Package mlscorer implements the HTTP client for the external scoring model.
//
// The model is best-effort: callers treat every failure here (network error,
// timeout, non-2xx, unusable body) as a signal to fall back to local scoring.
// All failures wrap ErrUnavailable so callers can branch with errors.Is.
package mlscorer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/streampick/streampick/internal/metrics"
)

// ErrUnavailable indicates the scoring model could not produce a usable
// ranking. Always recovered via local fallback, never surfaced to users.
var ErrUnavailable = errors.New("scoring model unavailable")

// Client calls the external scoring model over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a scorer client with bounded timeouts. The overall
// timeout caps how long a recommendation request waits before fallback.
func NewClient(baseURL string, dialTimeout, timeout time.Duration) *Client {
	if dialTimeout <= 0 {
		dialTimeout = 5 * time.Second
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{Timeout: dialTimeout}).DialContext,
			},
		},
	}
}

// Rank sends the full candidate set to the model and returns its ranking.
// A nil recommendations list in an otherwise valid reply is treated as a
// failure; the caller needs a usable ranking, not a technically-200 body.
func (c *Client) Rank(ctx context.Context, req *RankRequest) (*RankResponse, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("%w: no scorer URL configured", ErrUnavailable)
	}

	start := time.Now()
	defer func() {
		metrics.ScorerRequestDuration.Observe(time.Since(start).Seconds())
	}()

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: marshal request: %v", ErrUnavailable, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/recommend", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrUnavailable, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		respBody, readErr := io.ReadAll(io.LimitReader(resp.Body, 1024))
		if readErr != nil {
			return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
		}
		return nil, fmt.Errorf("%w: status %d: %s", ErrUnavailable, resp.StatusCode, string(respBody))
	}

	var rankResp RankResponse
	if err := json.NewDecoder(resp.Body).Decode(&rankResp); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrUnavailable, err)
	}

	if rankResp.Recommendations == nil {
		return nil, fmt.Errorf("%w: response carried no recommendations", ErrUnavailable)
	}

	return &rankResp, nil
}
