// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 StreamPick Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/streampick/streampick

package contentstack

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker/v2"

	"github.com/streampick/streampick/internal/metrics"
	"github.com/streampick/streampick/internal/models"
)

// BreakerClient wraps a ManagementClient with a circuit breaker so a dead
// management API stops eating the full request timeout on every subscriber
// operation. When the breaker is open, calls fail fast with the breaker's
// error, which surfaces to users as a store-unavailable condition.
type BreakerClient struct {
	inner   *ManagementClient
	breaker *gobreaker.CircuitBreaker[*models.SubscriberEntry]
	logger  zerolog.Logger
}

// NewBreakerClient wraps the management client in a circuit breaker.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewBreakerClient(inner *ManagementClient, logger zerolog.Logger) *BreakerClient {
	log := logger.With().Str("component", "subscriber-store-breaker").Logger()

	settings := gobreaker.Settings{
		Name:        "subscriber-store",
		MaxRequests: 1,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			metrics.CircuitBreakerConsecutiveFailures.WithLabelValues("subscriber-store").
				Set(float64(counts.ConsecutiveFailures))
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateValue(to))
			log.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker state changed")
		},
	}

	metrics.CircuitBreakerState.WithLabelValues("subscriber-store").Set(stateValue(gobreaker.StateClosed))

	return &BreakerClient{
		inner:   inner,
		breaker: gobreaker.NewCircuitBreaker[*models.SubscriberEntry](settings),
		logger:  log,
	}
}

// FetchSubscribers reads the subscriber aggregate through the breaker.
func (c *BreakerClient) FetchSubscribers(ctx context.Context) (*models.SubscriberEntry, error) {
	return c.breaker.Execute(func() (*models.SubscriberEntry, error) {
		return c.inner.FetchSubscribers(ctx)
	})
}

// ReplaceSubscribers writes the subscriber aggregate through the breaker.
func (c *BreakerClient) ReplaceSubscribers(ctx context.Context, entry *models.SubscriberEntry) error {
	_, err := c.breaker.Execute(func() (*models.SubscriberEntry, error) {
		return nil, c.inner.ReplaceSubscribers(ctx, entry)
	})
	return err
}

func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
