// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 StreamPick Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/streampick/streampick

// Package metrics provides Prometheus instrumentation for:
//   - API endpoint latency and throughput
//   - Recommendation outcomes by source (ml vs fallback)
//   - External scorer availability
//   - Catalog cache efficiency
//   - Subscriber store operations and circuit breaker state
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	// Recommendation Metrics
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_total",
			Help: "Total recommendations served, labeled by producing source",
		},
		[]string{"source"}, // "ml" or "fallback"
	)

	RecommendationFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommendation_failures_total",
			Help: "Total recommendation requests that found no candidates",
		},
	)

	// External Scorer Metrics
	ScorerRequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "scorer_request_duration_seconds",
			Help:    "External scorer request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	ScorerErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "scorer_errors_total",
			Help: "Total external scorer failures that triggered local fallback",
		},
	)

	// Catalog Cache Metrics
	CatalogCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_cache_hits_total",
			Help: "Total catalog cache hits",
		},
	)

	CatalogCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_cache_misses_total",
			Help: "Total catalog cache misses",
		},
	)

	CatalogFetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "catalog_fetch_duration_seconds",
			Help:    "Content store catalog fetch duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Subscriber Store Metrics
	SubscriberAddsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "subscriber_adds_total",
			Help: "Total subscriber add attempts by result",
		},
		[]string{"result"}, // "success", "duplicate", "store_error"
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Consecutive failures tracked by the circuit breaker",
		},
		[]string{"name"},
	)
)
