// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 StreamPick Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/streampick/streampick

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/streampick/streampick/internal/config"
)

// Handlers bundles the services behind the HTTP surface.
type Handlers struct {
	recommender      Recommender
	catalog          Catalog
	subscribers      SubscriberService
	scorerConfigured bool
	startedAt        time.Time
}

// NewHandlers constructs the handler set. scorerConfigured feeds the health
// endpoint's component report.
func NewHandlers(recommender Recommender, catalog Catalog, subs SubscriberService, scorerConfigured bool) *Handlers {
	return &Handlers{
		recommender:      recommender,
		catalog:          catalog,
		subscribers:      subs,
		scorerConfigured: scorerConfigured,
		startedAt:        time.Now(),
	}
}

// NewRouter assembles the chi router with the full middleware stack and all
// routes. Health and metrics sit outside the rate limiter so probes and
// scrapes never get throttled.
func NewRouter(h *Handlers, apiCfg config.APIConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(requestContext)
	r.Use(corsMiddleware(apiCfg.CORSOrigins))
	r.Use(prometheusMiddleware)

	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.handleHealth)
		r.Get("/health/live", h.handleLive)
		r.Get("/health/ready", h.handleReady)

		r.Group(func(r chi.Router) {
			if !apiCfg.RateLimitDisabled {
				r.Use(rateLimitMiddleware(apiCfg.RateLimitRequests, apiCfg.RateLimitWindow))
			}

			r.Post("/recommendations", h.handleRecommendations)

			r.Get("/movies", h.handleMovies)
			r.Get("/movies/mood/{mood}", h.handleMoviesByMood)
			r.Get("/moods", h.handleMoods)

			r.Route("/subscribers", func(r chi.Router) {
				r.Get("/count", h.handleSubscriberCount)
				r.Post("/filter-by-moods", h.handleSubscriberFilter)

				// The add path writes the aggregate; limit it harder than reads.
				r.Group(func(r chi.Router) {
					if !apiCfg.RateLimitDisabled {
						r.Use(rateLimitMiddleware(writeLimit(apiCfg.RateLimitRequests), apiCfg.RateLimitWindow))
					}
					r.Post("/add", h.handleSubscriberAdd)
				})
			})
		})
	})

	return r
}
