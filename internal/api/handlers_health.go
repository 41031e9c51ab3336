// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 StreamPick Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/streampick/streampick

package api

import (
	"net/http"
	"time"
)

// healthPayload reports service status and component availability.
type healthPayload struct {
	Status     string            `json:"status"`
	Uptime     string            `json:"uptime"`
	Components map[string]string `json:"components"`
}

// handleHealth serves GET /api/health with component-level detail.
func (h *Handlers) handleHealth(w http.ResponseWriter, r *http.Request) {
	components := map[string]string{
		"catalog":     "up",
		"subscribers": "up",
	}
	if h.scorerConfigured {
		components["scorer"] = "configured"
	} else {
		components["scorer"] = "not_configured"
	}

	respondSuccess(w, r, http.StatusOK, healthPayload{
		Status:     "healthy",
		Uptime:     time.Since(h.startedAt).Round(time.Second).String(),
		Components: components,
	})
}

// handleLive serves GET /api/health/live: process liveness only.
func (h *Handlers) handleLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, http.StatusOK, map[string]string{"status": "alive"})
}

// handleReady serves GET /api/health/ready. The service is ready as soon as
// its clients are constructed; the catalog and subscriber store degrade
// gracefully, so neither gates readiness.
func (h *Handlers) handleReady(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, http.StatusOK, map[string]string{"status": "ready"})
}
