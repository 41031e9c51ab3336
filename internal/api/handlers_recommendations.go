// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 StreamPick Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/streampick/streampick

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/streampick/streampick/internal/logging"
	"github.com/streampick/streampick/internal/models"
	"github.com/streampick/streampick/internal/recommend"
	"github.com/streampick/streampick/internal/validation"
)

// Recommender produces ranked recommendations for a request.
type Recommender interface {
	Recommend(ctx context.Context, req *models.RecommendationRequest) (*models.RecommendationResponse, error)
}

// handleRecommendations serves POST /api/recommendations.
func (h *Handlers) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	var req models.RecommendationRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	resp, err := h.recommender.Recommend(r.Context(), &req)
	if err != nil {
		if errors.Is(err, recommend.ErrNoCandidates) {
			respondError(w, r, http.StatusNotFound, codeNoCandidates,
				"No movies match the requested mood", map[string]interface{}{"mood": req.Mood})
			return
		}
		logging.Ctx(r.Context()).Error().Err(err).Msg("recommendation request failed")
		respondError(w, r, http.StatusInternalServerError, codeInternal, "Failed to produce recommendations", nil)
		return
	}

	logging.Ctx(r.Context()).Info().
		Str("mood", req.Mood).
		Str("source", resp.Source).
		Int("count", len(resp.Recommendations)).
		Msg("recommendations served")

	respondSuccess(w, r, http.StatusOK, resp)
}
