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
	"github.com/streampick/streampick/internal/subscribers"
	"github.com/streampick/streampick/internal/validation"
)

// SubscriberService exposes subscriber aggregate operations.
type SubscriberService interface {
	Add(ctx context.Context, req *subscribers.AddRequest) error
	Count(ctx context.Context) (int, error)
	MatchingMoods(ctx context.Context, moods []string) []models.SubscriberInfo
}

// handleSubscriberAdd serves POST /api/subscribers/add.
func (h *Handlers) handleSubscriberAdd(w http.ResponseWriter, r *http.Request) {
	var req subscribers.AddRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	if err := h.subscribers.Add(r.Context(), &req); err != nil {
		switch {
		case errors.Is(err, subscribers.ErrDuplicate):
			respondError(w, r, http.StatusConflict, codeDuplicate,
				"This email is already subscribed", map[string]interface{}{"email": req.Email})
		case errors.Is(err, subscribers.ErrStoreUnavailable):
			logging.Ctx(r.Context()).Error().Err(err).Msg("subscriber add failed")
			respondError(w, r, http.StatusBadGateway, codeStoreUnavailable,
				"Subscriber store is temporarily unavailable", nil)
		default:
			logging.Ctx(r.Context()).Error().Err(err).Msg("subscriber add failed")
			respondError(w, r, http.StatusInternalServerError, codeInternal, "Failed to add subscriber", nil)
		}
		return
	}

	respondSuccess(w, r, http.StatusCreated, map[string]interface{}{"email": req.Email})
}

// handleSubscriberCount serves GET /api/subscribers/count.
func (h *Handlers) handleSubscriberCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.subscribers.Count(r.Context())
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("subscriber count failed")
		respondError(w, r, http.StatusBadGateway, codeStoreUnavailable,
			"Subscriber store is temporarily unavailable", nil)
		return
	}
	respondSuccess(w, r, http.StatusOK, map[string]interface{}{"count": count})
}

// filterByMoodsRequest carries the moods to match subscribers against.
type filterByMoodsRequest struct {
	Moods []string `json:"moods" validate:"required,min=1"`
}

// handleSubscriberFilter serves POST /api/subscribers/filter-by-moods.
// Store trouble yields an empty match list, not an error.
func (h *Handlers) handleSubscriberFilter(w http.ResponseWriter, r *http.Request) {
	var req filterByMoodsRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	matched := h.subscribers.MatchingMoods(r.Context(), req.Moods)
	respondSuccess(w, r, http.StatusOK, map[string]interface{}{
		"subscribers": matched,
		"count":       len(matched),
	})
}
