// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 StreamPick Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/streampick/streampick

// Package api implements the HTTP surface: routing, middleware, and handlers
// for recommendations, catalog reads, and subscriber operations. Every
// endpoint responds with the models.APIResponse envelope.
package api

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/streampick/streampick/internal/logging"
	"github.com/streampick/streampick/internal/models"
	"github.com/streampick/streampick/internal/validation"
)

// Error codes returned in the APIError envelope.
const (
	codeValidation       = "VALIDATION_ERROR"
	codeNoCandidates     = "NO_CANDIDATES"
	codeDuplicate        = "DUPLICATE_SUBSCRIBER"
	codeStoreUnavailable = "STORE_UNAVAILABLE"
	codeInternal         = "INTERNAL_ERROR"
)

// respondSuccess writes a success envelope with the given payload.
func respondSuccess(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	writeJSON(w, r, status, models.APIResponse{
		Status:   "success",
		Data:     data,
		Metadata: models.Metadata{Timestamp: time.Now().UTC()},
	})
}

// respondError writes an error envelope with the given code and message.
func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string, details map[string]interface{}) {
	writeJSON(w, r, status, models.APIResponse{
		Status:   "error",
		Metadata: models.Metadata{Timestamp: time.Now().UTC()},
		Error: &models.APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// respondValidationError maps struct validation failures onto the envelope.
func respondValidationError(w http.ResponseWriter, r *http.Request, verr *validation.RequestValidationError) {
	apiErr := verr.ToAPIError()
	respondError(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("failed to encode response")
	}
}

// decodeJSON parses the request body into dst and reports a client-friendly
// validation error on malformed input.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(dst); err != nil {
		respondError(w, r, http.StatusBadRequest, codeValidation, "Request body must be valid JSON", nil)
		return false
	}
	return true
}
