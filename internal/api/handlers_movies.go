// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 StreamPick Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/streampick/streampick

package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/streampick/streampick/internal/models"
	"github.com/streampick/streampick/internal/mood"
)

// Catalog provides read access to the published movie catalog.
type Catalog interface {
	AllMovies(ctx context.Context) []models.Movie
	MoviesByMood(ctx context.Context, mood string) []models.Movie
}

// moviesPayload is the list shape shared by the catalog endpoints.
type moviesPayload struct {
	Movies []models.Movie `json:"movies"`
	Count  int            `json:"count"`
}

// handleMovies serves GET /api/movies: the full published catalog.
func (h *Handlers) handleMovies(w http.ResponseWriter, r *http.Request) {
	movies := h.catalog.AllMovies(r.Context())
	respondSuccess(w, r, http.StatusOK, moviesPayload{Movies: movies, Count: len(movies)})
}

// handleMoviesByMood serves GET /api/movies/mood/{mood}: catalog filtered by
// mood tag. The path value runs through alias normalization first, so
// "edge of seat" and "thrilling" hit the same tag.
func (h *Handlers) handleMoviesByMood(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "mood")
	normalized, ok := mood.Normalize(raw)
	if !ok {
		respondError(w, r, http.StatusBadRequest, codeValidation, "mood must not be blank", nil)
		return
	}

	movies := h.catalog.MoviesByMood(r.Context(), normalized)
	respondSuccess(w, r, http.StatusOK, moviesPayload{Movies: movies, Count: len(movies)})
}

// moodsPayload pairs canonical mood names with their display labels.
type moodsPayload struct {
	Moods  []string `json:"moods"`
	Labels []string `json:"labels"`
}

// handleMoods serves GET /api/moods: the canonical mood vocabulary.
func (h *Handlers) handleMoods(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, http.StatusOK, moodsPayload{
		Moods:  mood.Canonical(),
		Labels: mood.UILabels(),
	})
}
