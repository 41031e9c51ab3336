// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 StreamPick Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/streampick/streampick

// Package recommend orchestrates recommendation requests: the external
// scoring model ranks first, and any failure there falls back to the local
// deterministic scorer. Users always get a ranking when candidates exist.
package recommend

import (
	"context"
	"errors"
	"sort"

	"github.com/rs/zerolog"

	"github.com/streampick/streampick/internal/metrics"
	"github.com/streampick/streampick/internal/mlscorer"
	"github.com/streampick/streampick/internal/models"
	"github.com/streampick/streampick/internal/mood"
)

// ErrNoCandidates indicates no movie matched the requested mood, so no
// ranking can be produced by either path.
var ErrNoCandidates = errors.New("no movies match the requested mood")

// Content provides the movie catalog. Both methods are best-effort and
// return empty slices on store trouble.
type Content interface {
	AllMovies(ctx context.Context) []models.Movie
	MoviesByMood(ctx context.Context, mood string) []models.Movie
}

// Scorer ranks candidates externally. Failures wrap mlscorer.ErrUnavailable.
type Scorer interface {
	Rank(ctx context.Context, req *mlscorer.RankRequest) (*mlscorer.RankResponse, error)
}

// Engine produces ranked recommendations for a mood and time budget.
type Engine struct {
	content Content
	scorer  Scorer
	topN    int
	logger  zerolog.Logger
}

// NewEngine creates a recommendation engine. topN caps the result set;
// values below 1 fall back to 5.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewEngine(content Content, scorer Scorer, topN int, logger zerolog.Logger) *Engine {
	if topN < 1 {
		topN = 5
	}
	return &Engine{
		content: content,
		scorer:  scorer,
		topN:    topN,
		logger:  logger.With().Str("component", "recommend-engine").Logger(),
	}
}

// Recommend runs the model-first flow. The external model sees the full
// catalog and the normalized mood; on any model failure the local path
// filters by mood and scores deterministically. Only an empty candidate
// set is an error.
func (e *Engine) Recommend(ctx context.Context, req *models.RecommendationRequest) (*models.RecommendationResponse, error) {
	normalized, ok := mood.Normalize(req.Mood)
	if !ok {
		metrics.RecommendationFailures.Inc()
		return nil, ErrNoCandidates
	}

	catalog := e.content.AllMovies(ctx)
	if len(catalog) > 0 {
		resp, err := e.rankExternal(ctx, req, normalized, catalog)
		if err == nil {
			metrics.RecommendationsTotal.WithLabelValues(models.SourceML).Inc()
			return resp, nil
		}
		metrics.ScorerErrors.Inc()
		e.logger.Warn().Err(err).Str("mood", normalized).Msg("scoring model failed, using local fallback")
	}

	resp, err := e.rankLocal(ctx, normalized, req.TimeAvailable)
	if err != nil {
		metrics.RecommendationFailures.Inc()
		return nil, err
	}
	metrics.RecommendationsTotal.WithLabelValues(models.SourceFallback).Inc()
	return resp, nil
}

// rankExternal maps the catalog onto the scorer wire, calls the model, and
// maps its ranking back into the API shape.
func (e *Engine) rankExternal(ctx context.Context, req *models.RecommendationRequest, normalized string, catalog []models.Movie) (*models.RecommendationResponse, error) {
	snapshots := make([]mlscorer.MovieSnapshot, 0, len(catalog))
	for i := range catalog {
		snapshots = append(snapshots, mlscorer.SnapshotFromMovie(&catalog[i]))
	}

	rankReq := &mlscorer.RankRequest{
		Mood:          normalized,
		TimeAvailable: req.TimeAvailable,
		Movies:        snapshots,
		TopN:          e.topN,
		UserID:        req.UserID,
	}

	rankResp, err := e.scorer.Rank(ctx, rankReq)
	if err != nil {
		return nil, err
	}

	ranked := rankResp.Recommendations
	if len(ranked) > e.topN {
		ranked = ranked[:e.topN]
	}

	recs := make([]models.MovieRecommendation, 0, len(ranked))
	for i := range ranked {
		recs = append(recs, models.MovieRecommendation{
			Movie:      mlscorer.MovieFromSnapshot(&ranked[i].Movie),
			AIReason:   ranked[i].Reason,
			MatchScore: ranked[i].MatchScore,
		})
	}

	return &models.RecommendationResponse{
		Recommendations: recs,
		TotalCandidates: rankResp.TotalCandidates,
		Source:          models.SourceML,
	}, nil
}

// rankLocal filters by mood tag and scores with the deterministic formula.
// Sorting is stable so equal scores keep catalog order.
func (e *Engine) rankLocal(ctx context.Context, normalized string, timeAvailable int) (*models.RecommendationResponse, error) {
	candidates := e.content.MoviesByMood(ctx, normalized)
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}

	recs := make([]models.MovieRecommendation, 0, len(candidates))
	for i := range candidates {
		m := candidates[i]
		recs = append(recs, models.MovieRecommendation{
			Movie:      m,
			AIReason:   m.AIDescription,
			MatchScore: Score(&m, normalized, timeAvailable),
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].MatchScore > recs[j].MatchScore
	})

	total := len(recs)
	if len(recs) > e.topN {
		recs = recs[:e.topN]
	}

	return &models.RecommendationResponse{
		Recommendations: recs,
		TotalCandidates: total,
		Source:          models.SourceFallback,
	}, nil
}
