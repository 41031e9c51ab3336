// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 StreamPick Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/streampick/streampick

package models

// Recommendation source tags. Every response carries exactly one of these
// so clients can tell which path produced it.
const (
	// SourceML indicates the external scoring model produced the ranking.
	SourceML = "ml"

	// SourceFallback indicates the local deterministic scorer produced the ranking.
	SourceFallback = "fallback"
)

// RecommendationRequest carries the user's mood and time budget.
type RecommendationRequest struct {
	Mood          string `json:"mood" validate:"required"`
	TimeAvailable int    `json:"timeAvailable" validate:"required,gt=0"`
	UserID        string `json:"userId,omitempty"`
}

// MovieRecommendation is a single ranked result: the movie, a human-readable
// reason, and a match score in [0,100].
type MovieRecommendation struct {
	Movie      Movie   `json:"movie"`
	AIReason   string  `json:"aiReason,omitempty"`
	MatchScore float64 `json:"matchScore"`
}

// RecommendationResponse is the ordered result set, ranked by descending
// match score. TotalCandidates is the candidate count before truncation
// to the top N.
type RecommendationResponse struct {
	Recommendations []MovieRecommendation `json:"recommendations"`
	TotalCandidates int                   `json:"totalCandidates"`
	Source          string                `json:"source"`
}
