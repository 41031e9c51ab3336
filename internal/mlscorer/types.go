// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 StreamPick Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/streampick/streampick

package mlscorer

import "github.com/streampick/streampick/internal/models"

// RankRequest is the payload sent to the scoring model.
type RankRequest struct {
	Mood          string          `json:"mood"`
	TimeAvailable int             `json:"time_available"`
	Movies        []MovieSnapshot `json:"movies"`
	TopN          int             `json:"top_n"`
	UserID        string          `json:"user_id,omitempty"`
}

// MovieSnapshot is the flat movie shape used on the scorer wire. The
// structured poster file object is flattened to image_url on the way out and
// rebuilt on the way back; similarity_score only appears in responses.
type MovieSnapshot struct {
	Title           string   `json:"title"`
	Year            *int     `json:"year,omitempty"`
	Runtime         *int     `json:"runtime,omitempty"`
	Rating          *float64 `json:"rating,omitempty"`
	Genre           []string `json:"genre,omitempty"`
	MoodTags        []string `json:"mood_tags,omitempty"`
	Platforms       []string `json:"platforms,omitempty"`
	Description     string   `json:"description,omitempty"`
	AIDescription   string   `json:"ai_description,omitempty"`
	ImageURL        string   `json:"image_url,omitempty"`
	SimilarityScore *float64 `json:"similarity_score,omitempty"`
}

// RankedMovie is a single scored result from the model.
type RankedMovie struct {
	Movie      MovieSnapshot `json:"movie"`
	Reason     string        `json:"reason"`
	MatchScore float64       `json:"match_score"`
}

// RankResponse is the scoring model's reply.
type RankResponse struct {
	Recommendations []RankedMovie          `json:"recommendations"`
	TotalCandidates int                    `json:"total_candidates"`
	FiltersApplied  map[string]interface{} `json:"filters_applied,omitempty"`
}

// SnapshotFromMovie flattens a movie into the scorer's wire shape,
// carrying every field including the resolved poster URL.
func SnapshotFromMovie(m *models.Movie) MovieSnapshot {
	return MovieSnapshot{
		Title:         m.Title,
		Year:          m.Year,
		Runtime:       m.Runtime,
		Rating:        m.Rating,
		Genre:         m.Genre,
		MoodTags:      m.MoodTags,
		Platforms:     m.Platforms,
		Description:   m.Description,
		AIDescription: m.AIDescription,
		ImageURL:      m.ImageURL(),
	}
}

// MovieFromSnapshot is the inverse mapping: it rebuilds the structured
// poster object from the flat image_url field.
func MovieFromSnapshot(s *MovieSnapshot) models.Movie {
	m := models.Movie{
		Title:         s.Title,
		Year:          s.Year,
		Runtime:       s.Runtime,
		Rating:        s.Rating,
		Genre:         s.Genre,
		MoodTags:      s.MoodTags,
		Platforms:     s.Platforms,
		Description:   s.Description,
		AIDescription: s.AIDescription,
	}
	m.SetImageURL(s.ImageURL)
	return m
}
