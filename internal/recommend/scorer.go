// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 StreamPick Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/streampick/streampick

package recommend

import (
	"strings"

	"github.com/streampick/streampick/internal/models"
)

// Scoring weights. Mood match dominates, rating contributes proportionally,
// runtime fit tops up. The sum is clamped to 100.
const (
	moodMatchPoints  = 50.0
	ratingMaxPoints  = 30.0
	runtimeFitClose  = 20.0
	runtimeFitNear   = 10.0
	runtimeCloseMins = 20
	runtimeNearMins  = 40
	maxScore         = 100.0
)

// Score computes the local deterministic match score for a movie in [0,100].
//
// The mood term compares the request mood against raw tags case-insensitively
// without alias resolution; callers pass the normalized mood to line up with
// how candidates were filtered.
func Score(m *models.Movie, mood string, timeAvailable int) float64 {
	score := 0.0

	for _, tag := range m.MoodTags {
		if strings.EqualFold(tag, mood) {
			score += moodMatchPoints
			break
		}
	}

	if m.Rating != nil {
		score += ratingMaxPoints * (*m.Rating / 10.0)
	}

	if m.Runtime != nil {
		diff := *m.Runtime - timeAvailable
		if diff < 0 {
			diff = -diff
		}
		switch {
		case diff <= runtimeCloseMins:
			score += runtimeFitClose
		case diff <= runtimeNearMins:
			score += runtimeFitNear
		}
	}

	if score > maxScore {
		score = maxScore
	}
	return score
}
