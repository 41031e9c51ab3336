// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 StreamPick Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/streampick/streampick

package models

// Movie represents a movie entry fetched from the content store.
// Field names mirror the content store's snake_case entry schema.
// A Movie is immutable for the duration of a request; the engine
// never mutates it after fetch.
type Movie struct {
	UID           string                 `json:"uid,omitempty"`
	Title         string                 `json:"title"`
	Year          *int                   `json:"year,omitempty"`
	Runtime       *int                   `json:"runtime,omitempty"`
	Rating        *float64               `json:"rating,omitempty"`
	Genre         []string               `json:"genre,omitempty"`
	MoodTags      []string               `json:"mood_tags,omitempty"`
	Platforms     []string               `json:"platforms,omitempty"`
	Description   string                 `json:"description,omitempty"`
	AIDescription string                 `json:"ai_description,omitempty"`
	Image         map[string]interface{} `json:"image,omitempty"`
}

// ImageURL extracts the poster URL from the content store's file object.
// Returns empty string when no image is attached.
func (m *Movie) ImageURL() string {
	if m.Image == nil {
		return ""
	}
	if url, ok := m.Image["url"].(string); ok {
		return url
	}
	return ""
}

// SetImageURL rebuilds the structured file object from a flat poster URL.
// Used when reconstructing a Movie from an external scorer snapshot.
func (m *Movie) SetImageURL(url string) {
	if url == "" {
		return
	}
	m.Image = map[string]interface{}{"url": url}
}
