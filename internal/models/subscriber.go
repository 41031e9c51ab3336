// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 StreamPick Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/streampick/streampick

package models

import "strings"

// Subscriber is a single subscriber record inside the aggregate entry.
// PreferredMoods is stored as a comma-joined string of the labels the user
// entered, not pre-normalized; normalization happens at match time.
type Subscriber struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	PreferredMoods string `json:"preferred_moods"`
	SubscribedDate string `json:"subscribed_date"`
}

// PreferredMoodList splits the stored comma-joined moods back into a list.
func (s *Subscriber) PreferredMoodList() []string {
	if s.PreferredMoods == "" {
		return nil
	}
	parts := strings.Split(s.PreferredMoods, ",")
	moods := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			moods = append(moods, trimmed)
		}
	}
	return moods
}

// SubscriberBlock wraps a subscriber in the store's modular block shape.
type SubscriberBlock struct {
	User Subscriber `json:"user"`
}

// SubscriberEntry is the single aggregate record holding every subscriber.
// The store has no row-level primitives for this entry: every add reads the
// whole aggregate, mutates it in memory, and writes the whole aggregate back.
// AllUsers is a derived comma-joined email summary rebuilt on every write.
type SubscriberEntry struct {
	Title       string            `json:"title"`
	UserDetails []SubscriberBlock `json:"user_details"`
	AllUsers    string            `json:"all_users"`
}

// SubscriberInfo is the API-facing projection of a matched subscriber.
type SubscriberInfo struct {
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	PreferredMoods []string `json:"preferredMoods"`
}
