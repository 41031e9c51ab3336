// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 StreamPick Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/streampick/streampick

// Package mood maps user-facing mood phrases onto the fixed canonical mood
// vocabulary used for storage and matching.
//
// The canonical vocabulary is exactly: cozy, thrilling, laugh, deep, escape,
// chill. A fixed alias table maps human-friendly synonyms ("edge of seat",
// "funny", "relaxing", ...) onto canonical moods. Unknown non-blank input is
// deliberately passed through lowered and trimmed rather than rejected, so a
// new tag added to the content store keeps matching without a code change.
package mood

import "strings"

// aliases maps lowercased, trimmed input onto canonical moods. Every
// canonical mood maps to itself.
var aliases = map[string]string{
	"cozy":      "cozy",
	"thrilling": "thrilling",
	"laugh":     "laugh",
	"deep":      "deep",
	"escape":    "escape",
	"chill":     "chill",

	"cozy & warm":   "cozy",
	"cozy and warm": "cozy",
	"warm":          "cozy",

	"edge of seat": "thrilling",
	"edge-of-seat": "thrilling",
	"thriller":     "thrilling",
	"suspense":     "thrilling",
	"intense":      "thrilling",

	"need laughs": "laugh",
	"need-laughs": "laugh",
	"funny":       "laugh",
	"comedy":      "laugh",
	"humor":       "laugh",

	"make me think": "deep",
	"make-me-think": "deep",
	"thoughtful":    "deep",
	"intellectual":  "deep",
	"profound":      "deep",

	"pure escapism": "escape",
	"pure-escapism": "escape",
	"escapism":      "escape",
	"adventure":     "escape",

	"background vibe": "chill",
	"background-vibe": "chill",
	"background":      "chill",
	"relaxing":        "chill",
	"mellow":          "chill",
}

// canonical lists the backend mood vocabulary in display order.
var canonical = []string{"cozy", "thrilling", "laugh", "deep", "escape", "chill"}

// uiLabels lists the user-facing labels shown by the frontend mood selector,
// in the same order as canonical.
var uiLabels = []string{
	"Cozy & Warm",
	"Edge of Seat",
	"Need Laughs",
	"Make Me Think",
	"Pure Escapism",
	"Background Vibe",
}

// Normalize maps a mood phrase onto the canonical vocabulary.
//
// Input is lowercased and trimmed before lookup. Unknown non-blank input
// passes through lowered and trimmed with ok=true. Blank or whitespace-only
// input returns ok=false. Normalizing an already-canonical mood returns it
// unchanged.
func Normalize(input string) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		return "", false
	}
	if mapped, ok := aliases[normalized]; ok {
		return mapped, true
	}
	return normalized, true
}

// NormalizeAll normalizes each entry, dropping blanks. Order is preserved and
// duplicates are not removed.
func NormalizeAll(inputs []string) []string {
	if len(inputs) == 0 {
		return nil
	}
	normalized := make([]string, 0, len(inputs))
	for _, input := range inputs {
		if m, ok := Normalize(input); ok {
			normalized = append(normalized, m)
		}
	}
	return normalized
}

// HasMatch reports whether the two mood lists share any mood after
// normalization. Either side empty means no match.
func HasMatch(userMoods, otherMoods []string) bool {
	if len(userMoods) == 0 || len(otherMoods) == 0 {
		return false
	}
	other := toSet(NormalizeAll(otherMoods))
	for _, m := range NormalizeAll(userMoods) {
		if _, ok := other[m]; ok {
			return true
		}
	}
	return false
}

// Matching returns the user-side moods (normalized) present in the other
// side's normalized set, in user-list order. Duplicates in the user list
// produce duplicates in the result.
func Matching(userMoods, otherMoods []string) []string {
	if len(userMoods) == 0 || len(otherMoods) == 0 {
		return nil
	}
	other := toSet(NormalizeAll(otherMoods))
	var matches []string
	for _, m := range NormalizeAll(userMoods) {
		if _, ok := other[m]; ok {
			matches = append(matches, m)
		}
	}
	return matches
}

// Canonical returns the backend mood vocabulary.
func Canonical() []string {
	out := make([]string, len(canonical))
	copy(out, canonical)
	return out
}

// UILabels returns the user-facing mood labels for selector UIs.
func UILabels() []string {
	out := make([]string, len(uiLabels))
	copy(out, uiLabels)
	return out
}

func toSet(moods []string) map[string]struct{} {
	set := make(map[string]struct{}, len(moods))
	for _, m := range moods {
		set[m] = struct{}{}
	}
	return set
}
