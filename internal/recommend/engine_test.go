// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 StreamPick Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/streampick/streampick

package recommend

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/streampick/streampick/internal/logging"
	"github.com/streampick/streampick/internal/mlscorer"
	"github.com/streampick/streampick/internal/models"
)

type fakeContent struct {
	all    []models.Movie
	byMood map[string][]models.Movie
}

func (f *fakeContent) AllMovies(context.Context) []models.Movie {
	return f.all
}

func (f *fakeContent) MoviesByMood(_ context.Context, mood string) []models.Movie {
	return f.byMood[mood]
}

type fakeScorer struct {
	resp    *mlscorer.RankResponse
	err     error
	lastReq *mlscorer.RankRequest
}

func (f *fakeScorer) Rank(_ context.Context, req *mlscorer.RankRequest) (*mlscorer.RankResponse, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func testMovie(title string, moodTags []string, rating float64, runtime int) models.Movie {
	return models.Movie{
		Title:         title,
		MoodTags:      moodTags,
		Rating:        &rating,
		Runtime:       &runtime,
		AIDescription: "ai pick for " + title,
	}
}

func newTestEngine(content Content, scorer Scorer, topN int) *Engine {
	return NewEngine(content, scorer, topN, logging.NewTestLogger(io.Discard))
}

func TestRecommendUsesModelWhenAvailable(t *testing.T) {
	content := &fakeContent{
		all: []models.Movie{
			testMovie("Alpha", []string{"cozy"}, 8.0, 100),
			testMovie("Beta", []string{"deep"}, 9.0, 120),
		},
	}
	scorer := &fakeScorer{
		resp: &mlscorer.RankResponse{
			Recommendations: []mlscorer.RankedMovie{
				{
					Movie:      mlscorer.MovieSnapshot{Title: "Beta"},
					Reason:     "a close fit",
					MatchScore: 91.5,
				},
			},
			TotalCandidates: 2,
		},
	}

	engine := newTestEngine(content, scorer, 5)
	resp, err := engine.Recommend(context.Background(), &models.RecommendationRequest{
		Mood:          "Cozy & Warm",
		TimeAvailable: 120,
	})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	if resp.Source != models.SourceML {
		t.Errorf("Source = %q, want %q", resp.Source, models.SourceML)
	}
	if resp.TotalCandidates != 2 {
		t.Errorf("TotalCandidates = %d, want 2", resp.TotalCandidates)
	}
	if len(resp.Recommendations) != 1 {
		t.Fatalf("got %d recommendations, want 1", len(resp.Recommendations))
	}
	if got := resp.Recommendations[0]; got.Movie.Title != "Beta" || got.AIReason != "a close fit" || got.MatchScore != 91.5 {
		t.Errorf("unexpected recommendation: %+v", got)
	}

	// The model sees the normalized mood and the full catalog.
	if scorer.lastReq.Mood != "cozy" {
		t.Errorf("model saw mood %q, want %q", scorer.lastReq.Mood, "cozy")
	}
	if len(scorer.lastReq.Movies) != 2 {
		t.Errorf("model saw %d movies, want 2", len(scorer.lastReq.Movies))
	}
	if scorer.lastReq.TopN != 5 {
		t.Errorf("model saw top_n %d, want 5", scorer.lastReq.TopN)
	}
}

func TestRecommendFallsBackWhenModelFails(t *testing.T) {
	cozy := []models.Movie{
		testMovie("Low", []string{"cozy"}, 4.0, 300),
		testMovie("High", []string{"cozy"}, 9.0, 115),
	}
	content := &fakeContent{
		all:    cozy,
		byMood: map[string][]models.Movie{"cozy": cozy},
	}
	scorer := &fakeScorer{err: mlscorer.ErrUnavailable}

	engine := newTestEngine(content, scorer, 5)
	resp, err := engine.Recommend(context.Background(), &models.RecommendationRequest{
		Mood:          "cozy",
		TimeAvailable: 120,
	})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	if resp.Source != models.SourceFallback {
		t.Errorf("Source = %q, want %q", resp.Source, models.SourceFallback)
	}
	if resp.TotalCandidates != 2 {
		t.Errorf("TotalCandidates = %d, want 2", resp.TotalCandidates)
	}
	if len(resp.Recommendations) != 2 {
		t.Fatalf("got %d recommendations, want 2", len(resp.Recommendations))
	}
	// High: 50 + 27 + 20 = 97; Low: 50 + 12 + 0 = 62.
	if resp.Recommendations[0].Movie.Title != "High" {
		t.Errorf("first recommendation = %q, want High", resp.Recommendations[0].Movie.Title)
	}
	if resp.Recommendations[0].AIReason != "ai pick for High" {
		t.Errorf("AIReason = %q, want the catalog ai description", resp.Recommendations[0].AIReason)
	}
}

func TestRecommendFallbackOnAnyScorerError(t *testing.T) {
	cozy := []models.Movie{testMovie("Only", []string{"cozy"}, 8.0, 110)}
	content := &fakeContent{
		all:    cozy,
		byMood: map[string][]models.Movie{"cozy": cozy},
	}
	scorer := &fakeScorer{err: errors.New("boom")}

	engine := newTestEngine(content, scorer, 5)
	resp, err := engine.Recommend(context.Background(), &models.RecommendationRequest{
		Mood:          "cozy",
		TimeAvailable: 120,
	})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if resp.Source != models.SourceFallback {
		t.Errorf("Source = %q, want %q", resp.Source, models.SourceFallback)
	}
}

func TestRecommendNoCandidates(t *testing.T) {
	content := &fakeContent{
		all:    []models.Movie{testMovie("Other", []string{"deep"}, 8.0, 100)},
		byMood: map[string][]models.Movie{},
	}
	scorer := &fakeScorer{err: mlscorer.ErrUnavailable}

	engine := newTestEngine(content, scorer, 5)
	_, err := engine.Recommend(context.Background(), &models.RecommendationRequest{
		Mood:          "cozy",
		TimeAvailable: 120,
	})
	if !errors.Is(err, ErrNoCandidates) {
		t.Errorf("Recommend() error = %v, want ErrNoCandidates", err)
	}
}

func TestRecommendEmptyCatalogSkipsModel(t *testing.T) {
	content := &fakeContent{byMood: map[string][]models.Movie{}}
	scorer := &fakeScorer{resp: &mlscorer.RankResponse{Recommendations: []mlscorer.RankedMovie{}}}

	engine := newTestEngine(content, scorer, 5)
	_, err := engine.Recommend(context.Background(), &models.RecommendationRequest{
		Mood:          "cozy",
		TimeAvailable: 120,
	})
	if !errors.Is(err, ErrNoCandidates) {
		t.Errorf("Recommend() error = %v, want ErrNoCandidates", err)
	}
	if scorer.lastReq != nil {
		t.Error("model was called with an empty catalog")
	}
}

func TestRecommendTruncatesToTopN(t *testing.T) {
	var cozy []models.Movie
	for _, title := range []string{"A", "B", "C", "D", "E", "F", "G"} {
		cozy = append(cozy, testMovie(title, []string{"cozy"}, 8.0, 110))
	}
	content := &fakeContent{
		all:    cozy,
		byMood: map[string][]models.Movie{"cozy": cozy},
	}
	scorer := &fakeScorer{err: mlscorer.ErrUnavailable}

	engine := newTestEngine(content, scorer, 5)
	resp, err := engine.Recommend(context.Background(), &models.RecommendationRequest{
		Mood:          "cozy",
		TimeAvailable: 120,
	})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(resp.Recommendations) != 5 {
		t.Errorf("got %d recommendations, want 5", len(resp.Recommendations))
	}
	if resp.TotalCandidates != 7 {
		t.Errorf("TotalCandidates = %d, want 7", resp.TotalCandidates)
	}
	// Stable sort keeps catalog order for equal scores.
	for i, want := range []string{"A", "B", "C", "D", "E"} {
		if resp.Recommendations[i].Movie.Title != want {
			t.Errorf("recommendation %d = %q, want %q", i, resp.Recommendations[i].Movie.Title, want)
		}
	}
}
