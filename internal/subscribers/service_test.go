// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 StreamPick Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/streampick/streampick

package subscribers

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/streampick/streampick/internal/logging"
	"github.com/streampick/streampick/internal/models"
)

type fakeStore struct {
	entry      *models.SubscriberEntry
	fetchErr   error
	replaceErr error
	replaced   *models.SubscriberEntry
}

func (f *fakeStore) FetchSubscribers(context.Context) (*models.SubscriberEntry, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	// Copy so the service mutates its own view, like a real fetch would.
	entry := *f.entry
	entry.UserDetails = append([]models.SubscriberBlock(nil), f.entry.UserDetails...)
	return &entry, nil
}

func (f *fakeStore) ReplaceSubscribers(_ context.Context, entry *models.SubscriberEntry) error {
	if f.replaceErr != nil {
		return f.replaceErr
	}
	f.replaced = entry
	f.entry = entry
	return nil
}

func newTestService(store Store) *Service {
	svc := NewService(store, logging.NewTestLogger(io.Discard))
	svc.now = func() time.Time {
		return time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)
	}
	return svc
}

func existingEntry() *models.SubscriberEntry {
	return &models.SubscriberEntry{
		Title: "StreamPick Subscribers",
		UserDetails: []models.SubscriberBlock{
			{User: models.Subscriber{
				Name:           "Ada",
				Email:          "ada@example.com",
				PreferredMoods: "cozy, deep",
				SubscribedDate: "2026-01-10",
			}},
		},
		AllUsers: "ada@example.com",
	}
}

func TestAddAppendsAndRebuildsSummary(t *testing.T) {
	store := &fakeStore{entry: existingEntry()}
	svc := newTestService(store)

	err := svc.Add(context.Background(), &AddRequest{
		Name:           "  Grace ",
		Email:          " grace@example.com ",
		PreferredMoods: []string{"Edge of Seat", "chill"},
	})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	if store.replaced == nil {
		t.Fatal("store was never written")
	}
	if got := len(store.replaced.UserDetails); got != 2 {
		t.Fatalf("aggregate has %d subscribers, want 2", got)
	}

	added := store.replaced.UserDetails[1].User
	if added.Name != "Grace" || added.Email != "grace@example.com" {
		t.Errorf("unexpected subscriber: %+v", added)
	}
	if added.PreferredMoods != "Edge of Seat, chill" {
		t.Errorf("PreferredMoods = %q, want moods joined as entered", added.PreferredMoods)
	}
	if added.SubscribedDate != "2026-03-14" {
		t.Errorf("SubscribedDate = %q, want 2026-03-14", added.SubscribedDate)
	}
	if store.replaced.AllUsers != "ada@example.com, grace@example.com" {
		t.Errorf("AllUsers = %q", store.replaced.AllUsers)
	}
}

func TestAddDuplicateEmailFails(t *testing.T) {
	store := &fakeStore{entry: existingEntry()}
	svc := newTestService(store)

	err := svc.Add(context.Background(), &AddRequest{
		Name:  "Ada Again",
		Email: "ADA@Example.COM",
	})
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("Add() error = %v, want ErrDuplicate", err)
	}
	if store.replaced != nil {
		t.Error("duplicate add must not write the aggregate")
	}

	count, err := svc.Count(context.Background())
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 1 {
		t.Errorf("Count() = %d, want 1 (aggregate unchanged)", count)
	}
}

func TestAddStoreFetchFailure(t *testing.T) {
	store := &fakeStore{fetchErr: errors.New("connection refused")}
	svc := newTestService(store)

	err := svc.Add(context.Background(), &AddRequest{Name: "Ada", Email: "ada@example.com"})
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Errorf("Add() error = %v, want ErrStoreUnavailable", err)
	}
}

func TestAddStoreReplaceFailure(t *testing.T) {
	store := &fakeStore{entry: existingEntry(), replaceErr: errors.New("write timeout")}
	svc := newTestService(store)

	err := svc.Add(context.Background(), &AddRequest{Name: "Grace", Email: "grace@example.com"})
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Errorf("Add() error = %v, want ErrStoreUnavailable", err)
	}
}

func TestCountStoreFailure(t *testing.T) {
	store := &fakeStore{fetchErr: errors.New("connection refused")}
	svc := newTestService(store)

	if _, err := svc.Count(context.Background()); !errors.Is(err, ErrStoreUnavailable) {
		t.Errorf("Count() error = %v, want ErrStoreUnavailable", err)
	}
}

func TestMatchingMoods(t *testing.T) {
	store := &fakeStore{entry: &models.SubscriberEntry{
		UserDetails: []models.SubscriberBlock{
			{User: models.Subscriber{Name: "Ada", Email: "ada@example.com", PreferredMoods: "Cozy & Warm, deep"}},
			{User: models.Subscriber{Name: "Grace", Email: "grace@example.com", PreferredMoods: "funny"}},
			{User: models.Subscriber{Name: "Mary", Email: "mary@example.com", PreferredMoods: ""}},
		},
	}}
	svc := newTestService(store)

	matched := svc.MatchingMoods(context.Background(), []string{"cozy", "thrilling"})
	if len(matched) != 1 {
		t.Fatalf("got %d matches, want 1", len(matched))
	}
	if matched[0].Email != "ada@example.com" {
		t.Errorf("matched %q, want ada@example.com", matched[0].Email)
	}
	// Preferred moods come back normalized.
	if len(matched[0].PreferredMoods) != 2 || matched[0].PreferredMoods[0] != "cozy" || matched[0].PreferredMoods[1] != "deep" {
		t.Errorf("PreferredMoods = %v, want [cozy deep]", matched[0].PreferredMoods)
	}
}

func TestMatchingMoodsStoreFailureYieldsEmpty(t *testing.T) {
	store := &fakeStore{fetchErr: errors.New("connection refused")}
	svc := newTestService(store)

	matched := svc.MatchingMoods(context.Background(), []string{"cozy"})
	if len(matched) != 0 {
		t.Errorf("got %d matches, want 0", len(matched))
	}
}
