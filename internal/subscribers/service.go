// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 StreamPick Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/streampick/streampick

// Package subscribers manages the subscriber aggregate: a single store entry
// holding every subscriber. All writes go through a read-modify-replace cycle
// serialized by a process-local mutex, since the store offers no row-level
// operations or compare-and-swap on the entry.
package subscribers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/streampick/streampick/internal/metrics"
	"github.com/streampick/streampick/internal/models"
	"github.com/streampick/streampick/internal/mood"
)

// subscribedDateLayout is the stored date format for new subscriptions.
const subscribedDateLayout = "2006-01-02"

var (
	// ErrDuplicate indicates the email already exists in the aggregate.
	ErrDuplicate = errors.New("subscriber email already registered")

	// ErrStoreUnavailable indicates the subscriber store could not complete
	// the operation. Wraps the underlying store error.
	ErrStoreUnavailable = errors.New("subscriber store unavailable")
)

// Store is the subscriber aggregate persistence contract. Implemented by the
// management API client, usually behind the circuit breaker.
type Store interface {
	FetchSubscribers(ctx context.Context) (*models.SubscriberEntry, error)
	ReplaceSubscribers(ctx context.Context, entry *models.SubscriberEntry) error
}

// AddRequest carries a new subscription.
type AddRequest struct {
	Name           string   `json:"name" validate:"required"`
	Email          string   `json:"email" validate:"required,email"`
	PreferredMoods []string `json:"preferredMoods"`
}

// Service implements subscriber operations over the aggregate entry.
//
// The mutex serializes read-modify-replace cycles within this process. Writes
// from other processes can still race; the store offers no stronger primitive.
type Service struct {
	store  Store
	mu     sync.Mutex
	now    func() time.Time
	logger zerolog.Logger
}

// NewService creates a subscriber service backed by the given store.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewService(store Store, logger zerolog.Logger) *Service {
	return &Service{
		store:  store,
		now:    time.Now,
		logger: logger.With().Str("component", "subscribers").Logger(),
	}
}

// Add appends a new subscriber to the aggregate. The email must not already
// be present (case-insensitive). Preferred moods are stored as the user
// entered them, comma-joined; they are normalized only at match time.
func (s *Service) Add(ctx context.Context, req *AddRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.store.FetchSubscribers(ctx)
	if err != nil {
		metrics.SubscriberAddsTotal.WithLabelValues("store_error").Inc()
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	email := strings.TrimSpace(req.Email)
	for _, block := range entry.UserDetails {
		if strings.EqualFold(block.User.Email, email) {
			metrics.SubscriberAddsTotal.WithLabelValues("duplicate").Inc()
			return ErrDuplicate
		}
	}

	entry.UserDetails = append(entry.UserDetails, models.SubscriberBlock{
		User: models.Subscriber{
			Name:           strings.TrimSpace(req.Name),
			Email:          email,
			PreferredMoods: strings.Join(req.PreferredMoods, ", "),
			SubscribedDate: s.now().UTC().Format(subscribedDateLayout),
		},
	})
	entry.AllUsers = allUsersSummary(entry.UserDetails)

	if err := s.store.ReplaceSubscribers(ctx, entry); err != nil {
		metrics.SubscriberAddsTotal.WithLabelValues("store_error").Inc()
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	metrics.SubscriberAddsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("email", email).Int("total", len(entry.UserDetails)).Msg("subscriber added")
	return nil
}

// Count returns the number of subscribers in the aggregate.
func (s *Service) Count(ctx context.Context) (int, error) {
	entry, err := s.store.FetchSubscribers(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return len(entry.UserDetails), nil
}

// MatchingMoods returns subscribers whose preferred moods intersect the
// given moods after alias normalization on both sides. Store trouble yields
// an empty result rather than an error; mood matching is a best-effort
// notification feature, not a critical read.
func (s *Service) MatchingMoods(ctx context.Context, moods []string) []models.SubscriberInfo {
	entry, err := s.store.FetchSubscribers(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("subscriber fetch failed, returning no matches")
		return []models.SubscriberInfo{}
	}

	matched := make([]models.SubscriberInfo, 0)
	for _, block := range entry.UserDetails {
		preferred := block.User.PreferredMoodList()
		if mood.HasMatch(preferred, moods) {
			matched = append(matched, models.SubscriberInfo{
				Name:           block.User.Name,
				Email:          block.User.Email,
				PreferredMoods: mood.NormalizeAll(preferred),
			})
		}
	}
	return matched
}

// allUsersSummary rebuilds the derived comma-joined email roster.
func allUsersSummary(blocks []models.SubscriberBlock) string {
	emails := make([]string, 0, len(blocks))
	for _, block := range blocks {
		emails = append(emails, block.User.Email)
	}
	return strings.Join(emails, ", ")
}
