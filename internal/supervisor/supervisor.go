// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 StreamPick Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/streampick/streampick

// Package supervisor assembles the suture supervision tree. Services that
// crash are restarted with exponential backoff instead of taking the whole
// process down.
package supervisor

import (
	"context"
	"time"

	"github.com/thejerf/suture/v4"
	"github.com/thejerf/sutureslog"

	"github.com/streampick/streampick/internal/logging"
)

// Supervisor wraps the root suture supervisor.
type Supervisor struct {
	root *suture.Supervisor
}

// New creates the root supervisor with suture events routed through the
// structured logger.
func New(name string) *Supervisor {
	hook := (&sutureslog.Handler{
		Logger: logging.NewSlogLogger(),
	}).MustHook()

	root := suture.New(name, suture.Spec{
		EventHook:        hook,
		FailureDecay:     30,
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
	})

	return &Supervisor{root: root}
}

// Add registers a service with the supervision tree.
func (s *Supervisor) Add(service suture.Service) {
	s.root.Add(service)
}

// Serve runs the tree until the context is canceled. Blocks.
func (s *Supervisor) Serve(ctx context.Context) error {
	return s.root.Serve(ctx)
}
