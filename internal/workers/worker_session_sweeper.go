// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
)

// sweepTimeout caps a single sweep so a stuck database cannot pile up
// overlapping deletions.
const sweepTimeout = time.Minute

// sessionSweeper periodically deletes expired session rows. The HTTP layer
// already drops expired sessions on sight; the sweeper reclaims the rows of
// users who simply never came back.
type sessionSweeper struct {
	sessions store.SessionRepository
	interval time.Duration
	logger   *logger.Logger
}

// NewSessionSweeper constructs the sweeper with the interval configured in
// cfg.
func NewSessionSweeper(sessions store.SessionRepository, cfg config.Workers, logger *logger.Logger) Worker {
	return &sessionSweeper{
		sessions: sessions,
		interval: cfg.SessionSweepInterval,
		logger:   logger,
	}
}

// Run starts the sweep loop in its own goroutine and returns immediately.
func (s *sessionSweeper) Run() {
	s.logger.Info().Dur("interval", s.interval).Msg("session sweeper started")
	go s.loop()
}

func (s *sessionSweeper) loop() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for range ticker.C {
		s.sweep()
	}
}

func (s *sessionSweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	swept, err := s.sessions.DeleteExpiredSessions(ctx, time.Now().UTC())
	if err != nil {
		s.logger.Err(err).Msg("expired session sweep failed")
		return
	}

	if swept > 0 {
		s.logger.Info().Int64("swept", swept).Msg("expired sessions removed")
	}
}
