// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-taskflow/internal/logger"
)

const defaultCleanupInterval = time.Minute

// SessionCleaner periodically deletes expired sessions.
type SessionCleaner struct {
	sweeper  SessionSweeper
	interval time.Duration
	logger   *logger.Logger

	done chan struct{}
}

// NewSessionCleaner returns a cleaner ticking every interval. A non-positive
// interval falls back to one minute.
func NewSessionCleaner(sweeper SessionSweeper, interval time.Duration, logger *logger.Logger) *SessionCleaner {
	if interval <= 0 {
		interval = defaultCleanupInterval
	}

	return &SessionCleaner{
		sweeper:  sweeper,
		interval: interval,
		logger:   logger,
		done:     make(chan struct{}),
	}
}

// Run starts the cleanup loop. It must be called at most once.
func (c *SessionCleaner) Run(ctx context.Context) {
	c.logger.Info().Dur("interval", c.interval).Msg("starting session cleaner")
	go c.loop(ctx)
}

// Wait blocks until the loop started by Run has stopped.
func (c *SessionCleaner) Wait() {
	<-c.done
}

func (c *SessionCleaner) loop(ctx context.Context) {
	defer close(c.done)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.logger.Info().Msg("session cleaner stopped")
			return
		case <-ticker.C:
			c.sweep(ctx)
		}
	}
}

func (c *SessionCleaner) sweep(ctx context.Context) {
	deleted, err := c.sweeper.CleanupSessions(ctx)
	if err != nil {
		c.logger.Err(err).Str("func", "*SessionCleaner.sweep").Msg("error cleaning up sessions")
		return
	}
	if deleted > 0 {
		c.logger.Debug().Int64("deleted", deleted).Msg("expired sessions removed")
	}
}
