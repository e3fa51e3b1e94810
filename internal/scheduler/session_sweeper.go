package scheduler

import (
	"context"
	"time"

	"github.com/MrSnakeDoc/hub/internal/index"
	"github.com/MrSnakeDoc/hub/internal/logger"
)

const (
	// DefaultSweepInterval is used when no interval is configured
	DefaultSweepInterval = 10 * time.Minute
)

// SessionSweeper periodically drops expired in-memory sessions.
// Redis-backed sessions expire on their own and need no sweeper.
type SessionSweeper struct {
	sessions *index.MemorySessions
	logger   logger.Logger
	interval time.Duration
	now      func() time.Time
	stopCh   chan struct{}
}

// NewSessionSweeper creates a new session sweeper
func NewSessionSweeper(
	sessions *index.MemorySessions,
	log logger.Logger,
	interval time.Duration,
) *SessionSweeper {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}

	return &SessionSweeper{
		sessions: sessions,
		logger:   log,
		interval: interval,
		now:      time.Now,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the periodic sweep
func (s *SessionSweeper) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.Sweep()
			case <-s.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop stops the sweeper
func (s *SessionSweeper) Stop() {
	close(s.stopCh)
}

// Sweep removes expired sessions and returns how many were dropped
func (s *SessionSweeper) Sweep() int {
	removed := s.sessions.Sweep(s.now())

	if removed > 0 {
		s.logger.Info("expired sessions swept",
			logger.Int("removed", removed))
	} else {
		s.logger.Debug("session sweep completed, nothing to remove")
	}

	return removed
}
