package workers

import (
	"context"
	"log/slog"
	"time"
)

type sessionPurger interface {
	Purge() int
}

type sessionJanitor struct {
	purger   sessionPurger
	interval time.Duration
}

// NewSessionJanitor periodically drops expired sessions from memory.
func NewSessionJanitor(purger sessionPurger, interval time.Duration) *sessionJanitor {
	return &sessionJanitor{
		purger:   purger,
		interval: interval,
	}
}

func (s *sessionJanitor) Name() string { return "session_janitor" }

func (s *sessionJanitor) Start(ctx context.Context) error {
	slog.Info("Starting worker", "name", s.Name(), "interval", s.interval)
	defer slog.Info("Worker stopped", "name", s.Name())

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := s.purger.Purge(); n > 0 {
				slog.Debug("Expired sessions purged", "count", n)
			}
		}
	}
}
