package notify

import (
	"context"
	"log/slog"
	"time"
)

//go:generate mockgen -source=scheduler.go -destination=mocks/checker_mock.go -package=mocks
type Checker interface {
	// Evaluates due reminders, delivers and records them.
	CheckNotifications(ctx context.Context) error
}

// Scheduler polls a Checker once right away and then on every interval.
type Scheduler struct {
	checker  Checker
	interval time.Duration
	logger   *slog.Logger
}

func NewScheduler(checker Checker, interval time.Duration, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	if interval <= 0 {
		interval = time.Minute
	}
	return &Scheduler{checker: checker, interval: interval, logger: logger}
}

// Run blocks until ctx is done.
func (s *Scheduler) Run(ctx context.Context) {
	s.check(ctx)
	t := time.NewTicker(s.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.check(ctx)
		}
	}
}

func (s *Scheduler) check(ctx context.Context) {
	if err := s.checker.CheckNotifications(ctx); err != nil {
		s.logger.Error("notification check failed", slog.String("error", err.Error()))
	}
}
