package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/JAL-Virtual/jal-bookings-events-sub000/internal/domain"
)

type eventCompleter interface {
	CompleteElapsed(ctx context.Context) ([]*domain.Event, error)
}

// Scheduler periodically closes out events whose date has passed.
type Scheduler struct {
	eventService eventCompleter
	interval     time.Duration
	logger       logger.Logger
}

func New(
	eventService eventCompleter,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		eventService: eventService,
		interval:     interval,
		logger:       logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	completed, err := s.eventService.CompleteElapsed(ctx)
	if err != nil {
		s.logger.Error("failed to complete elapsed events",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, e := range completed {
		s.logger.Info("event completed",
			logger.String("event_id", e.ID),
			logger.String("name", e.Name),
		)
	}
}
