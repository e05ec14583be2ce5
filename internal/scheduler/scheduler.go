package scheduler

import (
	"context"
	"time"

	"github.com/fatimaaziz27/busbooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type busLister interface {
	List(ctx context.Context) ([]*domain.Bus, error)
}

// Scheduler periodically reports seat occupancy per bus.
type Scheduler struct {
	busService busLister
	interval   time.Duration
	logger     logger.Logger
}

func New(
	busService busLister,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		busService: busService,
		interval:   interval,
		logger:     logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("occupancy reporter started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("occupancy reporter stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	buses, err := s.busService.List(ctx)
	if err != nil {
		s.logger.Error("failed to list buses",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, b := range buses {
		s.logger.Info("bus occupancy",
			logger.Int("bus_id", b.ID),
			logger.String("route", b.Route),
			logger.Int("booked", b.TotalSeats-b.AvailableSeats),
			logger.Int("available", b.AvailableSeats),
		)

		if b.AvailableSeats == 0 {
			s.logger.Warn("bus sold out",
				logger.Int("bus_id", b.ID),
				logger.String("route", b.Route),
			)
		}
	}
}
