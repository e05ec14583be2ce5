package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fatimaaziz27/busbooker/internal/domain"
	"github.com/fatimaaziz27/busbooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	busRepo     ports.BusRepo
	notifier    ports.BookingNotifier
	logger      logger.Logger
	ids         *bookingIDGenerator
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	busRepo ports.BusRepo,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		busRepo:     busRepo,
		notifier:    notifier,
		logger:      logger,
		ids:         newBookingIDGenerator(),
	}
}

func (s *BookingService) Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Seats <= 0 {
		return nil, fmt.Errorf("%w: seats must be positive", domain.ErrValidation)
	}

	// Fare, route and time are immutable on a bus, so reading them
	// outside the ledger lock is safe. The capacity check happens
	// inside bookingRepo.Create.
	bus, err := s.busRepo.GetByID(ctx, input.BusID)
	if err != nil {
		return nil, fmt.Errorf("check bus: %w", err)
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:        s.ids.Next(now),
		Name:      name,
		BusID:     bus.ID,
		Route:     bus.Route,
		Time:      bus.Time,
		Seats:     input.Seats,
		TotalFare: bus.Fare * input.Seats,
		CreatedAt: now,
	}

	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.Int("bus_id", booking.BusID),
		logger.Int("seats", booking.Seats),
		logger.Int("total_fare", booking.TotalFare),
	)

	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), booking)

	return booking, nil
}

func (s *BookingService) List(ctx context.Context) ([]*domain.Booking, error) {
	return s.bookingRepo.List(ctx)
}

func (s *BookingService) Cancel(ctx context.Context, name string) (*domain.Booking, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	booking, err := s.bookingRepo.CancelByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}

	s.logger.Info("booking cancelled",
		logger.String("booking_id", booking.ID),
		logger.Int("bus_id", booking.BusID),
		logger.Int("seats", booking.Seats),
	)

	go s.notifier.NotifyBookingCancelled(context.WithoutCancel(ctx), booking)

	return booking, nil
}
