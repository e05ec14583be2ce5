package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatimaaziz27/busbooker/internal/domain"
)

type BookingRepository struct {
	ledger *Ledger
}

func NewBookingRepo(ledger *Ledger) *BookingRepository {
	return &BookingRepository{ledger: ledger}
}

// Create reserves b.Seats on b.BusID and appends the booking. Either
// both the decrement and the append happen, or neither does.
func (r *BookingRepository) Create(_ context.Context, b *domain.Booking) error {
	r.ledger.mu.Lock()
	defer r.ledger.mu.Unlock()

	bus, ok := r.ledger.buses[b.BusID]
	if !ok {
		return domain.ErrBusNotFound
	}

	if b.Seats > bus.AvailableSeats {
		return fmt.Errorf("%w: %d seat(s) remaining", domain.ErrNotEnoughSeats, bus.AvailableSeats)
	}

	bus.AvailableSeats -= b.Seats

	cp := *b
	r.ledger.bookings = append(r.ledger.bookings, &cp)

	return nil
}

// List returns all active bookings in creation order.
func (r *BookingRepository) List(_ context.Context) ([]*domain.Booking, error) {
	r.ledger.mu.Lock()
	defer r.ledger.mu.Unlock()

	res := make([]*domain.Booking, 0, len(r.ledger.bookings))
	for _, b := range r.ledger.bookings {
		cp := *b
		res = append(res, &cp)
	}

	return res, nil
}

// CancelByName removes the first booking whose passenger name matches
// case-insensitively and returns the seats it held to its bus.
func (r *BookingRepository) CancelByName(_ context.Context, name string) (*domain.Booking, error) {
	r.ledger.mu.Lock()
	defer r.ledger.mu.Unlock()

	for i, b := range r.ledger.bookings {
		if !strings.EqualFold(b.Name, name) {
			continue
		}

		if bus, ok := r.ledger.buses[b.BusID]; ok {
			bus.AvailableSeats += b.Seats
			if bus.AvailableSeats > bus.TotalSeats {
				bus.AvailableSeats = bus.TotalSeats
			}
		}

		r.ledger.bookings = append(r.ledger.bookings[:i], r.ledger.bookings[i+1:]...)

		cp := *b
		return &cp, nil
	}

	return nil, domain.ErrBookingNotFound
}
