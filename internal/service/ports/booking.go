package ports

import (
	"context"

	"github.com/fatimaaziz27/busbooker/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	List(ctx context.Context) ([]*domain.Booking, error)
	CancelByName(ctx context.Context, name string) (*domain.Booking, error)
}
