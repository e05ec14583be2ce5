package ports

import (
	"context"

	"github.com/fatimaaziz27/busbooker/internal/domain"
)

type BusRepo interface {
	GetByID(ctx context.Context, id int) (*domain.Bus, error)
	List(ctx context.Context) ([]*domain.Bus, error)
}
