package repository

import (
	"context"

	"github.com/fatimaaziz27/busbooker/internal/domain"
)

type BusRepository struct {
	ledger *Ledger
}

func NewBusRepo(ledger *Ledger) *BusRepository {
	return &BusRepository{ledger: ledger}
}

// GetByID returns a copy of the bus so callers cannot mutate ledger
// state directly.
func (r *BusRepository) GetByID(_ context.Context, id int) (*domain.Bus, error) {
	r.ledger.mu.Lock()
	defer r.ledger.mu.Unlock()

	bus, ok := r.ledger.buses[id]
	if !ok {
		return nil, domain.ErrBusNotFound
	}

	cp := *bus
	return &cp, nil
}

// List returns all buses in catalog-seed order.
func (r *BusRepository) List(_ context.Context) ([]*domain.Bus, error) {
	r.ledger.mu.Lock()
	defer r.ledger.mu.Unlock()

	res := make([]*domain.Bus, 0, len(r.ledger.order))
	for _, id := range r.ledger.order {
		cp := *r.ledger.buses[id]
		res = append(res, &cp)
	}

	return res, nil
}
