package repository

import (
	"sync"

	"github.com/fatimaaziz27/busbooker/internal/domain"
)

// Ledger is the in-memory store shared by the bus and booking
// repositories. A single mutex guards both collections: the capacity
// check, the seat decrement and the booking append must form one
// critical section, as must the match-and-release path of a
// cancellation.
type Ledger struct {
	mu       sync.Mutex
	buses    map[int]*domain.Bus
	order    []int
	bookings []*domain.Booking
}

// NewLedger seeds the catalog. Buses are never added or removed after
// this point; only their available-seat counts change.
func NewLedger(catalog []domain.Bus) *Ledger {
	l := &Ledger{
		buses: make(map[int]*domain.Bus, len(catalog)),
		order: make([]int, 0, len(catalog)),
	}
	for i := range catalog {
		bus := catalog[i]
		l.buses[bus.ID] = &bus
		l.order = append(l.order, bus.ID)
	}
	return l
}
