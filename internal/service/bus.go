package service

import (
	"context"

	"github.com/fatimaaziz27/busbooker/internal/domain"
	"github.com/fatimaaziz27/busbooker/internal/service/ports"
)

type BusService struct {
	repo ports.BusRepo
}

func NewBusService(repo ports.BusRepo) *BusService {
	return &BusService{repo: repo}
}

func (s *BusService) List(ctx context.Context) ([]*domain.Bus, error) {
	return s.repo.List(ctx)
}
