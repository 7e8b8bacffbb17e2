package usecase

import (
	"cinema-desk/internal/data/repository"
	"cinema-desk/internal/data/store"
	"cinema-desk/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Catalog  CatalogService
	Schedule ScheduleService
	Seat     SeatService
	Store    StoreService
}

func NewService(repo *repository.Repository, st *store.Store, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Catalog:  NewCatalogService(repo, st, log),
		Schedule: NewScheduleService(repo, st, config.Venue, log),
		Seat:     NewSeatService(repo, st, config.Venue, log),
		Store:    NewStoreService(repo, st, log),
	}
}
