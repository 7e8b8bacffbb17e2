package usecase

import (
	"fmt"

	"cinema-desk/internal/data/repository"
	"cinema-desk/internal/data/store"

	"go.uber.org/zap"
)

// StoreService orchestrates whole-snapshot persistence: loading replaces
// the three in-memory collections in dependency order, saving walks the
// same order so every collection merges against its file.
type StoreService interface {
	LoadAll() error
	SaveAll() error
}

type storeService struct {
	repo  *repository.Repository
	store *store.Store
	log   *zap.Logger
}

func NewStoreService(repo *repository.Repository, st *store.Store, log *zap.Logger) StoreService {
	return &storeService{
		repo:  repo,
		store: st,
		log:   log.With(zap.String("service", "store")),
	}
}

func (s *storeService) LoadAll() error {
	movies, sessions, tickets, err := s.store.LoadAll()
	if err != nil {
		return fmt.Errorf("load data: %w", err)
	}

	s.repo.Movie.ReplaceAll(movies)
	s.repo.Session.ReplaceAll(sessions)
	s.repo.Ticket.ReplaceAll(tickets)

	s.log.Info("Data loaded",
		zap.Int("movies", len(movies)),
		zap.Int("sessions", len(sessions)),
		zap.Int("tickets", len(tickets)),
	)
	return nil
}

func (s *storeService) SaveAll() error {
	if err := s.store.SaveAll(s.repo.Movie.All(), s.repo.Session.All(), s.repo.Ticket.All()); err != nil {
		return fmt.Errorf("save data: %w", err)
	}

	s.log.Info("Data saved",
		zap.Int("movies", len(s.repo.Movie.All())),
		zap.Int("sessions", len(s.repo.Session.All())),
		zap.Int("tickets", len(s.repo.Ticket.All())),
	)
	return nil
}
