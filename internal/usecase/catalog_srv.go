package usecase

import (
	"fmt"

	"cinema-desk/internal/data/entity"
	"cinema-desk/internal/data/repository"
	"cinema-desk/internal/data/store"
	"cinema-desk/internal/dto/request"
	"cinema-desk/internal/dto/response"
	"cinema-desk/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CatalogService interface {
	AddMovie(req *request.AddMovieRequest) (*response.MovieResponse, error)
	EditMovie(movieID string, req *request.EditMovieRequest) (*response.MovieResponse, error)
	RemoveMovie(movieID string) error
	ListMovies() []response.MovieResponse
}

type catalogService struct {
	repo  *repository.Repository
	store *store.Store
	log   *zap.Logger
}

func NewCatalogService(repo *repository.Repository, st *store.Store, log *zap.Logger) CatalogService {
	return &catalogService{
		repo:  repo,
		store: st,
		log:   log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) AddMovie(req *request.AddMovieRequest) (*response.MovieResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Add movie validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	movie := entity.NewMovie(req.Title, req.DurationInMinutes)
	if err := s.repo.Movie.Insert(movie); err != nil {
		return nil, fmt.Errorf("add movie: %w", err)
	}

	if err := s.store.SaveMovies(s.repo.Movie.All()); err != nil {
		return nil, fmt.Errorf("add movie: %w", err)
	}

	s.log.Info("Movie added",
		zap.String("movie_id", movie.ID.String()),
		zap.String("title", movie.Title),
		zap.Int("duration", movie.DurationInMinutes),
	)

	movieResp := response.MovieToResponse(movie)
	return &movieResp, nil
}

// EditMovie updates the movie in place; its identity survives the edit.
// The persisted records are keyed by title, so the previous movie record is
// tombstoned along with the session and ticket records that derive their
// keys from the title when it changes.
func (s *catalogService) EditMovie(movieID string, req *request.EditMovieRequest) (*response.MovieResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Edit movie validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(movieID)
	if err != nil {
		return nil, fmt.Errorf("invalid movie id: %w", err)
	}

	movie, err := s.repo.Movie.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("edit movie: %w", err)
	}

	titleChanged := movie.Title != req.Title
	if titleChanged {
		if other, _ := s.repo.Movie.FindByTitle(req.Title); other != nil {
			return nil, fmt.Errorf("edit movie %q: %w", req.Title, repository.ErrDuplicateTitle)
		}
	}

	// Tombstone the persisted keys while they are still derivable from the
	// old title.
	s.store.TombstoneMovie(movie.Title)
	if titleChanged {
		for _, session := range s.repo.Session.FindByMovie(movie.ID) {
			s.store.TombstoneSession(session)
			for _, ticket := range s.repo.Ticket.FindBySession(session.ID) {
				s.store.TombstoneTicket(ticket)
			}
		}
	}

	oldTitle := movie.Title
	movie.Title = req.Title
	movie.DurationInMinutes = req.DurationInMinutes
	movie.Touch()

	if err := s.store.SaveMovies(s.repo.Movie.All()); err != nil {
		return nil, fmt.Errorf("edit movie: %w", err)
	}
	if titleChanged {
		// Dependent records re-save under their new keys.
		if err := s.store.SaveSessions(s.repo.Session.All()); err != nil {
			return nil, fmt.Errorf("edit movie: %w", err)
		}
		if err := s.store.SaveTickets(s.repo.Ticket.All()); err != nil {
			return nil, fmt.Errorf("edit movie: %w", err)
		}
	}

	s.log.Info("Movie edited",
		zap.String("movie_id", movieID),
		zap.String("old_title", oldTitle),
		zap.String("title", movie.Title),
		zap.Int("duration", movie.DurationInMinutes),
	)

	movieResp := response.MovieToResponse(movie)
	return &movieResp, nil
}

// RemoveMovie cascades: every session referencing the movie and every
// ticket for those sessions goes with it, in memory and on disk.
func (s *catalogService) RemoveMovie(movieID string) error {
	id, err := uuid.Parse(movieID)
	if err != nil {
		return fmt.Errorf("invalid movie id: %w", err)
	}

	movie, err := s.repo.Movie.FindByID(id)
	if err != nil {
		return fmt.Errorf("remove movie: %w", err)
	}

	removedSessions := s.repo.Session.RemoveByMovie(movie.ID)
	ticketCount := 0
	for _, session := range removedSessions {
		for _, ticket := range s.repo.Ticket.RemoveBySession(session.ID) {
			s.store.TombstoneTicket(ticket)
			ticketCount++
		}
		s.store.TombstoneSession(session)
	}
	s.store.TombstoneMovie(movie.Title)

	if err := s.repo.Movie.Remove(movie.ID); err != nil {
		return fmt.Errorf("remove movie: %w", err)
	}

	if err := s.store.SaveAll(s.repo.Movie.All(), s.repo.Session.All(), s.repo.Ticket.All()); err != nil {
		return fmt.Errorf("remove movie: %w", err)
	}

	s.log.Info("Movie removed",
		zap.String("movie_id", movieID),
		zap.String("title", movie.Title),
		zap.Int("sessions_removed", len(removedSessions)),
		zap.Int("tickets_removed", ticketCount),
	)

	return nil
}

func (s *catalogService) ListMovies() []response.MovieResponse {
	movies := s.repo.Movie.All()
	responses := make([]response.MovieResponse, len(movies))
	for i, movie := range movies {
		responses[i] = response.MovieToResponse(movie)
	}
	return responses
}
