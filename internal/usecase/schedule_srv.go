package usecase

import (
	"fmt"
	"time"

	"cinema-desk/internal/data/entity"
	"cinema-desk/internal/data/repository"
	"cinema-desk/internal/data/store"
	"cinema-desk/internal/dto/request"
	"cinema-desk/internal/dto/response"
	"cinema-desk/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ScheduleService interface {
	AddSession(req *request.AddSessionRequest) (*response.SessionResponse, error)
	EditSession(sessionID string, req *request.EditSessionRequest) (*response.SessionResponse, error)
	RemoveSession(sessionID string) error
	ListSessions() []response.SessionResponse
}

type scheduleService struct {
	repo  *repository.Repository
	store *store.Store
	venue utils.VenueConfig
	log   *zap.Logger
}

func NewScheduleService(repo *repository.Repository, st *store.Store, venue utils.VenueConfig, log *zap.Logger) ScheduleService {
	return &scheduleService{
		repo:  repo,
		store: st,
		venue: venue,
		log:   log.With(zap.String("service", "schedule")),
	}
}

func (s *scheduleService) AddSession(req *request.AddSessionRequest) (*response.SessionResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Add session validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	movieID, err := uuid.Parse(req.MovieID)
	if err != nil {
		return nil, fmt.Errorf("invalid movie id: %w", err)
	}

	movie, err := s.repo.Movie.FindByID(movieID)
	if err != nil {
		return nil, fmt.Errorf("add session: %w", err)
	}

	startTime, err := time.ParseInLocation(entity.StartTimeLayout, req.StartTime, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid start time %q (want %s): %w", req.StartTime, entity.StartTimeLayout, err)
	}

	totalSeats := req.TotalSeats
	if totalSeats == 0 {
		totalSeats = s.venue.SessionSeats
	}
	if totalSeats != s.venue.Capacity {
		// Seat displays always use the venue capacity; a diverging session
		// capacity only bounds the sell range.
		s.log.Warn("Session capacity differs from venue capacity",
			zap.Int("total_seats", totalSeats),
			zap.Int("venue_capacity", s.venue.Capacity),
		)
	}

	session := entity.NewSession(movie, startTime, totalSeats)
	if err := s.repo.Session.Insert(session); err != nil {
		return nil, fmt.Errorf("add session: %w", err)
	}

	if err := s.store.SaveSessions(s.repo.Session.All()); err != nil {
		return nil, fmt.Errorf("add session: %w", err)
	}

	s.log.Info("Session added",
		zap.String("session_id", session.ID.String()),
		zap.String("title", movie.Title),
		zap.String("start", session.FormattedStart()),
		zap.Int("total_seats", totalSeats),
	)

	sessionResp := response.SessionToResponse(session)
	return &sessionResp, nil
}

// EditSession reschedules the session in place; its identity survives. The
// seat state resets and existing tickets are invalidated (cascading
// removal), since they were sold for the old time slot. The old persisted
// keys are tombstoned.
func (s *scheduleService) EditSession(sessionID string, req *request.EditSessionRequest) (*response.SessionResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Edit session validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(sessionID)
	if err != nil {
		return nil, fmt.Errorf("invalid session id: %w", err)
	}

	session, err := s.repo.Session.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("edit session: %w", err)
	}

	startTime, err := time.ParseInLocation(entity.StartTimeLayout, req.StartTime, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid start time %q (want %s): %w", req.StartTime, entity.StartTimeLayout, err)
	}

	for _, other := range s.repo.Session.FindByMovie(session.Movie.ID) {
		if other.ID != session.ID && other.StartTime.Equal(startTime) {
			return nil, fmt.Errorf("edit session: %w", repository.ErrDuplicateSession)
		}
	}

	removedTickets := s.repo.Ticket.RemoveBySession(session.ID)
	for _, ticket := range removedTickets {
		s.store.TombstoneTicket(ticket)
	}
	s.store.TombstoneSession(session)

	session.StartTime = startTime
	session.ResetSeats()
	session.Touch()

	if err := s.store.SaveSessions(s.repo.Session.All()); err != nil {
		return nil, fmt.Errorf("edit session: %w", err)
	}
	if err := s.store.SaveTickets(s.repo.Ticket.All()); err != nil {
		return nil, fmt.Errorf("edit session: %w", err)
	}

	s.log.Info("Session edited",
		zap.String("session_id", sessionID),
		zap.String("title", session.Movie.Title),
		zap.String("start", session.FormattedStart()),
		zap.Int("tickets_invalidated", len(removedTickets)),
	)

	sessionResp := response.SessionToResponse(session)
	return &sessionResp, nil
}

// RemoveSession cascades ticket removal for the session.
func (s *scheduleService) RemoveSession(sessionID string) error {
	id, err := uuid.Parse(sessionID)
	if err != nil {
		return fmt.Errorf("invalid session id: %w", err)
	}

	session, err := s.repo.Session.FindByID(id)
	if err != nil {
		return fmt.Errorf("remove session: %w", err)
	}

	removedTickets := s.repo.Ticket.RemoveBySession(session.ID)
	for _, ticket := range removedTickets {
		s.store.TombstoneTicket(ticket)
	}
	s.store.TombstoneSession(session)

	if err := s.repo.Session.Remove(session.ID); err != nil {
		return fmt.Errorf("remove session: %w", err)
	}

	if err := s.store.SaveSessions(s.repo.Session.All()); err != nil {
		return fmt.Errorf("remove session: %w", err)
	}
	if err := s.store.SaveTickets(s.repo.Ticket.All()); err != nil {
		return fmt.Errorf("remove session: %w", err)
	}

	s.log.Info("Session removed",
		zap.String("session_id", sessionID),
		zap.String("title", session.Movie.Title),
		zap.String("start", session.FormattedStart()),
		zap.Int("tickets_removed", len(removedTickets)),
	)

	return nil
}

func (s *scheduleService) ListSessions() []response.SessionResponse {
	sessions := s.repo.Session.All()
	responses := make([]response.SessionResponse, len(sessions))
	for i, session := range sessions {
		responses[i] = response.SessionToResponse(session)
	}
	return responses
}
