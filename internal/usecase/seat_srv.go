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

type SeatService interface {
	Sell(req *request.SellTicketRequest) (*response.TicketResponse, error)
	Return(req *request.ReturnTicketRequest) error
	MarkOccupied(req *request.MarkSeatsRequest) (*response.MarkSeatsResponse, error)
	// SeatStatus is the per-session view: the venue range minus the
	// occupied seats. Sold seats do not reduce availability here.
	SeatStatus(sessionID string) (*response.SeatStatusResponse, error)
	// GlobalSoldView is the cross-session pre-sale display: the venue
	// range minus the seat numbers of every ticket in the ledger,
	// regardless of session.
	GlobalSoldView() []int
	ListTickets() []response.TicketResponse
}

type seatService struct {
	repo  *repository.Repository
	store *store.Store
	venue utils.VenueConfig
	log   *zap.Logger
}

func NewSeatService(repo *repository.Repository, st *store.Store, venue utils.VenueConfig, log *zap.Logger) SeatService {
	return &seatService{
		repo:  repo,
		store: st,
		venue: venue,
		log:   log.With(zap.String("service", "seat")),
	}
}

// Sell creates a ticket for a seat that is in range and not already sold.
// Selling does not touch the occupied flag; the two are independent.
func (s *seatService) Sell(req *request.SellTicketRequest) (*response.TicketResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Sell ticket validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	sessionID, err := uuid.Parse(req.SessionID)
	if err != nil {
		return nil, fmt.Errorf("invalid session id: %w", err)
	}

	session, err := s.repo.Session.FindByID(sessionID)
	if err != nil {
		return nil, fmt.Errorf("sell ticket: %w", err)
	}

	if req.Seat < 1 || req.Seat > session.TotalSeats {
		return nil, fmt.Errorf("seat %d out of range 1..%d: %w", req.Seat, session.TotalSeats, ErrSeatUnavailable)
	}
	if session.IsSeatSold(req.Seat) {
		return nil, fmt.Errorf("seat %d already sold: %w", req.Seat, ErrSeatUnavailable)
	}

	ticket := entity.NewTicket(session, req.Seat)
	s.repo.Ticket.Insert(ticket)
	session.MarkSeatSold(req.Seat)

	if err := s.store.SaveTickets(s.repo.Ticket.All()); err != nil {
		return nil, fmt.Errorf("sell ticket: %w", err)
	}

	s.log.Info("Ticket sold",
		zap.String("ticket_id", ticket.ID.String()),
		zap.String("title", session.Movie.Title),
		zap.String("start", session.FormattedStart()),
		zap.Int("seat", req.Seat),
	)

	ticketResp := response.TicketToResponse(ticket)
	return &ticketResp, nil
}

// Return succeeds only while the session has not started. It frees the
// seat completely: the sold flag and any administrative block both clear.
func (s *seatService) Return(req *request.ReturnTicketRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Return ticket validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	ticketID, err := uuid.Parse(req.TicketID)
	if err != nil {
		return fmt.Errorf("invalid ticket id: %w", err)
	}

	ticket, err := s.repo.Ticket.FindByID(ticketID)
	if err != nil {
		return fmt.Errorf("return ticket: %w", err)
	}

	if !ticket.Session.StartTime.After(time.Now()) {
		return fmt.Errorf("session started at %s: %w", ticket.Session.FormattedStart(), ErrNotReturnable)
	}

	ticket.Session.MarkSeatVacant(ticket.Seat)
	s.store.TombstoneTicket(ticket)
	if err := s.repo.Ticket.Remove(ticket.ID); err != nil {
		return fmt.Errorf("return ticket: %w", err)
	}

	if err := s.store.SaveTickets(s.repo.Ticket.All()); err != nil {
		return fmt.Errorf("return ticket: %w", err)
	}

	s.log.Info("Ticket returned",
		zap.String("ticket_id", req.TicketID),
		zap.String("title", ticket.Session.Movie.Title),
		zap.Int("seat", ticket.Seat),
	)

	return nil
}

// MarkOccupied places an administrative block on each seat not already
// blocked. Already-blocked seats are reported and skipped; the operation
// never touches sold flags and never creates tickets. The block is
// in-memory state only; it is not persisted.
func (s *seatService) MarkOccupied(req *request.MarkSeatsRequest) (*response.MarkSeatsResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Mark seats validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	sessionID, err := uuid.Parse(req.SessionID)
	if err != nil {
		return nil, fmt.Errorf("invalid session id: %w", err)
	}

	session, err := s.repo.Session.FindByID(sessionID)
	if err != nil {
		return nil, fmt.Errorf("mark seats: %w", err)
	}

	result := &response.MarkSeatsResponse{}
	for _, seat := range req.Seats {
		if session.IsSeatOccupied(seat) {
			result.AlreadyOccupied = append(result.AlreadyOccupied, seat)
			continue
		}
		session.MarkSeatOccupied(seat)
		result.Marked = append(result.Marked, seat)
	}

	s.log.Info("Seats marked occupied",
		zap.String("session_id", req.SessionID),
		zap.Ints("marked", result.Marked),
		zap.Ints("already_occupied", result.AlreadyOccupied),
	)

	return result, nil
}

func (s *seatService) SeatStatus(sessionID string) (*response.SeatStatusResponse, error) {
	id, err := uuid.Parse(sessionID)
	if err != nil {
		return nil, fmt.Errorf("invalid session id: %w", err)
	}

	session, err := s.repo.Session.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("seat status: %w", err)
	}

	var available []int
	for seat := 1; seat <= s.venue.Capacity; seat++ {
		if !session.IsSeatOccupied(seat) {
			available = append(available, seat)
		}
	}

	return &response.SeatStatusResponse{
		Available: available,
		Occupied:  session.OccupiedSeats(),
		Sold:      session.SoldSeats(),
	}, nil
}

func (s *seatService) GlobalSoldView() []int {
	sold := make(map[int]struct{})
	for _, ticket := range s.repo.Ticket.All() {
		sold[ticket.Seat] = struct{}{}
	}

	var available []int
	for seat := 1; seat <= s.venue.Capacity; seat++ {
		if _, ok := sold[seat]; !ok {
			available = append(available, seat)
		}
	}
	return available
}

func (s *seatService) ListTickets() []response.TicketResponse {
	tickets := s.repo.Ticket.All()
	responses := make([]response.TicketResponse, len(tickets))
	for i, ticket := range tickets {
		responses[i] = response.TicketToResponse(ticket)
	}
	return responses
}
