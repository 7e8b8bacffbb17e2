package usecase

import (
	"testing"

	"cinema-desk/internal/data/repository"
	"cinema-desk/internal/data/store"
	"cinema-desk/internal/dto/request"
	"cinema-desk/internal/dto/response"
	"cinema-desk/pkg/utils"

	"go.uber.org/zap"
)

func newTestService(t *testing.T) (*Service, string) {
	t.Helper()
	dir := t.TempDir()
	logger := zap.NewNop()
	repo := repository.NewRepository(logger)
	st := store.New(dir, 10, logger)
	config := &utils.Config{
		Venue: utils.VenueConfig{Capacity: 10, SessionSeats: 10},
	}
	return NewService(repo, st, config, logger), dir
}

func addMovie(t *testing.T, s *Service, title string, duration int) *response.MovieResponse {
	t.Helper()
	movie, err := s.Catalog.AddMovie(&request.AddMovieRequest{
		Title:             title,
		DurationInMinutes: duration,
	})
	if err != nil {
		t.Fatalf("AddMovie(%q) error: %v", title, err)
	}
	return movie
}

func addSession(t *testing.T, s *Service, movieID, start string) *response.SessionResponse {
	t.Helper()
	session, err := s.Schedule.AddSession(&request.AddSessionRequest{
		MovieID:   movieID,
		StartTime: start,
	})
	if err != nil {
		t.Fatalf("AddSession(%s) error: %v", start, err)
	}
	return session
}

func sellSeat(t *testing.T, s *Service, sessionID string, seat int) *response.TicketResponse {
	t.Helper()
	ticket, err := s.Seat.Sell(&request.SellTicketRequest{
		SessionID: sessionID,
		Seat:      seat,
	})
	if err != nil {
		t.Fatalf("Sell(seat %d) error: %v", seat, err)
	}
	return ticket
}

func containsSeat(seats []int, seat int) bool {
	for _, s := range seats {
		if s == seat {
			return true
		}
	}
	return false
}
