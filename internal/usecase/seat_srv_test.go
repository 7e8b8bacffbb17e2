package usecase

import (
	"errors"
	"testing"

	"cinema-desk/internal/dto/request"
)

const (
	futureStart = "01-01-2030-20-00"
	pastStart   = "01-01-2020-20-00"
)

func TestSellOnceThenConflict(t *testing.T) {
	t.Parallel()
	service, _ := newTestService(t)

	movie := addMovie(t, service, "Inception", 148)
	session := addSession(t, service, movie.ID, futureStart)

	sellSeat(t, service, session.ID, 5)

	_, err := service.Seat.Sell(&request.SellTicketRequest{SessionID: session.ID, Seat: 5})
	if !errors.Is(err, ErrSeatUnavailable) {
		t.Fatalf("second sell: want ErrSeatUnavailable, got %v", err)
	}
	if tickets := service.Seat.ListTickets(); len(tickets) != 1 {
		t.Fatalf("want exactly one ticket, got %d", len(tickets))
	}
}

func TestSellSeatOutOfRange(t *testing.T) {
	t.Parallel()
	service, _ := newTestService(t)

	movie := addMovie(t, service, "Inception", 148)
	session := addSession(t, service, movie.ID, futureStart)

	_, err := service.Seat.Sell(&request.SellTicketRequest{SessionID: session.ID, Seat: 11})
	if !errors.Is(err, ErrSeatUnavailable) {
		t.Fatalf("want ErrSeatUnavailable for seat 11, got %v", err)
	}
	if tickets := service.Seat.ListTickets(); len(tickets) != 0 {
		t.Fatalf("no ticket should be created, got %d", len(tickets))
	}
}

// Selling a seat does not occupy it, and the per-session availability view
// only consults the occupied flags. A sold-but-unoccupied seat therefore
// still shows as available; this mirrors the data files' semantics.
func TestAvailabilityIgnoresSoldSeats(t *testing.T) {
	t.Parallel()
	service, _ := newTestService(t)

	movie := addMovie(t, service, "Inception", 148)
	session := addSession(t, service, movie.ID, futureStart)

	sellSeat(t, service, session.ID, 2)
	if _, err := service.Seat.MarkOccupied(&request.MarkSeatsRequest{
		SessionID: session.ID,
		Seats:     []int{3},
	}); err != nil {
		t.Fatal(err)
	}

	status, err := service.Seat.SeatStatus(session.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !containsSeat(status.Available, 2) {
		t.Error("sold seat 2 should still be listed available")
	}
	if containsSeat(status.Available, 3) {
		t.Error("occupied seat 3 should not be available")
	}
	if !containsSeat(status.Sold, 2) {
		t.Error("seat 2 should be listed sold")
	}
	if len(status.Available) != 9 {
		t.Errorf("available = %v, want venue range minus occupied", status.Available)
	}
}

func TestMarkOccupiedIdempotent(t *testing.T) {
	t.Parallel()
	service, _ := newTestService(t)

	movie := addMovie(t, service, "Inception", 148)
	session := addSession(t, service, movie.ID, futureStart)

	first, err := service.Seat.MarkOccupied(&request.MarkSeatsRequest{
		SessionID: session.ID,
		Seats:     []int{3, 4},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(first.Marked) != 2 || len(first.AlreadyOccupied) != 0 {
		t.Fatalf("first mark = %+v", first)
	}

	second, err := service.Seat.MarkOccupied(&request.MarkSeatsRequest{
		SessionID: session.ID,
		Seats:     []int{4, 5},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !containsSeat(second.AlreadyOccupied, 4) || !containsSeat(second.Marked, 5) {
		t.Fatalf("second mark = %+v", second)
	}

	status, err := service.Seat.SeatStatus(session.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(status.Occupied) != 3 {
		t.Errorf("occupied = %v, want {3,4,5}", status.Occupied)
	}
	if len(status.Sold) != 0 {
		t.Error("marking occupied must never sell a seat")
	}
}

func TestReturnBeforeStart(t *testing.T) {
	t.Parallel()
	service, _ := newTestService(t)

	movie := addMovie(t, service, "Inception", 148)
	session := addSession(t, service, movie.ID, futureStart)

	// Occupy the seat as well; a return must clear both flags.
	if _, err := service.Seat.MarkOccupied(&request.MarkSeatsRequest{
		SessionID: session.ID,
		Seats:     []int{5},
	}); err != nil {
		t.Fatal(err)
	}
	ticket := sellSeat(t, service, session.ID, 5)

	if err := service.Seat.Return(&request.ReturnTicketRequest{TicketID: ticket.ID}); err != nil {
		t.Fatalf("Return() error: %v", err)
	}

	if tickets := service.Seat.ListTickets(); len(tickets) != 0 {
		t.Fatalf("ticket should be gone, got %d", len(tickets))
	}
	status, err := service.Seat.SeatStatus(session.ID)
	if err != nil {
		t.Fatal(err)
	}
	if containsSeat(status.Sold, 5) || containsSeat(status.Occupied, 5) {
		t.Errorf("seat 5 should be fully vacant, status = %+v", status)
	}
	if !containsSeat(status.Available, 5) {
		t.Error("seat 5 should be available again")
	}
}

func TestReturnAfterStartRefused(t *testing.T) {
	t.Parallel()
	service, _ := newTestService(t)

	movie := addMovie(t, service, "Inception", 148)
	session := addSession(t, service, movie.ID, pastStart)
	ticket := sellSeat(t, service, session.ID, 5)

	err := service.Seat.Return(&request.ReturnTicketRequest{TicketID: ticket.ID})
	if !errors.Is(err, ErrNotReturnable) {
		t.Fatalf("want ErrNotReturnable, got %v", err)
	}
	if tickets := service.Seat.ListTickets(); len(tickets) != 1 {
		t.Fatalf("ticket must remain, got %d", len(tickets))
	}
}

// The pre-sale display treats seat numbers as one namespace across all
// sessions: any ticket on seat N hides N everywhere.
func TestGlobalSoldViewSpansSessions(t *testing.T) {
	t.Parallel()
	service, _ := newTestService(t)

	movie := addMovie(t, service, "Inception", 148)
	first := addSession(t, service, movie.ID, futureStart)
	second := addSession(t, service, movie.ID, "02-01-2030-20-00")

	sellSeat(t, service, first.ID, 2)
	sellSeat(t, service, second.ID, 4)

	available := service.Seat.GlobalSoldView()
	if containsSeat(available, 2) || containsSeat(available, 4) {
		t.Errorf("global view = %v, want 2 and 4 hidden", available)
	}
	if len(available) != 8 {
		t.Errorf("global view = %v, want 8 seats", available)
	}
}

// The end-to-end flow: sell, fail a double sell, return, seat free again.
func TestSellReturnScenario(t *testing.T) {
	t.Parallel()
	service, _ := newTestService(t)

	movie := addMovie(t, service, "Inception", 148)
	session := addSession(t, service, movie.ID, futureStart)

	ticket := sellSeat(t, service, session.ID, 5)

	if _, err := service.Seat.Sell(&request.SellTicketRequest{SessionID: session.ID, Seat: 5}); !errors.Is(err, ErrSeatUnavailable) {
		t.Fatalf("double sell: want ErrSeatUnavailable, got %v", err)
	}
	if len(service.Seat.ListTickets()) != 1 {
		t.Fatal("still exactly one ticket expected")
	}

	if err := service.Seat.Return(&request.ReturnTicketRequest{TicketID: ticket.ID}); err != nil {
		t.Fatalf("Return() error: %v", err)
	}

	status, err := service.Seat.SeatStatus(session.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !containsSeat(status.Available, 5) {
		t.Errorf("available = %v, want seat 5 back", status.Available)
	}
}
