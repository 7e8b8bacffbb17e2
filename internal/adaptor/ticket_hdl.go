package adaptor

import (
	"cinema-desk/internal/dto/request"
	"cinema-desk/internal/dto/response"
	"cinema-desk/internal/usecase"

	"go.uber.org/zap"
)

type TicketHandler struct {
	seats    usecase.SeatService
	schedule usecase.ScheduleService
	console  *Console
	log      *zap.Logger
}

func NewTicketHandler(seats usecase.SeatService, schedule usecase.ScheduleService, console *Console, log *zap.Logger) *TicketHandler {
	return &TicketHandler{
		seats:    seats,
		schedule: schedule,
		console:  console,
		log:      log.With(zap.String("handler", "ticket")),
	}
}

func (h *TicketHandler) SellTicket() {
	session, ok := h.selectSession("Select a session to sell a ticket for:")
	if !ok {
		return
	}

	// Pre-sale display: seats free of any ticket across all sessions.
	available := h.seats.GlobalSoldView()
	if len(available) > 0 {
		h.console.Printf("Available seats: %v\n", available)
	} else {
		h.console.Println("All seats are sold.")
	}

	seat, err := h.console.ReadInt("Enter the seat number:")
	if err != nil {
		h.console.Println("Invalid input.")
		return
	}

	ticket, err := h.seats.Sell(&request.SellTicketRequest{
		SessionID: session.ID,
		Seat:      seat,
	})
	if err != nil {
		h.console.Printf("Seat %d is unavailable: %v\n", seat, err)
		return
	}
	h.console.Printf("Ticket for seat %d sold.\n", ticket.Seat)
}

func (h *TicketHandler) ReturnTicket() {
	tickets := h.seats.ListTickets()
	if len(tickets) == 0 {
		h.console.Println("No sold tickets found.")
		return
	}

	h.console.Println("Sold tickets:")
	for i, ticket := range tickets {
		h.console.Printf("%d. %s (%s), seat %d\n", i, ticket.MovieTitle, ticket.StartTime, ticket.Seat)
	}

	index, err := h.console.ReadInt("Enter the ticket number to return:")
	if err != nil || index < 0 || index >= len(tickets) {
		h.console.Println("Invalid choice.")
		return
	}
	ticket := tickets[index]

	if err := h.seats.Return(&request.ReturnTicketRequest{TicketID: ticket.ID}); err != nil {
		h.console.Printf("Ticket for seat %d cannot be returned: %v\n", ticket.Seat, err)
		return
	}
	h.console.Printf("Ticket for seat %d returned.\n", ticket.Seat)
}

func (h *TicketHandler) ListTickets() {
	tickets := h.seats.ListTickets()
	if len(tickets) == 0 {
		h.console.Println("No sold tickets found.")
		return
	}

	h.console.Println("Sold tickets:")
	for i, ticket := range tickets {
		h.console.Printf("%d. %s (%s), seat %d\n", i, ticket.MovieTitle, ticket.StartTime, ticket.Seat)
	}
}

func (h *TicketHandler) SeatStatus() {
	session, ok := h.selectSession("Select a session to show seat status for:")
	if !ok {
		return
	}

	status, err := h.seats.SeatStatus(session.ID)
	if err != nil {
		h.console.Printf("Could not get seat status: %v\n", err)
		return
	}

	h.console.Printf("Available seats for %s (%s): %v\n", session.MovieTitle, session.StartTime, status.Available)
	h.console.Printf("Occupied seats for %s (%s): %v\n", session.MovieTitle, session.StartTime, status.Occupied)
}

func (h *TicketHandler) MarkSeatsOccupied() {
	session, ok := h.selectSession("Select a session to mark seats for:")
	if !ok {
		return
	}

	seats, err := h.console.ReadInts("Enter seat numbers separated by commas:")
	if err != nil {
		h.console.Println("Invalid input.")
		return
	}

	result, err := h.seats.MarkOccupied(&request.MarkSeatsRequest{
		SessionID: session.ID,
		Seats:     seats,
	})
	if err != nil {
		h.console.Printf("Could not mark seats: %v\n", err)
		return
	}

	for _, seat := range result.Marked {
		h.console.Printf("Seat %d marked occupied.\n", seat)
	}
	for _, seat := range result.AlreadyOccupied {
		h.console.Printf("Seat %d is already occupied.\n", seat)
	}
}

func (h *TicketHandler) selectSession(prompt string) (*response.SessionResponse, bool) {
	sessions := h.schedule.ListSessions()
	if len(sessions) == 0 {
		h.console.Println("No sessions found.")
		return nil, false
	}

	h.console.Println(prompt)
	for i, session := range sessions {
		h.console.Printf("%d. %s (%s)\n", i, session.MovieTitle, session.StartTime)
	}

	index, err := h.console.ReadInt("Enter the session number:")
	if err != nil || index < 0 || index >= len(sessions) {
		h.console.Println("Invalid choice.")
		return nil, false
	}
	return &sessions[index], true
}
