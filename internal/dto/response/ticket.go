package response

import (
	"cinema-desk/internal/data/entity"
)

type TicketResponse struct {
	ID         string
	MovieTitle string
	StartTime  string
	Seat       int
}

func TicketToResponse(ticket *entity.Ticket) TicketResponse {
	return TicketResponse{
		ID:         ticket.ID.String(),
		MovieTitle: ticket.Session.Movie.Title,
		StartTime:  ticket.Session.FormattedStart(),
		Seat:       ticket.Seat,
	}
}
