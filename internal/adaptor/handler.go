package adaptor

import (
	"cinema-desk/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Movie   *MovieHandler
	Session *SessionHandler
	Ticket  *TicketHandler
}

func NewHandler(service *usecase.Service, console *Console, log *zap.Logger) *Handler {
	return &Handler{
		Movie:   NewMovieHandler(service.Catalog, console, log),
		Session: NewSessionHandler(service.Schedule, service.Catalog, console, log),
		Ticket:  NewTicketHandler(service.Seat, service.Schedule, console, log),
	}
}
