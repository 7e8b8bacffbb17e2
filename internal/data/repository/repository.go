package repository

import (
	"go.uber.org/zap"
)

type Repository struct {
	Movie   MovieRepository
	Session SessionRepository
	Ticket  TicketRepository
}

func NewRepository(log *zap.Logger) *Repository {
	return &Repository{
		Movie:   NewMovieRepository(log),
		Session: NewSessionRepository(log),
		Ticket:  NewTicketRepository(log),
	}
}
