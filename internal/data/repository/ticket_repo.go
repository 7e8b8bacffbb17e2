package repository

import (
	"fmt"

	"cinema-desk/internal/data/entity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TicketRepository interface {
	Insert(ticket *entity.Ticket)
	FindByID(id uuid.UUID) (*entity.Ticket, error)
	FindBySession(sessionID uuid.UUID) []*entity.Ticket
	Remove(id uuid.UUID) error
	// RemoveBySession removes every ticket for the session and returns the
	// removed tickets so the caller can cascade further.
	RemoveBySession(sessionID uuid.UUID) []*entity.Ticket
	All() []*entity.Ticket
	ReplaceAll(tickets []*entity.Ticket)
}

type ticketRepository struct {
	tickets []*entity.Ticket
	log     *zap.Logger
}

func NewTicketRepository(log *zap.Logger) TicketRepository {
	return &ticketRepository{
		log: log.With(zap.String("repository", "ticket")),
	}
}

// Insert has no uniqueness check of its own; the one-ticket-per-seat rule
// is enforced by the seat ledger before a ticket is created.
func (r *ticketRepository) Insert(ticket *entity.Ticket) {
	r.tickets = append(r.tickets, ticket)

	r.log.Debug("Ticket inserted",
		zap.String("ticket_id", ticket.ID.String()),
		zap.Int("seat", ticket.Seat),
	)
}

func (r *ticketRepository) FindByID(id uuid.UUID) (*entity.Ticket, error) {
	for _, t := range r.tickets {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, fmt.Errorf("ticket %s: %w", id, ErrNotFound)
}

func (r *ticketRepository) FindBySession(sessionID uuid.UUID) []*entity.Ticket {
	var found []*entity.Ticket
	for _, t := range r.tickets {
		if t.Session.ID == sessionID {
			found = append(found, t)
		}
	}
	return found
}

func (r *ticketRepository) Remove(id uuid.UUID) error {
	for i, t := range r.tickets {
		if t.ID == id {
			r.tickets = append(r.tickets[:i], r.tickets[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("ticket %s: %w", id, ErrNotFound)
}

func (r *ticketRepository) RemoveBySession(sessionID uuid.UUID) []*entity.Ticket {
	var removed, kept []*entity.Ticket
	for _, t := range r.tickets {
		if t.Session.ID == sessionID {
			removed = append(removed, t)
		} else {
			kept = append(kept, t)
		}
	}
	r.tickets = kept

	if len(removed) > 0 {
		r.log.Debug("Tickets removed by session",
			zap.String("session_id", sessionID.String()),
			zap.Int("count", len(removed)),
		)
	}
	return removed
}

func (r *ticketRepository) All() []*entity.Ticket {
	return r.tickets
}

func (r *ticketRepository) ReplaceAll(tickets []*entity.Ticket) {
	r.tickets = tickets
	r.log.Debug("Ticket collection replaced", zap.Int("count", len(tickets)))
}
