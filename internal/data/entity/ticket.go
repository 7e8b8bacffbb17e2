package entity

// Ticket represents one sold seat for a session. Seat numbers are 1-based.
type Ticket struct {
	Base
	Session *Session
	Seat    int
}

func NewTicket(session *Session, seat int) *Ticket {
	return &Ticket{
		Base:    NewBase(),
		Session: session,
		Seat:    seat,
	}
}
