package entity

import (
	"fmt"
	"sort"
	"time"
)

// StartTimeLayout is the minute-precision timestamp format shared by the
// data files and every prompt (dd-MM-yyyy-HH-mm).
const StartTimeLayout = "02-01-2006-15-04"

// Session is one scheduled screening of a movie. It tracks two independent
// flags per seat: occupied (administrative block) and sold (active ticket).
// The flags are deliberately not coupled; selling a seat does not occupy it
// and occupying a seat does not sell it.
type Session struct {
	Base
	Movie      *Movie
	StartTime  time.Time
	TotalSeats int

	occupiedSeats map[int]struct{}
	soldSeats     map[int]struct{}
}

func NewSession(movie *Movie, startTime time.Time, totalSeats int) *Session {
	return &Session{
		Base:          NewBase(),
		Movie:         movie,
		StartTime:     startTime,
		TotalSeats:    totalSeats,
		occupiedSeats: make(map[int]struct{}),
		soldSeats:     make(map[int]struct{}),
	}
}

func (s *Session) FormattedStart() string {
	return s.StartTime.Format(StartTimeLayout)
}

// StorageID derives the legacy integer id the ticket file keys records by:
// the rolling hash of "<formatted start>-<movie storage id>".
func (s *Session) StorageID() int32 {
	return storageHash(fmt.Sprintf("%s-%d", s.FormattedStart(), s.Movie.StorageID()))
}

func (s *Session) IsSeatOccupied(seat int) bool {
	_, ok := s.occupiedSeats[seat]
	return ok
}

func (s *Session) MarkSeatOccupied(seat int) {
	s.occupiedSeats[seat] = struct{}{}
}

func (s *Session) IsSeatSold(seat int) bool {
	_, ok := s.soldSeats[seat]
	return ok
}

func (s *Session) MarkSeatSold(seat int) {
	s.soldSeats[seat] = struct{}{}
}

// MarkSeatVacant clears both flags: returning a sold seat also lifts any
// administrative block on it.
func (s *Session) MarkSeatVacant(seat int) {
	delete(s.occupiedSeats, seat)
	delete(s.soldSeats, seat)
}

// ResetSeats drops all seat state. Used when a session is rescheduled.
func (s *Session) ResetSeats() {
	s.occupiedSeats = make(map[int]struct{})
	s.soldSeats = make(map[int]struct{})
}

func (s *Session) OccupiedSeats() []int {
	return sortedSeats(s.occupiedSeats)
}

func (s *Session) SoldSeats() []int {
	return sortedSeats(s.soldSeats)
}

func sortedSeats(set map[int]struct{}) []int {
	seats := make([]int, 0, len(set))
	for seat := range set {
		seats = append(seats, seat)
	}
	sort.Ints(seats)
	return seats
}
