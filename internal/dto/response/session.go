package response

import (
	"cinema-desk/internal/data/entity"
)

type SessionResponse struct {
	ID            string
	MovieTitle    string
	StartTime     string
	TotalSeats    int
	OccupiedSeats []int
	SoldSeats     []int
}

func SessionToResponse(session *entity.Session) SessionResponse {
	return SessionResponse{
		ID:            session.ID.String(),
		MovieTitle:    session.Movie.Title,
		StartTime:     session.FormattedStart(),
		TotalSeats:    session.TotalSeats,
		OccupiedSeats: session.OccupiedSeats(),
		SoldSeats:     session.SoldSeats(),
	}
}
