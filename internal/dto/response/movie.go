package response

import (
	"cinema-desk/internal/data/entity"
)

type MovieResponse struct {
	ID                string
	Title             string
	DurationInMinutes int
}

func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:                movie.ID.String(),
		Title:             movie.Title,
		DurationInMinutes: movie.DurationInMinutes,
	}
}
