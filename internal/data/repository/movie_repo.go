package repository

import (
	"fmt"

	"cinema-desk/internal/data/entity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MovieRepository interface {
	Insert(movie *entity.Movie) error
	FindByID(id uuid.UUID) (*entity.Movie, error)
	FindByTitle(title string) (*entity.Movie, error)
	Remove(id uuid.UUID) error
	All() []*entity.Movie
	ReplaceAll(movies []*entity.Movie)
}

type movieRepository struct {
	movies []*entity.Movie
	log    *zap.Logger
}

func NewMovieRepository(log *zap.Logger) MovieRepository {
	return &movieRepository{
		log: log.With(zap.String("repository", "movie")),
	}
}

func (r *movieRepository) Insert(movie *entity.Movie) error {
	for _, m := range r.movies {
		if m.Title == movie.Title {
			return fmt.Errorf("movie %q: %w", movie.Title, ErrDuplicateTitle)
		}
	}
	r.movies = append(r.movies, movie)

	r.log.Debug("Movie inserted",
		zap.String("movie_id", movie.ID.String()),
		zap.String("title", movie.Title),
	)
	return nil
}

func (r *movieRepository) FindByID(id uuid.UUID) (*entity.Movie, error) {
	for _, m := range r.movies {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, fmt.Errorf("movie %s: %w", id, ErrNotFound)
}

func (r *movieRepository) FindByTitle(title string) (*entity.Movie, error) {
	for _, m := range r.movies {
		if m.Title == title {
			return m, nil
		}
	}
	return nil, fmt.Errorf("movie %q: %w", title, ErrNotFound)
}

func (r *movieRepository) Remove(id uuid.UUID) error {
	for i, m := range r.movies {
		if m.ID == id {
			r.movies = append(r.movies[:i], r.movies[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("movie %s: %w", id, ErrNotFound)
}

// All returns the collection in insertion order. Callers must not mutate
// the returned slice.
func (r *movieRepository) All() []*entity.Movie {
	return r.movies
}

func (r *movieRepository) ReplaceAll(movies []*entity.Movie) {
	r.movies = movies
	r.log.Debug("Movie collection replaced", zap.Int("count", len(movies)))
}
