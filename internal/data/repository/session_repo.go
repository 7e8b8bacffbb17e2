package repository

import (
	"fmt"

	"cinema-desk/internal/data/entity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SessionRepository interface {
	Insert(session *entity.Session) error
	FindByID(id uuid.UUID) (*entity.Session, error)
	FindByMovie(movieID uuid.UUID) []*entity.Session
	Remove(id uuid.UUID) error
	// RemoveByMovie removes every session referencing the movie and returns
	// the removed sessions so the caller can cascade further.
	RemoveByMovie(movieID uuid.UUID) []*entity.Session
	All() []*entity.Session
	ReplaceAll(sessions []*entity.Session)
}

type sessionRepository struct {
	sessions []*entity.Session
	log      *zap.Logger
}

func NewSessionRepository(log *zap.Logger) SessionRepository {
	return &sessionRepository{
		log: log.With(zap.String("repository", "session")),
	}
}

func (r *sessionRepository) Insert(session *entity.Session) error {
	for _, s := range r.sessions {
		if s.Movie.ID == session.Movie.ID && s.StartTime.Equal(session.StartTime) {
			return fmt.Errorf("session %q at %s: %w",
				session.Movie.Title, session.FormattedStart(), ErrDuplicateSession)
		}
	}
	r.sessions = append(r.sessions, session)

	r.log.Debug("Session inserted",
		zap.String("session_id", session.ID.String()),
		zap.String("title", session.Movie.Title),
		zap.String("start", session.FormattedStart()),
	)
	return nil
}

func (r *sessionRepository) FindByID(id uuid.UUID) (*entity.Session, error) {
	for _, s := range r.sessions {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, fmt.Errorf("session %s: %w", id, ErrNotFound)
}

func (r *sessionRepository) FindByMovie(movieID uuid.UUID) []*entity.Session {
	var found []*entity.Session
	for _, s := range r.sessions {
		if s.Movie.ID == movieID {
			found = append(found, s)
		}
	}
	return found
}

func (r *sessionRepository) Remove(id uuid.UUID) error {
	for i, s := range r.sessions {
		if s.ID == id {
			r.sessions = append(r.sessions[:i], r.sessions[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("session %s: %w", id, ErrNotFound)
}

func (r *sessionRepository) RemoveByMovie(movieID uuid.UUID) []*entity.Session {
	var removed, kept []*entity.Session
	for _, s := range r.sessions {
		if s.Movie.ID == movieID {
			removed = append(removed, s)
		} else {
			kept = append(kept, s)
		}
	}
	r.sessions = kept

	if len(removed) > 0 {
		r.log.Debug("Sessions removed by movie",
			zap.String("movie_id", movieID.String()),
			zap.Int("count", len(removed)),
		)
	}
	return removed
}

func (r *sessionRepository) All() []*entity.Session {
	return r.sessions
}

func (r *sessionRepository) ReplaceAll(sessions []*entity.Session) {
	r.sessions = sessions
	r.log.Debug("Session collection replaced", zap.Int("count", len(sessions)))
}
