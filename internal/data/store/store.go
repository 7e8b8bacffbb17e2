// Package store persists the three collections to line-oriented CSV files
// and reconciles every save with whatever is already on disk.
//
// Save is a union merge, not an overwrite: the existing records for the
// collection are read back, the in-memory records are appended, and the
// result is deduplicated by the collection key (existing-first, so a disk
// record wins a key collision). Records removed or re-keyed during this run
// are tombstoned so the merge cannot resurrect them from a stale file.
//
// Load order is fixed by the reference chain: movies, then sessions
// (resolved against the loaded movies by title), then tickets (resolved
// against the loaded sessions by legacy session id). Unresolvable sessions
// and tickets are dropped. A missing file is an empty collection; a
// malformed line aborts loading that file.
package store

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"cinema-desk/internal/data/entity"

	"go.uber.org/zap"
)

const (
	moviesFile   = "movies.csv"
	sessionsFile = "sessions.csv"
	ticketsFile  = "sold-tickets.csv"
)

type Store struct {
	dir string
	// Seat capacity assigned to loaded sessions; the session file does not
	// carry one.
	sessionSeats int
	log          *zap.Logger

	// Keys deleted or re-keyed since the collection's last successful
	// save. Filtered out of the disk side of the merge, then cleared by
	// the rewrite.
	movieTombstones   map[string]struct{}
	sessionTombstones map[string]struct{}
	ticketTombstones  map[string]struct{}
}

func New(dir string, sessionSeats int, log *zap.Logger) *Store {
	return &Store{
		dir:               dir,
		sessionSeats:      sessionSeats,
		log:               log.With(zap.String("store", "csv")),
		movieTombstones:   make(map[string]struct{}),
		sessionTombstones: make(map[string]struct{}),
		ticketTombstones:  make(map[string]struct{}),
	}
}

// ==================== tombstones ====================

// TombstoneMovie marks a movie record as deleted. Call with the title the
// record was persisted under (the old title when a movie is renamed).
func (s *Store) TombstoneMovie(title string) {
	s.movieTombstones[movieRecord{Title: title}.key()] = struct{}{}
}

// TombstoneSession marks a session record as deleted. Call before mutating
// the session or its movie, while the persisted key is still derivable.
func (s *Store) TombstoneSession(session *entity.Session) {
	s.sessionTombstones[sessionToRecord(session).key()] = struct{}{}
}

// TombstoneTicket marks a ticket record as deleted. Call before mutating
// the ticket's session, while the persisted key is still derivable.
func (s *Store) TombstoneTicket(ticket *entity.Ticket) {
	s.ticketTombstones[ticketToRecord(ticket).key()] = struct{}{}
}

// ==================== save ====================

func (s *Store) SaveMovies(movies []*entity.Movie) error {
	existing, err := s.loadMovieRecords()
	if err != nil {
		return fmt.Errorf("save movies: %w", err)
	}

	current := make([]movieRecord, len(movies))
	for i, m := range movies {
		current[i] = movieToRecord(m)
	}

	merged := mergeRecords(existing, current, s.movieTombstones)
	if err := s.writeRows(moviesFile, recordRows(merged)); err != nil {
		return fmt.Errorf("save movies: %w", err)
	}
	// The rewrite no longer carries the tombstoned keys. Keeping them would
	// shadow disk records for a key that gets re-added later in the run.
	s.movieTombstones = make(map[string]struct{})

	s.log.Debug("Movies saved", zap.Int("records", len(merged)))
	return nil
}

func (s *Store) SaveSessions(sessions []*entity.Session) error {
	existing, err := s.loadSessionRecords()
	if err != nil {
		return fmt.Errorf("save sessions: %w", err)
	}

	current := make([]sessionRecord, len(sessions))
	for i, sess := range sessions {
		current[i] = sessionToRecord(sess)
	}

	merged := mergeRecords(existing, current, s.sessionTombstones)
	if err := s.writeRows(sessionsFile, recordRows(merged)); err != nil {
		return fmt.Errorf("save sessions: %w", err)
	}
	s.sessionTombstones = make(map[string]struct{})

	s.log.Debug("Sessions saved", zap.Int("records", len(merged)))
	return nil
}

func (s *Store) SaveTickets(tickets []*entity.Ticket) error {
	existing, err := s.loadTicketRecords()
	if err != nil {
		return fmt.Errorf("save tickets: %w", err)
	}

	current := make([]ticketRecord, len(tickets))
	for i, t := range tickets {
		current[i] = ticketToRecord(t)
	}

	merged := mergeRecords(existing, current, s.ticketTombstones)
	if err := s.writeRows(ticketsFile, recordRows(merged)); err != nil {
		return fmt.Errorf("save tickets: %w", err)
	}
	s.ticketTombstones = make(map[string]struct{})

	s.log.Debug("Tickets saved", zap.Int("records", len(merged)))
	return nil
}

func (s *Store) SaveAll(movies []*entity.Movie, sessions []*entity.Session, tickets []*entity.Ticket) error {
	if err := s.SaveMovies(movies); err != nil {
		return err
	}
	if err := s.SaveSessions(sessions); err != nil {
		return err
	}
	return s.SaveTickets(tickets)
}

// ==================== load ====================

func (s *Store) LoadMovies() ([]*entity.Movie, error) {
	records, err := s.loadMovieRecords()
	if err != nil {
		return nil, fmt.Errorf("load movies: %w", err)
	}

	movies := make([]*entity.Movie, len(records))
	for i, rec := range records {
		movies[i] = entity.NewMovie(rec.Title, rec.Duration)
	}

	s.log.Info("Movies loaded", zap.Int("count", len(movies)))
	return movies, nil
}

// LoadSessions resolves each session record against the given movies by
// title. Records whose movie is missing are dropped.
func (s *Store) LoadSessions(movies []*entity.Movie) ([]*entity.Session, error) {
	records, err := s.loadSessionRecords()
	if err != nil {
		return nil, fmt.Errorf("load sessions: %w", err)
	}

	byTitle := make(map[string]*entity.Movie, len(movies))
	for _, m := range movies {
		byTitle[m.Title] = m
	}

	var sessions []*entity.Session
	for _, rec := range records {
		movie, ok := byTitle[rec.MovieTitle]
		if !ok {
			s.log.Warn("Dropping session with unknown movie",
				zap.String("title", rec.MovieTitle),
				zap.String("start", rec.StartTime),
			)
			continue
		}
		sessions = append(sessions, entity.NewSession(movie, rec.Start, s.sessionSeats))
	}

	s.log.Info("Sessions loaded",
		zap.Int("count", len(sessions)),
		zap.Int("dropped", len(records)-len(sessions)),
	)
	return sessions, nil
}

// LoadTickets resolves each ticket record against the given sessions by
// legacy session id, dropping the unresolvable ones, and marks each loaded
// ticket's seat sold on its session so the one-ticket-per-seat rule holds
// across restarts.
func (s *Store) LoadTickets(sessions []*entity.Session) ([]*entity.Ticket, error) {
	records, err := s.loadTicketRecords()
	if err != nil {
		return nil, fmt.Errorf("load tickets: %w", err)
	}

	byStorageID := make(map[int32]*entity.Session, len(sessions))
	for _, sess := range sessions {
		byStorageID[sess.StorageID()] = sess
	}

	var tickets []*entity.Ticket
	for _, rec := range records {
		session, ok := byStorageID[rec.SessionID]
		if !ok {
			s.log.Warn("Dropping ticket with unknown session",
				zap.Int32("session_id", rec.SessionID),
				zap.Int("seat", rec.Seat),
			)
			continue
		}
		tickets = append(tickets, entity.NewTicket(session, rec.Seat))
		session.MarkSeatSold(rec.Seat)
	}

	s.log.Info("Tickets loaded",
		zap.Int("count", len(tickets)),
		zap.Int("dropped", len(records)-len(tickets)),
	)
	return tickets, nil
}

// LoadAll loads the three collections in dependency order.
func (s *Store) LoadAll() ([]*entity.Movie, []*entity.Session, []*entity.Ticket, error) {
	movies, err := s.LoadMovies()
	if err != nil {
		return nil, nil, nil, err
	}
	sessions, err := s.LoadSessions(movies)
	if err != nil {
		return nil, nil, nil, err
	}
	tickets, err := s.LoadTickets(sessions)
	if err != nil {
		return nil, nil, nil, err
	}
	return movies, sessions, tickets, nil
}

// ==================== record I/O ====================

func (s *Store) loadMovieRecords() ([]movieRecord, error) {
	rows, err := s.readRows(moviesFile)
	if err != nil {
		return nil, err
	}

	records := make([]movieRecord, len(rows))
	for i, row := range rows {
		duration, err := strconv.Atoi(row[1])
		if err != nil {
			return nil, &ParseError{File: moviesFile, Line: i + 1, Err: fmt.Errorf("duration %q: %w", row[1], err)}
		}
		records[i] = movieRecord{Title: row[0], Duration: duration}
	}
	return records, nil
}

func (s *Store) loadSessionRecords() ([]sessionRecord, error) {
	rows, err := s.readRows(sessionsFile)
	if err != nil {
		return nil, err
	}

	records := make([]sessionRecord, len(rows))
	for i, row := range rows {
		start, err := time.ParseInLocation(entity.StartTimeLayout, row[1], time.Local)
		if err != nil {
			return nil, &ParseError{File: sessionsFile, Line: i + 1, Err: fmt.Errorf("start time %q: %w", row[1], err)}
		}
		records[i] = sessionRecord{MovieTitle: row[0], StartTime: row[1], Start: start}
	}
	return records, nil
}

func (s *Store) loadTicketRecords() ([]ticketRecord, error) {
	rows, err := s.readRows(ticketsFile)
	if err != nil {
		return nil, err
	}

	records := make([]ticketRecord, len(rows))
	for i, row := range rows {
		sessionID, err := strconv.ParseInt(row[0], 10, 32)
		if err != nil {
			return nil, &ParseError{File: ticketsFile, Line: i + 1, Err: fmt.Errorf("session id %q: %w", row[0], err)}
		}
		seat, err := strconv.Atoi(row[1])
		if err != nil {
			return nil, &ParseError{File: ticketsFile, Line: i + 1, Err: fmt.Errorf("seat %q: %w", row[1], err)}
		}
		records[i] = ticketRecord{SessionID: int32(sessionID), Seat: seat}
	}
	return records, nil
}

func (s *Store) readRows(file string) ([][]string, error) {
	f, err := os.Open(filepath.Join(s.dir, file))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrStorageUnavailable, file, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = 2

	rows, err := reader.ReadAll()
	if err != nil {
		var csvErr *csv.ParseError
		if errors.As(err, &csvErr) {
			return nil, &ParseError{File: file, Line: csvErr.Line, Err: csvErr.Err}
		}
		return nil, fmt.Errorf("%w: read %s: %v", ErrStorageUnavailable, file, err)
	}
	return rows, nil
}

// writeRows rewrites the whole file. There is no durability guarantee
// beyond "last completed write wins".
func (s *Store) writeRows(file string, rows [][]string) error {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("%w: encode %s: %v", ErrStorageUnavailable, file, err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("%w: create %s: %v", ErrStorageUnavailable, s.dir, err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, file), buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrStorageUnavailable, file, err)
	}
	return nil
}
