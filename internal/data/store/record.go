package store

import (
	"fmt"
	"strconv"
	"time"

	"cinema-desk/internal/data/entity"
)

// Raw record types mirror the file layout one-to-one. Save merges at the
// record level, so a record never needs its references resolved just to be
// carried through a rewrite.

type record interface {
	key() string
	fields() []string
}

type movieRecord struct {
	Title    string
	Duration int
}

func (r movieRecord) key() string { return r.Title }

func (r movieRecord) fields() []string {
	return []string{r.Title, strconv.Itoa(r.Duration)}
}

// sessionRecord keys and persists by the raw StartTime string exactly as it
// appeared on disk; Start is the parsed form so load never parses twice.
type sessionRecord struct {
	MovieTitle string
	StartTime  string
	Start      time.Time
}

func (r sessionRecord) key() string { return r.MovieTitle + "," + r.StartTime }

func (r sessionRecord) fields() []string {
	return []string{r.MovieTitle, r.StartTime}
}

type ticketRecord struct {
	SessionID int32
	Seat      int
}

func (r ticketRecord) key() string { return fmt.Sprintf("%d,%d", r.SessionID, r.Seat) }

func (r ticketRecord) fields() []string {
	return []string{strconv.FormatInt(int64(r.SessionID), 10), strconv.Itoa(r.Seat)}
}

func movieToRecord(m *entity.Movie) movieRecord {
	return movieRecord{Title: m.Title, Duration: m.DurationInMinutes}
}

func sessionToRecord(s *entity.Session) sessionRecord {
	return sessionRecord{MovieTitle: s.Movie.Title, StartTime: s.FormattedStart(), Start: s.StartTime}
}

func ticketToRecord(t *entity.Ticket) ticketRecord {
	return ticketRecord{SessionID: t.Session.StorageID(), Seat: t.Seat}
}

func recordRows[R record](records []R) [][]string {
	rows := make([][]string, len(records))
	for i, rec := range records {
		rows[i] = rec.fields()
	}
	return rows
}

// mergeRecords implements the union merge: existing disk records come
// first, minus any key tombstoned during this run, then the in-memory
// records. Deduplication keeps the first occurrence, so an untouched disk
// record wins over an in-memory one with the same key.
func mergeRecords[R record](existing, current []R, tombstones map[string]struct{}) []R {
	merged := make([]R, 0, len(existing)+len(current))
	seen := make(map[string]struct{}, len(existing)+len(current))

	for _, rec := range existing {
		if _, dead := tombstones[rec.key()]; dead {
			continue
		}
		if _, dup := seen[rec.key()]; dup {
			continue
		}
		seen[rec.key()] = struct{}{}
		merged = append(merged, rec)
	}
	for _, rec := range current {
		if _, dup := seen[rec.key()]; dup {
			continue
		}
		seen[rec.key()] = struct{}{}
		merged = append(merged, rec)
	}
	return merged
}
