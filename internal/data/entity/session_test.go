package entity

import (
	"reflect"
	"testing"
	"time"
)

func TestStorageHash(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want int32
	}{
		{"Inception", 302508925},
		{"The Matrix", -2055809392},
		{"", 0},
	}
	for _, tt := range tests {
		if got := storageHash(tt.in); got != tt.want {
			t.Errorf("storageHash(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestSessionStorageID(t *testing.T) {
	t.Parallel()

	movie := NewMovie("Inception", 148)
	start := time.Date(2030, time.January, 1, 20, 0, 0, 0, time.UTC)
	session := NewSession(movie, start, 10)

	if got := session.FormattedStart(); got != "01-01-2030-20-00" {
		t.Fatalf("FormattedStart() = %q", got)
	}
	// hash of "01-01-2030-20-00-302508925"
	if got := session.StorageID(); got != 1706865476 {
		t.Errorf("StorageID() = %d, want 1706865476", got)
	}
}

// The per-seat state machine: markOccupied and markSold set their flag
// independently, markVacant resets both.
func TestSeatStateMachine(t *testing.T) {
	t.Parallel()

	movie := NewMovie("Inception", 148)
	session := NewSession(movie, time.Now(), 10)

	if session.IsSeatOccupied(3) || session.IsSeatSold(3) {
		t.Fatal("new session should start with every seat vacant")
	}

	// Vacant -> OccupiedOnly
	session.MarkSeatOccupied(3)
	if !session.IsSeatOccupied(3) || session.IsSeatSold(3) {
		t.Fatal("occupying a seat must not mark it sold")
	}

	// OccupiedOnly -> OccupiedAndSold
	session.MarkSeatSold(3)
	if !session.IsSeatOccupied(3) || !session.IsSeatSold(3) {
		t.Fatal("selling an occupied seat should keep the occupied flag")
	}

	// OccupiedAndSold -> Vacant (vacating clears both flags)
	session.MarkSeatVacant(3)
	if session.IsSeatOccupied(3) || session.IsSeatSold(3) {
		t.Fatal("vacating a seat must clear both flags")
	}

	// Vacant -> SoldOnly
	session.MarkSeatSold(5)
	if session.IsSeatOccupied(5) || !session.IsSeatSold(5) {
		t.Fatal("selling a vacant seat must not occupy it")
	}
}

func TestSeatListsSorted(t *testing.T) {
	t.Parallel()

	movie := NewMovie("Inception", 148)
	session := NewSession(movie, time.Now(), 10)

	for _, seat := range []int{7, 2, 9} {
		session.MarkSeatOccupied(seat)
	}
	session.MarkSeatSold(4)
	session.MarkSeatSold(1)

	if got := session.OccupiedSeats(); !reflect.DeepEqual(got, []int{2, 7, 9}) {
		t.Errorf("OccupiedSeats() = %v", got)
	}
	if got := session.SoldSeats(); !reflect.DeepEqual(got, []int{1, 4}) {
		t.Errorf("SoldSeats() = %v", got)
	}

	session.ResetSeats()
	if len(session.OccupiedSeats()) != 0 || len(session.SoldSeats()) != 0 {
		t.Error("ResetSeats() should drop all seat state")
	}
}
