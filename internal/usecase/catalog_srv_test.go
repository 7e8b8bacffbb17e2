package usecase

import (
	"errors"
	"testing"

	"cinema-desk/internal/data/repository"
	"cinema-desk/internal/data/store"
	"cinema-desk/internal/dto/request"

	"go.uber.org/zap"
)

func TestAddMovieRejectsDuplicateTitle(t *testing.T) {
	t.Parallel()
	service, _ := newTestService(t)

	addMovie(t, service, "Inception", 148)

	_, err := service.Catalog.AddMovie(&request.AddMovieRequest{
		Title:             "Inception",
		DurationInMinutes: 90,
	})
	if !errors.Is(err, repository.ErrDuplicateTitle) {
		t.Fatalf("want ErrDuplicateTitle, got %v", err)
	}
	if len(service.Catalog.ListMovies()) != 1 {
		t.Fatal("duplicate must not be added")
	}
}

func TestAddMovieValidation(t *testing.T) {
	t.Parallel()
	service, _ := newTestService(t)

	if _, err := service.Catalog.AddMovie(&request.AddMovieRequest{Title: "", DurationInMinutes: 148}); err == nil {
		t.Error("empty title should fail validation")
	}
	if _, err := service.Catalog.AddMovie(&request.AddMovieRequest{Title: "Inception", DurationInMinutes: 0}); err == nil {
		t.Error("zero duration should fail validation")
	}
	if len(service.Catalog.ListMovies()) != 0 {
		t.Fatal("nothing should be added")
	}
}

// Removing a movie takes its sessions and their tickets with it, in memory
// and in the data files.
func TestRemoveMovieCascades(t *testing.T) {
	t.Parallel()
	service, dir := newTestService(t)

	movie := addMovie(t, service, "Inception", 148)
	keep := addMovie(t, service, "The Matrix", 136)
	session := addSession(t, service, movie.ID, futureStart)
	keepSession := addSession(t, service, keep.ID, futureStart)
	sellSeat(t, service, session.ID, 5)
	kept := sellSeat(t, service, keepSession.ID, 3)

	if err := service.Catalog.RemoveMovie(movie.ID); err != nil {
		t.Fatalf("RemoveMovie() error: %v", err)
	}

	if movies := service.Catalog.ListMovies(); len(movies) != 1 || movies[0].Title != "The Matrix" {
		t.Fatalf("movies = %+v", movies)
	}
	if sessions := service.Schedule.ListSessions(); len(sessions) != 1 || sessions[0].ID != keepSession.ID {
		t.Fatalf("sessions = %+v", sessions)
	}
	if tickets := service.Seat.ListTickets(); len(tickets) != 1 || tickets[0].ID != kept.ID {
		t.Fatalf("tickets = %+v", tickets)
	}

	// A fresh run over the same files must see the same closure.
	movies, sessions, tickets, err := store.New(dir, 10, zap.NewNop()).LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() error: %v", err)
	}
	if len(movies) != 1 || movies[0].Title != "The Matrix" {
		t.Errorf("reloaded movies = %+v", movies)
	}
	if len(sessions) != 1 || sessions[0].Movie.Title != "The Matrix" {
		t.Errorf("reloaded sessions = %+v", sessions)
	}
	if len(tickets) != 1 || tickets[0].Seat != 3 {
		t.Errorf("reloaded tickets = %+v", tickets)
	}
}

func TestEditMovieKeepsIdentity(t *testing.T) {
	t.Parallel()
	service, dir := newTestService(t)

	movie := addMovie(t, service, "Inception", 100)

	edited, err := service.Catalog.EditMovie(movie.ID, &request.EditMovieRequest{
		Title:             "Inception",
		DurationInMinutes: 148,
	})
	if err != nil {
		t.Fatalf("EditMovie() error: %v", err)
	}
	if edited.ID != movie.ID {
		t.Errorf("id changed: %s -> %s", movie.ID, edited.ID)
	}
	if edited.DurationInMinutes != 148 {
		t.Errorf("duration = %d", edited.DurationInMinutes)
	}

	// The edit must win over the stale record already on disk.
	movies, _, _, err := store.New(dir, 10, zap.NewNop()).LoadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(movies) != 1 || movies[0].DurationInMinutes != 148 {
		t.Errorf("reloaded movies = %+v", movies)
	}
}

// A rename re-keys the persisted session and ticket records, which embed
// the movie title.
func TestEditMovieRenameRekeysDependents(t *testing.T) {
	t.Parallel()
	service, dir := newTestService(t)

	movie := addMovie(t, service, "Inceptoin", 148)
	session := addSession(t, service, movie.ID, futureStart)
	sellSeat(t, service, session.ID, 5)

	if _, err := service.Catalog.EditMovie(movie.ID, &request.EditMovieRequest{
		Title:             "Inception",
		DurationInMinutes: 148,
	}); err != nil {
		t.Fatalf("EditMovie() error: %v", err)
	}

	movies, sessions, tickets, err := store.New(dir, 10, zap.NewNop()).LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() error: %v", err)
	}
	if len(movies) != 1 || movies[0].Title != "Inception" {
		t.Fatalf("reloaded movies = %+v", movies)
	}
	if len(sessions) != 1 || sessions[0].Movie.Title != "Inception" {
		t.Fatalf("reloaded sessions = %+v", sessions)
	}
	if len(tickets) != 1 || tickets[0].Session != sessions[0] {
		t.Fatalf("reloaded tickets = %+v", tickets)
	}
}

func TestEditMovieRejectsTitleCollision(t *testing.T) {
	t.Parallel()
	service, _ := newTestService(t)

	addMovie(t, service, "Inception", 148)
	other := addMovie(t, service, "The Matrix", 136)

	_, err := service.Catalog.EditMovie(other.ID, &request.EditMovieRequest{
		Title:             "Inception",
		DurationInMinutes: 136,
	})
	if !errors.Is(err, repository.ErrDuplicateTitle) {
		t.Fatalf("want ErrDuplicateTitle, got %v", err)
	}
}

func TestRemoveMovieUnknownID(t *testing.T) {
	t.Parallel()
	service, _ := newTestService(t)

	err := service.Catalog.RemoveMovie("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
