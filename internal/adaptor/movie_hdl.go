package adaptor

import (
	"cinema-desk/internal/dto/request"
	"cinema-desk/internal/dto/response"
	"cinema-desk/internal/usecase"

	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.CatalogService
	console *Console
	log     *zap.Logger
}

func NewMovieHandler(service usecase.CatalogService, console *Console, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		console: console,
		log:     log.With(zap.String("handler", "movie")),
	}
}

func (h *MovieHandler) AddMovie() {
	title, err := h.console.ReadLine("Enter the movie title:")
	if err != nil {
		h.console.Println("Invalid input.")
		return
	}
	duration, err := h.console.ReadInt("Enter the movie duration (in minutes):")
	if err != nil {
		h.console.Println("Invalid input.")
		return
	}

	movie, err := h.service.AddMovie(&request.AddMovieRequest{
		Title:             title,
		DurationInMinutes: duration,
	})
	if err != nil {
		h.console.Printf("Could not add movie: %v\n", err)
		return
	}
	h.console.Printf("Movie %q added.\n", movie.Title)
}

func (h *MovieHandler) RemoveMovie() {
	movie, ok := h.SelectMovie("Select a movie to remove:")
	if !ok {
		return
	}

	if err := h.service.RemoveMovie(movie.ID); err != nil {
		h.console.Printf("Could not remove movie: %v\n", err)
		return
	}
	h.console.Printf("Movie %q removed along with its sessions and tickets.\n", movie.Title)
}

func (h *MovieHandler) ListMovies() {
	movies := h.service.ListMovies()
	if len(movies) == 0 {
		h.console.Println("No movies found.")
		return
	}

	h.console.Println("Movies:")
	for _, movie := range movies {
		h.console.Printf("%s (%d min)\n", movie.Title, movie.DurationInMinutes)
	}
}

func (h *MovieHandler) EditMovie() {
	movie, ok := h.SelectMovie("Select a movie to edit:")
	if !ok {
		return
	}

	title, err := h.console.ReadLine("Enter the new movie title:")
	if err != nil {
		h.console.Println("Invalid input.")
		return
	}
	duration, err := h.console.ReadInt("Enter the new movie duration (in minutes):")
	if err != nil {
		h.console.Println("Invalid input.")
		return
	}

	if _, err := h.service.EditMovie(movie.ID, &request.EditMovieRequest{
		Title:             title,
		DurationInMinutes: duration,
	}); err != nil {
		h.console.Printf("Could not edit movie: %v\n", err)
		return
	}
	h.console.Println("Movie updated.")
}

// SelectMovie lists the movies with indexes and reads a choice. Also used
// by the session handler when scheduling.
func (h *MovieHandler) SelectMovie(prompt string) (*response.MovieResponse, bool) {
	movies := h.service.ListMovies()
	if len(movies) == 0 {
		h.console.Println("No movies found.")
		return nil, false
	}

	h.console.Println(prompt)
	for i, movie := range movies {
		h.console.Printf("%d. %s\n", i, movie.Title)
	}

	index, err := h.console.ReadInt("Enter the movie number:")
	if err != nil || index < 0 || index >= len(movies) {
		h.console.Println("Invalid choice.")
		return nil, false
	}
	return &movies[index], true
}
