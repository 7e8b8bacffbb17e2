package adaptor

import (
	"cinema-desk/internal/data/entity"
	"cinema-desk/internal/dto/request"
	"cinema-desk/internal/dto/response"
	"cinema-desk/internal/usecase"

	"go.uber.org/zap"
)

type SessionHandler struct {
	service usecase.ScheduleService
	catalog usecase.CatalogService
	console *Console
	log     *zap.Logger
}

func NewSessionHandler(service usecase.ScheduleService, catalog usecase.CatalogService, console *Console, log *zap.Logger) *SessionHandler {
	return &SessionHandler{
		service: service,
		catalog: catalog,
		console: console,
		log:     log.With(zap.String("handler", "session")),
	}
}

func (h *SessionHandler) AddSession() {
	movies := h.catalog.ListMovies()
	if len(movies) == 0 {
		h.console.Println("No movies found.")
		return
	}

	h.console.Println("Select a movie for the session:")
	for i, movie := range movies {
		h.console.Printf("%d. %s\n", i, movie.Title)
	}
	index, err := h.console.ReadInt("Enter the movie number:")
	if err != nil || index < 0 || index >= len(movies) {
		h.console.Println("Invalid choice.")
		return
	}
	movie := movies[index]

	start, err := h.console.ReadLine("Enter the session start time (" + entity.StartTimeLayout + "):")
	if err != nil {
		h.console.Println("Invalid input.")
		return
	}

	if _, err := h.service.AddSession(&request.AddSessionRequest{
		MovieID:   movie.ID,
		StartTime: start,
	}); err != nil {
		h.console.Printf("Could not add session: %v\n", err)
		return
	}
	h.console.Printf("Session for %q added.\n", movie.Title)
}

func (h *SessionHandler) RemoveSession() {
	session, ok := h.SelectSession("Select a session to remove:")
	if !ok {
		return
	}

	if err := h.service.RemoveSession(session.ID); err != nil {
		h.console.Printf("Could not remove session: %v\n", err)
		return
	}
	h.console.Printf("Session for %q (%s) removed along with its tickets.\n",
		session.MovieTitle, session.StartTime)
}

func (h *SessionHandler) ListSessions() {
	sessions := h.service.ListSessions()
	if len(sessions) == 0 {
		h.console.Println("No sessions found.")
		return
	}

	h.console.Println("Sessions:")
	for _, session := range sessions {
		h.console.Printf("%s (%s)\n", session.MovieTitle, session.StartTime)
	}
}

func (h *SessionHandler) EditSession() {
	session, ok := h.SelectSession("Select a session to edit:")
	if !ok {
		return
	}

	start, err := h.console.ReadLine("Enter the new start time (" + entity.StartTimeLayout + "):")
	if err != nil {
		h.console.Println("Invalid input.")
		return
	}

	if _, err := h.service.EditSession(session.ID, &request.EditSessionRequest{
		StartTime: start,
	}); err != nil {
		h.console.Printf("Could not edit session: %v\n", err)
		return
	}
	h.console.Println("Session updated. Existing tickets were invalidated.")
}

// SelectSession lists the sessions with indexes and reads a choice. Also
// used by the ticket handler.
func (h *SessionHandler) SelectSession(prompt string) (*response.SessionResponse, bool) {
	sessions := h.service.ListSessions()
	if len(sessions) == 0 {
		h.console.Println("No sessions found.")
		return nil, false
	}

	h.console.Println(prompt)
	for i, session := range sessions {
		h.console.Printf("%d. %s (%s)\n", i, session.MovieTitle, session.StartTime)
	}

	index, err := h.console.ReadInt("Enter the session number:")
	if err != nil || index < 0 || index >= len(sessions) {
		h.console.Println("Invalid choice.")
		return nil, false
	}
	return &sessions[index], true
}
