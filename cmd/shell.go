package cmd

import (
	"errors"
	"io"

	"cinema-desk/internal/wire"

	"go.uber.org/zap"
)

// RunShell drives the interactive menu loop until the operator exits.
// Every mutating action persists immediately; exit saves once more.
func RunShell(app *wire.App, autoLoad bool, log *zap.Logger) {
	console := app.Console

	if autoLoad || console.Confirm("Load data from the CSV files? (yes/no)") {
		if err := app.Service.Store.LoadAll(); err != nil {
			console.Printf("Could not load data: %v\n", err)
			log.Error("Load failed", zap.Error(err))
		}
	}

	for {
		console.Println()
		console.Println("Menu:")
		console.Println(" 1. Add movie")
		console.Println(" 2. Remove movie")
		console.Println(" 3. List movies")
		console.Println(" 4. Add session")
		console.Println(" 5. Remove session")
		console.Println(" 6. List sessions")
		console.Println(" 7. Sell ticket")
		console.Println(" 8. Return ticket")
		console.Println(" 9. List sold tickets")
		console.Println("10. Seat status for a session")
		console.Println("11. Edit movie or session")
		console.Println("12. Mark seats occupied")
		console.Println(" 0. Exit")

		choice, err := console.ReadInt("")
		if err != nil {
			// Input ending is an exit, not a bad choice; a closed stdin
			// would otherwise reprompt forever.
			if errors.Is(err, io.EOF) {
				saveOnExit(app, log)
				return
			}
			console.Println("Invalid input.")
			continue
		}

		if choice == 0 {
			saveOnExit(app, log)
			console.Println("Thank you for using the application. Goodbye!")
			return
		}

		dispatch(app, choice, log)
	}
}

func saveOnExit(app *wire.App, log *zap.Logger) {
	if err := app.Service.Store.SaveAll(); err != nil {
		app.Console.Printf("Could not save data: %v\n", err)
		log.Error("Save on exit failed", zap.Error(err))
	}
}

// dispatch runs one menu action, recovering panics so a single bad action
// cannot take the whole shell down.
func dispatch(app *wire.App, choice int, log *zap.Logger) {
	defer func() {
		if r := recover(); r != nil {
			app.Console.Println("Something went wrong; the action was aborted.")
			log.Error("Menu action panicked",
				zap.Int("choice", choice),
				zap.Any("panic", r),
			)
		}
	}()

	log.Debug("Menu action selected", zap.Int("choice", choice))

	handler := app.Handler
	switch choice {
	case 1:
		handler.Movie.AddMovie()
	case 2:
		handler.Movie.RemoveMovie()
	case 3:
		handler.Movie.ListMovies()
	case 4:
		handler.Session.AddSession()
	case 5:
		handler.Session.RemoveSession()
	case 6:
		handler.Session.ListSessions()
	case 7:
		handler.Ticket.SellTicket()
	case 8:
		handler.Ticket.ReturnTicket()
	case 9:
		handler.Ticket.ListTickets()
	case 10:
		handler.Ticket.SeatStatus()
	case 11:
		editSubmenu(app)
	case 12:
		handler.Ticket.MarkSeatsOccupied()
	default:
		app.Console.Println("Invalid choice.")
	}
}

func editSubmenu(app *wire.App) {
	console := app.Console
	console.Println("Select what to edit:")
	console.Println("1. Movie")
	console.Println("2. Session")

	choice, err := console.ReadInt("")
	if err != nil {
		console.Println("Invalid input.")
		return
	}

	switch choice {
	case 1:
		app.Handler.Movie.EditMovie()
	case 2:
		app.Handler.Session.EditSession()
	default:
		console.Println("Invalid choice.")
	}
}
