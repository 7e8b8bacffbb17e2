package wire

import (
	"io"

	"cinema-desk/internal/adaptor"
	"cinema-desk/internal/data/repository"
	"cinema-desk/internal/data/store"
	"cinema-desk/internal/usecase"
	"cinema-desk/pkg/utils"

	"go.uber.org/zap"
)

// App holds the wired application surface the shell runs against.
type App struct {
	Handler *adaptor.Handler
	Service *usecase.Service
	Console *adaptor.Console
}

// Wiring initializes all dependencies.
func Wiring(repo *repository.Repository, st *store.Store, config *utils.Config, logger *zap.Logger, in io.Reader, out io.Writer) *App {
	service := usecase.NewService(repo, st, config, logger)
	console := adaptor.NewConsole(in, out)
	handler := adaptor.NewHandler(service, console, logger)

	return &App{
		Handler: handler,
		Service: service,
		Console: console,
	}
}
