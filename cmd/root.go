package cmd

import (
	"log"
	"os"

	"cinema-desk/internal/data/repository"
	"cinema-desk/internal/data/store"
	"cinema-desk/internal/wire"
	"cinema-desk/pkg/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	dataDir  string
	debug    bool
	autoLoad bool
)

var rootCmd = &cobra.Command{
	Use:   "cinema-desk",
	Short: "Box-office desk for a single cinema",
	Long: `cinema-desk manages a cinema's movie catalog, screening sessions and
ticket ledger from an interactive menu, persisting everything to CSV
files between runs.`,
	SilenceUsage: true,
	RunE:         run,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().StringVar(&dataDir, "data-dir", "", "directory for the CSV data files (overrides DATA_PATH)")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging to stderr")
	rootCmd.Flags().BoolVar(&autoLoad, "load", false, "load the data files without prompting")
}

func run(cmd *cobra.Command, args []string) error {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		return err
	}
	if dataDir != "" {
		config.Storage.DataPath = dataDir
	}
	if debug {
		config.App.Debug = true
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("data_path", config.Storage.DataPath),
		zap.Bool("debug", config.App.Debug),
	)

	// Initialize persistence and the in-memory collections
	st := store.New(config.Storage.DataPath, config.Venue.SessionSeats, logger)
	repos := repository.NewRepository(logger)

	// Wire all dependencies
	app := wire.Wiring(repos, st, config, logger, os.Stdin, os.Stdout)

	RunShell(app, autoLoad, logger)

	logger.Info("Application stopped")
	return nil
}
