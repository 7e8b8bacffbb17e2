package utils

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	Storage StorageConfig
	Venue   VenueConfig
}

type AppConfig struct {
	Name    string
	Debug   bool
	LogPath string
}

type StorageConfig struct {
	DataPath string
}

type VenueConfig struct {
	// Capacity is the fixed hall size used by every availability and
	// seat-status view.
	Capacity int
	// SessionSeats is the capacity assigned to new and loaded sessions.
	// A session created with a different value is flagged at add time.
	SessionSeats int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "cinema-desk")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("DATA_PATH", "csv-database/")
	viper.SetDefault("VENUE_CAPACITY", 10)
	viper.SetDefault("SESSION_SEATS", 10)

	if err := viper.ReadInConfig(); err != nil {
		// Running without a .env is fine; defaults apply.
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Storage: StorageConfig{
			DataPath: viper.GetString("DATA_PATH"),
		},
		Venue: VenueConfig{
			Capacity:     viper.GetInt("VENUE_CAPACITY"),
			SessionSeats: viper.GetInt("SESSION_SEATS"),
		},
	}

	return config, nil
}
