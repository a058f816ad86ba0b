package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds application configuration loaded from environment variables
type Config struct {
	PGURL    string
	DataDir  string
	Port     string
	LogLevel string
}

// Load reads configuration from the environment, after merging in a .env
// file when one is present in the working directory.
//
// PG_URL and DATA_DIR are both optional: with PG_URL set the catalog comes
// from Postgres, with DATA_DIR set from CSV files, and with neither the
// built-in capital market assumptions are used.
func Load() (*Config, error) {
	// Ignore the error: a missing .env file is fine.
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	return &Config{
		PGURL:    os.Getenv("PG_URL"),
		DataDir:  os.Getenv("DATA_DIR"),
		Port:     port,
		LogLevel: logLevel,
	}, nil
}
