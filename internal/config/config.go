// Package config loads the application configuration from the environment.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// Path of the SQLite database file
	DatabaseFile string

	// Mode gin runs in, "release" or "debug"
	GinMode string

	// Log format, "human" for console output, anything else logs JSON
	LogFormat string
}

// Load reads the configuration from the environment. A .env file in the
// working directory is loaded first if it exists, values already set in the
// environment win.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		DatabaseFile: getEnv("DATABASE_FILE", "data/pocketledger.db"),
		GinMode:      getEnv("GIN_MODE", "release"),
		LogFormat:    getEnv("LOG_FORMAT", ""),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}
