package config

import (
	"log/slog"

	"git.home.luguber.info/inful/hidldoc/internal/logfields"
	"github.com/joho/godotenv"
)

var envFiles = []string{".env", ".env.local"}

// loadEnvFile loads the first readable .env file. Variables already present
// in the process environment are never overwritten.
func loadEnvFile() bool {
	for _, path := range envFiles {
		if err := godotenv.Load(path); err == nil {
			slog.Debug("Loaded environment variables", logfields.Path(path))
			return true
		}
	}
	return false
}
