package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr            string
	DBPath          string
	LogLevel        string
	ReadTimeoutSec  int
	WriteTimeoutSec int
	IdleTimeoutSec  int
	ShutdownSec     int
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:            envOr("ADDR", ":8080"),
		DBPath:          envOr("DB_PATH", "file:studyflash.db"),
		LogLevel:        envOr("LOG_LEVEL", "INFO"),
		ReadTimeoutSec:  envIntOr("READ_TIMEOUT_SEC", 15),
		WriteTimeoutSec: envIntOr("WRITE_TIMEOUT_SEC", 30),
		IdleTimeoutSec:  envIntOr("IDLE_TIMEOUT_SEC", 60),
		ShutdownSec:     envIntOr("SHUTDOWN_SEC", 30),
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}
