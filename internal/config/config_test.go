package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "file:studyflash.db", cfg.DBPath)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Equal(t, 15, cfg.ReadTimeoutSec)
	assert.Equal(t, 30, cfg.WriteTimeoutSec)
	assert.Equal(t, 60, cfg.IdleTimeoutSec)
	assert.Equal(t, 30, cfg.ShutdownSec)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("DB_PATH", "file:test.db")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("READ_TIMEOUT_SEC", "5")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "file:test.db", cfg.DBPath)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
	assert.Equal(t, 5, cfg.ReadTimeoutSec)
}

func TestLoadInvalidIntFallsBack(t *testing.T) {
	t.Setenv("WRITE_TIMEOUT_SEC", "not-a-number")

	cfg := Load()

	assert.Equal(t, 30, cfg.WriteTimeoutSec)
}
