// internal/config/config_test.go
package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// envKeys lists every variable LoadConfig reads, so tests can blank them out.
var envKeys = []string{
	"SERVER_PORT", "SERVER_READ_TIMEOUT", "SERVER_WRITE_TIMEOUT", "SERVER_IDLE_TIMEOUT",
	"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
	"KAFKA_BROKERS",
}

func clearEnv(t *testing.T) {
	for _, key := range envKeys {
		t.Setenv(key, "")
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		clearEnv(t)

		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.ServerPort)
		assert.Equal(t, 10*time.Second, cfg.ServerReadTimeout)
		assert.Equal(t, 10*time.Second, cfg.ServerWriteTimeout)
		assert.Equal(t, 120*time.Second, cfg.ServerIdleTimeout)
		assert.Equal(t, "localhost", cfg.DB.Host)
		assert.Equal(t, 5432, cfg.DB.Port)
		assert.Equal(t, "paycartdb", cfg.DB.DBName)
		assert.Equal(t, "disable", cfg.DB.SSLMode)
		assert.Empty(t, cfg.KafkaBrokers)
	})

	t.Run("Overrides", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("SERVER_PORT", "9090")
		t.Setenv("SERVER_READ_TIMEOUT", "5s")
		t.Setenv("SERVER_WRITE_TIMEOUT", "15s")
		t.Setenv("SERVER_IDLE_TIMEOUT", "1m")
		t.Setenv("DB_PORT", "5433")
		t.Setenv("DB_NAME", "otherdb")
		t.Setenv("KAFKA_BROKERS", "broker1:9092, broker2:9092")

		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "9090", cfg.ServerPort)
		assert.Equal(t, 5*time.Second, cfg.ServerReadTimeout)
		assert.Equal(t, 15*time.Second, cfg.ServerWriteTimeout)
		assert.Equal(t, time.Minute, cfg.ServerIdleTimeout)
		assert.Equal(t, 5433, cfg.DB.Port)
		assert.Equal(t, "otherdb", cfg.DB.DBName)
		assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.KafkaBrokers)
	})

	t.Run("InvalidTimeout", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("SERVER_READ_TIMEOUT", "soon")

		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("InvalidDBPort", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("DB_PORT", "not-a-port")

		_, err := LoadConfig()
		assert.Error(t, err)
	})
}
