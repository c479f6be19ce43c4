//go:build unit

package config_test

import (
	"os"
	"testing"
	"time"

	"reservation-engine/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PORT", "8080")
	t.Setenv("DB_USER", "engine")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "bookings")
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults are applied", func(t *testing.T) {
		setRequiredEnv(t)

		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "Europe/Helsinki", cfg.Engine.TimeZone)
		assert.Equal(t, 10, cfg.Engine.ProbeSize)
		assert.Equal(t, 16, cfg.Engine.PoolSize)
		assert.Equal(t, time.Hour, cfg.Engine.EditGracePeriod)
		assert.Equal(t, "series-batch-results", cfg.Kafka.Topic)
		assert.False(t, cfg.Kafka.Enabled())
	})

	t.Run("kafka brokers enable publishing", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
		assert.True(t, cfg.Kafka.Enabled())
	})

	t.Run("missing required value fails", func(t *testing.T) {
		// t.Setenv restores the previous values; Unsetenv makes the keys absent
		t.Setenv("PORT", "")
		t.Setenv("DB_USER", "")
		require.NoError(t, os.Unsetenv("PORT"))
		require.NoError(t, os.Unsetenv("DB_USER"))

		_, err := config.LoadConfig()
		require.Error(t, err)
	})

	t.Run("unknown timezone fails", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("ENGINE_TIMEZONE", "Mars/Olympus_Mons")

		_, err := config.LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ENGINE_TIMEZONE")
	})

	t.Run("non-positive pool size fails", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("BATCH_POOL_SIZE", "0")

		_, err := config.LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "BATCH_POOL_SIZE")
	})
}

func TestEngineConfigLocation(t *testing.T) {
	cfg := config.NewTestConfig()

	loc, err := cfg.Engine.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Helsinki", loc.String())
}
