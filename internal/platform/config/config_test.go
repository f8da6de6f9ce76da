package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("REGISTRATION_BASE_URL", "")
		t.Setenv("REGISTRATION_TIMEOUT", "")
		t.Setenv("LOG_LEVEL", "")

		cfg, err := FromEnv()
		require.NoError(t, err)
		assert.True(t, cfg.UsesFake())
		assert.Equal(t, DefaultTimeout, cfg.Timeout)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("REGISTRATION_BASE_URL", HistoricBaseURL)
		t.Setenv("REGISTRATION_TIMEOUT", "3s")
		t.Setenv("LOG_LEVEL", "debug")

		cfg, err := FromEnv()
		require.NoError(t, err)
		assert.False(t, cfg.UsesFake())
		assert.Equal(t, HistoricBaseURL, cfg.BaseURL)
		assert.Equal(t, 3*time.Second, cfg.Timeout)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("bad timeout", func(t *testing.T) {
		t.Setenv("REGISTRATION_TIMEOUT", "soon")
		_, err := FromEnv()
		assert.Error(t, err)

		t.Setenv("REGISTRATION_TIMEOUT", "-1s")
		_, err = FromEnv()
		assert.Error(t, err)
	})
}

func TestMockFromEnv(t *testing.T) {
	t.Setenv("MOCK_REGISTRATION_ADDR", "")
	assert.Equal(t, ":8082", MockFromEnv().Addr)

	t.Setenv("MOCK_REGISTRATION_ADDR", "127.0.0.1:9000")
	assert.Equal(t, "127.0.0.1:9000", MockFromEnv().Addr)

	t.Setenv("MOCK_REGISTRATION_LATENCY", "250ms")
	assert.Equal(t, 250*time.Millisecond, MockFromEnv().Latency)

	t.Setenv("MOCK_REGISTRATION_LATENCY", "slow")
	assert.Zero(t, MockFromEnv().Latency)
}
