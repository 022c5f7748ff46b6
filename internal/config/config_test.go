package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{
		"DATABASE_URL", "REDIS_URL", "PAGE_CACHE_TTL", "OPENAI_API_KEY", "METRICS_PORT", "WORKER_COUNT",
		"FETCH_TIMEOUT", "MAX_BODY_BYTES", "USER_AGENT", "SITE_ORIGIN", "COLOR_VOCABULARY", "LOG_LEVEL", "LOG_FILE",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		clearEnv(t)

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "9090", cfg.MetricsPort)
		assert.Equal(t, 5, cfg.WorkerCount)
		assert.Equal(t, 60*time.Second, cfg.FetchTimeout)
		assert.Equal(t, time.Hour, cfg.PageCacheTTL)
		assert.Equal(t, int64(10<<20), cfg.MaxBodyBytes)
		assert.Equal(t, "Mozilla/5.0", cfg.UserAgent)
		assert.Equal(t, "https://brain.com.ua", cfg.SiteOrigin)
		assert.Equal(t, []string{"black", "white", "blue", "gold", "titanium", "green"}, cfg.Colors)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Error(t, cfg.RequireDatabase())
	})

	t.Run("custom values", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("DATABASE_URL", "postgres://localhost/products")
		t.Setenv("WORKER_COUNT", "12")
		t.Setenv("FETCH_TIMEOUT", "15s")
		t.Setenv("SITE_ORIGIN", "https://example.com/")
		t.Setenv("COLOR_VOCABULARY", "Desert, natural , ,ultramarine")

		cfg, err := Load()
		require.NoError(t, err)

		assert.NoError(t, cfg.RequireDatabase())
		assert.Equal(t, 12, cfg.WorkerCount)
		assert.Equal(t, 15*time.Second, cfg.FetchTimeout)
		assert.Equal(t, "https://example.com", cfg.SiteOrigin)
		assert.Equal(t, []string{"Desert", "natural", "ultramarine"}, cfg.Colors)
	})

	t.Run("invalid values", func(t *testing.T) {
		tests := []struct {
			key, value string
		}{
			{"WORKER_COUNT", "many"},
			{"WORKER_COUNT", "0"},
			{"FETCH_TIMEOUT", "soon"},
			{"PAGE_CACHE_TTL", "-"},
			{"COLOR_VOCABULARY", " , "},
		}
		for _, tt := range tests {
			t.Run(tt.key+"="+tt.value, func(t *testing.T) {
				clearEnv(t)
				t.Setenv(tt.key, tt.value)

				_, err := Load()
				assert.Error(t, err)
			})
		}
	})
}
