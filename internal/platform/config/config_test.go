package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ".", cfg.DataDir)
	assert.Empty(t, cfg.HostIP)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 2*time.Second, cfg.StatsCacheTTL)
}

func TestLoad_CustomValues(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("DATA_DIR", "/var/lib/dockboard")
	t.Setenv("HOST_IP", "192.168.1.50")
	t.Setenv("STATS_CACHE_TTL", "5s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.AppEnv)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "/var/lib/dockboard", cfg.DataDir)
	assert.Equal(t, "192.168.1.50", cfg.HostIP)
	assert.Equal(t, 5*time.Second, cfg.StatsCacheTTL)
}

func TestLoad_InvalidPort(t *testing.T) {
	tests := []struct {
		name string
		port string
	}{
		{"not a number", "http"},
		{"zero", "0"},
		{"too large", "70000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PORT", tt.port)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "PORT must be a valid port number")
		})
	}
}

func TestLoad_InvalidHostIP(t *testing.T) {
	t.Setenv("HOST_IP", "not-an-ip")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HOST_IP must be a valid IP address")
}

func TestLoad_InvalidStatsCacheTTL(t *testing.T) {
	t.Setenv("STATS_CACHE_TTL", "-1s")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STATS_CACHE_TTL must be positive")
}
