package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "http://localhost:8000", cfg.APIBaseURL)
	assert.Equal(t, 3*time.Second, cfg.PollInterval)
	assert.Equal(t, time.Duration(0), cfg.BackendTimeout)
	assert.Equal(t, "0.0.0.0:3000", cfg.UIAddr)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
}

func TestLoad_EnvVars(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("API_BASE_URL", "https://poll.example.com")
	t.Setenv("POLL_INTERVAL", "500ms")
	t.Setenv("BACKEND_TIMEOUT", "2s")
	t.Setenv("UI_ALLOWED_ORIGINS", "http://a.example,http://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "https://poll.example.com", cfg.APIBaseURL)
	assert.Equal(t, 500*time.Millisecond, cfg.PollInterval)
	assert.Equal(t, 2*time.Second, cfg.BackendTimeout)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.AllowedOrigins)
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("API_BASE_URL=http://backend:8000\nUI_ADDR=:9090\n"), 0o600))

	// godotenv writes into the process env; register cleanup before loading
	t.Setenv("API_BASE_URL", "")
	t.Setenv("UI_ADDR", "")
	os.Unsetenv("API_BASE_URL")
	os.Unsetenv("UI_ADDR")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://backend:8000", cfg.APIBaseURL)
	assert.Equal(t, ":9090", cfg.UIAddr)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("API_BASE_URL=http://from-file:8000\n"), 0o600))
	t.Setenv("API_BASE_URL", "http://from-env:8000")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://from-env:8000", cfg.APIBaseURL)
}

func TestLoad_MissingEnvFileIsIgnored(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.NoError(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "relative base url", key: "API_BASE_URL", value: "localhost:8000"},
		{name: "unsupported scheme", key: "API_BASE_URL", value: "ftp://example.com"},
		{name: "zero interval", key: "POLL_INTERVAL", value: "0s"},
		{name: "negative interval", key: "POLL_INTERVAL", value: "-1s"},
		{name: "unparsable interval", key: "POLL_INTERVAL", value: "soon"},
		{name: "negative timeout", key: "BACKEND_TIMEOUT", value: "-2s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
