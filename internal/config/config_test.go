package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fadilmartias/useresume-gateway/internal/errors"
)

func TestUseResumeConfigFromEnv(t *testing.T) {
	t.Setenv("RESUME_API_KEY", " ur_live_123 ")
	t.Setenv("RESUME_API_BASE_URL", "http://localhost:9999/api/v3/")

	cfg := UseResumeConfigFromEnv()
	assert.Equal(t, "ur_live_123", cfg.APIKey)
	assert.Equal(t, "http://localhost:9999/api/v3", cfg.BaseURL)
	assert.NoError(t, cfg.Validate())
}

func TestUseResumeConfigDefaults(t *testing.T) {
	t.Setenv("RESUME_API_KEY", "ur_x")
	t.Setenv("RESUME_API_BASE_URL", "")
	assert.Equal(t, DefaultUseResumeBaseURL, UseResumeConfigFromEnv().BaseURL)
}

func TestUseResumeConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantMsg string
	}{
		{"missing", "", "RESUME_API_KEY environment variable is required."},
		{"wrong prefix", "sk_live_123", `Invalid API key format. Key must start with "ur_".`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := (&UseResumeConfig{APIKey: tt.key, BaseURL: DefaultUseResumeBaseURL}).Validate()
			require.Error(t, err)
			assert.True(t, errors.IsConfigurationError(err))
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.NotEmpty(t, errors.GetAllHints(err))
		})
	}
}

func TestAppConfigFromEnv(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_PORT", "")
	t.Setenv("RATE_LIMIT_MAX", "10")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")
	t.Setenv("LOG_FORMAT", "console")

	cfg := appConfigFromEnv()
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, ":8080", cfg.Port)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, 10, cfg.RateLimit.Max)
	assert.Equal(t, 30*time.Second, cfg.RateLimit.Expiration)

	t.Setenv("RATE_LIMIT_WINDOW", "soon")
	assert.Equal(t, time.Minute, appConfigFromEnv().RateLimit.Expiration)
}

func TestApplyFileKeepsEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "useresume.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
app:
  env: staging
log:
  level: debug
useresume:
  api_key: ur_from_file
  base_url: http://file.local/api/v3
rate_limit:
  max: 7
`), 0o600))

	t.Setenv("RESUME_API_KEY", "ur_from_env")
	// Registered so t.Setenv restores them; emptied so the file can fill them.
	for _, key := range []string{"APP_ENV", "LOG_LEVEL", "RESUME_API_BASE_URL", "RATE_LIMIT_MAX"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	require.NoError(t, ApplyFile(path))

	assert.Equal(t, "ur_from_env", os.Getenv("RESUME_API_KEY"))
	assert.Equal(t, "http://file.local/api/v3", os.Getenv("RESUME_API_BASE_URL"))
	assert.Equal(t, "staging", os.Getenv("APP_ENV"))
	assert.Equal(t, "debug", os.Getenv("LOG_LEVEL"))
	assert.Equal(t, "7", os.Getenv("RATE_LIMIT_MAX"))
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config")
	assert.ErrorContains(t, err, "missing.yaml")
	assert.True(t, errors.Is(err, os.ErrNotExist))

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("app: [unclosed"), 0o600))
	_, err = LoadFile(path)
	assert.ErrorContains(t, err, "failed to parse config")
}
