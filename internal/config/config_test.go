package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"ENV", "PORT", "ALLOWED_ORIGINS", "FRONTEND_URL", "FRONTEND_URL_2",
		"SUBMIT_BASE_URL", "SUBMIT_TIMEOUT", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "TRUST_PROXY", "ENABLE_SUBMIT_ECHO"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "development", cfg.Environment)
	require.False(t, cfg.IsProduction())
	require.Equal(t, []string{"https://web.telegram.org"}, cfg.AllowedOrigins)
	require.Equal(t, "http://localhost:8080", cfg.SubmitBaseURL)
	require.Equal(t, DefaultSubmitTimeout, cfg.SubmitTimeout)
	require.Equal(t, 1.0, cfg.RateLimitRPS)
	require.Equal(t, 10, cfg.RateLimitBurst)
	require.False(t, cfg.TrustProxy)
	require.True(t, cfg.EnableSubmitEcho)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ENV", " Production ")
	t.Setenv("PORT", "9090")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("SUBMIT_BASE_URL", "https://acceptor.example/")
	t.Setenv("SUBMIT_TIMEOUT", "3s")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "4")
	t.Setenv("TRUST_PROXY", "true")
	t.Setenv("ENABLE_SUBMIT_ECHO", "")

	cfg := Load()
	require.True(t, cfg.IsProduction())
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	require.Equal(t, "https://acceptor.example", cfg.SubmitBaseURL)
	require.Equal(t, 3*time.Second, cfg.SubmitTimeout)
	require.Equal(t, 2.5, cfg.RateLimitRPS)
	require.Equal(t, 4, cfg.RateLimitBurst)
	require.True(t, cfg.TrustProxy)
	require.False(t, cfg.EnableSubmitEcho)
}

func TestLoadIgnoresInvalidNumbers(t *testing.T) {
	t.Setenv("RATE_LIMIT_BURST", "many")
	t.Setenv("SUBMIT_TIMEOUT", "soon")

	cfg := Load()
	require.Equal(t, 10, cfg.RateLimitBurst)
	require.Equal(t, DefaultSubmitTimeout, cfg.SubmitTimeout)
}

func TestLoadAllowsDisablingSubmitTimeout(t *testing.T) {
	t.Setenv("SUBMIT_TIMEOUT", "0s")
	require.Zero(t, Load().SubmitTimeout)
}
