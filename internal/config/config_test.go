package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "solar.db", cfg.DatabaseURL)
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.Equal(t, "website", cfg.LeadSource)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, 587, cfg.SMTP.Port)
	assert.False(t, cfg.SMTP.Configured())
	assert.False(t, cfg.WhatsApp.Configured())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SITE_BASE_URL", "https://solar.example.com/")
	t.Setenv("CORS_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "https://solar.example.com", cfg.BaseURL, "trailing slash trimmed")
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSOrigins)
}

func TestSMTPConfigured_RequiresAllCredentials(t *testing.T) {
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_USER", "alerts@example.com")
	t.Setenv("SMTP_PASS", "secret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.SMTP.Configured(), "recipient still missing")

	t.Setenv("ALERT_EMAIL_TO", "sales@example.com")
	cfg, err = Load()
	require.NoError(t, err)
	assert.True(t, cfg.SMTP.Configured())
	assert.Equal(t, "alerts@example.com", cfg.SMTP.From, "falls back to SMTP user")
}

func TestLoad_RejectsBadNumbers(t *testing.T) {
	t.Setenv("SMTP_PORT", "not-a-port")

	_, err := Load()
	require.Error(t, err)
}
