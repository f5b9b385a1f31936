package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/moffd234/FlightPriceTracker/internal/config"
)

func setRequired(t *testing.T) {
	t.Setenv("SHEETY_KEY", "sheety-secret")
	t.Setenv("SHEET_NAME", "myproject")
	t.Setenv("TEQUILA_KEY", "tequila-secret")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("EMAIL_ADDRESS", "alerts@example.com")
	t.Setenv("EMAIL_KEY", "mail-secret")
}

// TestLoad_defaults verifies that optional values fall back to their defaults
// when only the required variables are provided.
func TestLoad_defaults(t *testing.T) {
	setRequired(t)
	t.Setenv("ORIGIN_CODE", "")
	t.Setenv("SMTP_PORT", "")

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "PHL", cfg.OriginCode)
	require.Equal(t, "587", cfg.SMTPPort)
	require.Equal(t, "sheety-secret", cfg.SheetyKey)
	require.Equal(t, "myproject", cfg.SheetName)
	require.False(t, cfg.SMSConfigured())
}

// TestLoad_overrides verifies that defaults can be overridden via env vars.
func TestLoad_overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("ORIGIN_CODE", "JFK")
	t.Setenv("SMTP_PORT", "2525")

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "JFK", cfg.OriginCode)
	require.Equal(t, "2525", cfg.SMTPPort)
}

// TestLoad_missingRequired verifies that every missing required variable is
// named in the error.
func TestLoad_missingRequired(t *testing.T) {
	setRequired(t)
	t.Setenv("SHEETY_KEY", "")
	t.Setenv("TEQUILA_KEY", "")

	_, err := config.Load()

	require.Error(t, err)
	require.ErrorContains(t, err, "SHEETY_KEY")
	require.ErrorContains(t, err, "TEQUILA_KEY")
}

// TestSMSConfigured verifies the SMS channel is only reported ready when all
// four Twilio settings are present.
func TestSMSConfigured(t *testing.T) {
	setRequired(t)
	t.Setenv("TWILIO_ACCOUNT_SID", "AC123")
	t.Setenv("TWILIO_AUTH_TOKEN", "token")
	t.Setenv("TWILIO_FROM_NUMBER", "+15550001111")
	t.Setenv("ALERT_PHONE_NUMBER", "+15550002222")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.True(t, cfg.SMSConfigured())

	t.Setenv("ALERT_PHONE_NUMBER", "")
	cfg, err = config.Load()
	require.NoError(t, err)
	require.False(t, cfg.SMSConfigured())
}
