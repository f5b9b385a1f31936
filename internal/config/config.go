// Package config loads and validates tracker configuration from environment
// variables.
package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds all configuration for one tracker invocation.
// Values are populated by Load from environment variables; main loads .env
// into the environment first.
type Config struct {
	// SheetyKey is the bearer token for the Sheety spreadsheet API. Required.
	SheetyKey string

	// SheetName is the Sheety project identifier that forms the API base URL.
	// Required.
	SheetName string

	// TequilaKey is the API key for the Tequila flight-search API. Required.
	TequilaKey string

	// OriginCode is the IATA code all fare searches depart from.
	// Defaults to "PHL".
	OriginCode string

	// SMTPHost and SMTPPort locate the outbound mail server.
	// SMTPPort defaults to "587" (submission with STARTTLS).
	SMTPHost string
	SMTPPort string

	// EmailAddress is both the SMTP login user and the From address. Required.
	EmailAddress string

	// EmailPassword is the SMTP login password. Required.
	EmailPassword string

	// Twilio credentials for the SMS channel. All optional; the SMS sender is
	// only constructed when they are present.
	TwilioSID   string
	TwilioToken string
	TwilioFrom  string
	AlertNumber string
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing every required variable that is not set.
func Load() (Config, error) {
	cfg := Config{
		SheetyKey:     os.Getenv("SHEETY_KEY"),
		SheetName:     os.Getenv("SHEET_NAME"),
		TequilaKey:    os.Getenv("TEQUILA_KEY"),
		OriginCode:    getEnv("ORIGIN_CODE", "PHL"),
		SMTPHost:      os.Getenv("SMTP_HOST"),
		SMTPPort:      getEnv("SMTP_PORT", "587"),
		EmailAddress:  os.Getenv("EMAIL_ADDRESS"),
		EmailPassword: os.Getenv("EMAIL_KEY"),
		TwilioSID:     os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioToken:   os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioFrom:    os.Getenv("TWILIO_FROM_NUMBER"),
		AlertNumber:   os.Getenv("ALERT_PHONE_NUMBER"),
	}

	var missing []string
	for _, v := range []struct {
		name  string
		value string
	}{
		{"SHEETY_KEY", cfg.SheetyKey},
		{"SHEET_NAME", cfg.SheetName},
		{"TEQUILA_KEY", cfg.TequilaKey},
		{"SMTP_HOST", cfg.SMTPHost},
		{"EMAIL_ADDRESS", cfg.EmailAddress},
		{"EMAIL_KEY", cfg.EmailPassword},
	} {
		if v.value == "" {
			missing = append(missing, v.name)
		}
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// SMSConfigured reports whether all Twilio settings are present.
func (c *Config) SMSConfigured() bool {
	return c.TwilioSID != "" && c.TwilioToken != "" && c.TwilioFrom != "" && c.AlertNumber != ""
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
