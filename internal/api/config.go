package api

import (
	"fmt"
	"os"
	"time"
)

// Config holds the credentials for the exam-practice platform.
type Config struct {
	// BaseURL is the platform root, e.g. "https://app.example.ng".
	BaseURL string

	// Token is the JWT bearer token from a login.
	Token string

	// UserID is the platform user id the token belongs to. The free-action
	// quota and local ledger are keyed by it.
	UserID string

	// Timeout is the per-request timeout. Default: 15s.
	Timeout time.Duration
}

// ConfigFromEnv builds a Config from PREPCLI_API_URL, PREPCLI_API_TOKEN
// and PREPCLI_USER_ID.
func ConfigFromEnv() Config {
	cfg := Config{
		BaseURL: os.Getenv("PREPCLI_API_URL"),
		Token:   os.Getenv("PREPCLI_API_TOKEN"),
		UserID:  os.Getenv("PREPCLI_USER_ID"),
		Timeout: 15 * time.Second,
	}
	return cfg
}

// Validate checks that the config is usable for authenticated calls.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("PREPCLI_API_URL is required (run 'prepcli login' first)")
	}
	if c.Token == "" {
		return fmt.Errorf("PREPCLI_API_TOKEN is required (run 'prepcli login' first)")
	}
	if c.UserID == "" {
		return fmt.Errorf("PREPCLI_USER_ID is required (run 'prepcli login' first)")
	}
	return nil
}
