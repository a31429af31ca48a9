// Package config loads service configuration from the environment.
package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config carries everything the service needs at startup. All values come
// from environment variables; main loads a .env file first when present.
type Config struct {
	Addr   string
	WebDir string

	DatabaseURL string
	RedisURL    string

	SessionTTL         time.Duration
	PlaintextPasswords bool

	AllowedOrigins []string
	LogLevel       string

	OIDCIssuer       string
	OIDCClientID     string
	OIDCClientSecret string
	OIDCRedirectURL  string
}

// Load reads the configuration from the environment. DATABASE_URL is the
// only required variable.
func Load() (*Config, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}

	ttl, err := parseTTL(getenv("SESSION_TTL", "24h"))
	if err != nil {
		return nil, err
	}

	plaintext, _ := strconv.ParseBool(getenv("AUTH_PLAINTEXT_PASSWORDS", "false"))

	return &Config{
		Addr:               getenv("ADDR", ":8080"),
		WebDir:             getenv("WEB_DIR", "web"),
		DatabaseURL:        dbURL,
		RedisURL:           os.Getenv("REDIS_URL"),
		SessionTTL:         ttl,
		PlaintextPasswords: plaintext,
		AllowedOrigins:     splitOrigins(os.Getenv("CORS_ALLOWED_ORIGINS")),
		LogLevel:           getenv("LOG_LEVEL", "info"),
		OIDCIssuer:         os.Getenv("OIDC_ISSUER"),
		OIDCClientID:       os.Getenv("OIDC_CLIENT_ID"),
		OIDCClientSecret:   os.Getenv("OIDC_CLIENT_SECRET"),
		OIDCRedirectURL:    os.Getenv("OIDC_REDIRECT_URL"),
	}, nil
}

// SSOEnabled reports whether the OIDC login flow is fully configured.
func (c *Config) SSOEnabled() bool {
	return c.OIDCIssuer != "" && c.OIDCClientID != "" && c.OIDCClientSecret != "" && c.OIDCRedirectURL != ""
}

func parseTTL(v string) (time.Duration, error) {
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, errors.New("SESSION_TTL must be a duration such as 24h")
	}
	if d <= 0 {
		return 0, errors.New("SESSION_TTL must be positive")
	}
	return d, nil
}

func splitOrigins(v string) []string {
	if v == "" {
		return nil
	}
	var out []string
	for _, o := range strings.Split(v, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
