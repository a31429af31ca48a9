package config

import (
	"testing"
	"time"
)

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected an error without DATABASE_URL")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/catalogue")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("expected default addr :8080, got %q", cfg.Addr)
	}
	if cfg.WebDir != "web" {
		t.Errorf("expected default web dir, got %q", cfg.WebDir)
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Errorf("expected 24h session ttl, got %v", cfg.SessionTTL)
	}
	if cfg.PlaintextPasswords {
		t.Error("plaintext passwords must be off by default")
	}
	if cfg.SSOEnabled() {
		t.Error("sso must be off without OIDC variables")
	}
}

func TestLoadSessionTTL(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/catalogue")
	t.Setenv("SESSION_TTL", "45m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.SessionTTL != 45*time.Minute {
		t.Errorf("expected 45m ttl, got %v", cfg.SessionTTL)
	}
}

func TestLoadRejectsBadTTL(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/catalogue")
	t.Setenv("SESSION_TTL", "tomorrow")

	if _, err := Load(); err == nil {
		t.Fatal("expected an error for a malformed ttl")
	}
}

func TestLoadOrigins(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/catalogue")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com,")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://b.example.com" {
		t.Errorf("unexpected origins %v", cfg.AllowedOrigins)
	}
}

func TestSSOEnabled(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/catalogue")
	t.Setenv("OIDC_ISSUER", "https://id.example.com")
	t.Setenv("OIDC_CLIENT_ID", "cataloguer")
	t.Setenv("OIDC_CLIENT_SECRET", "shh")
	t.Setenv("OIDC_REDIRECT_URL", "https://app.example.com/auth/sso/callback")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.SSOEnabled() {
		t.Error("expected sso enabled with all OIDC variables set")
	}
}
