package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "5000" {
		t.Errorf("expected default port 5000, got %s", cfg.Port)
	}
	if cfg.CookieTTLDays != 30 {
		t.Errorf("expected 30 day cookie TTL, got %d", cfg.CookieTTLDays)
	}
	if cfg.PollInterval != time.Second {
		t.Errorf("expected 1s poll interval, got %s", cfg.PollInterval)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SESSION_COOKIE_TTL_DAYS", "7")
	t.Setenv("SESSION_POLL_INTERVAL", "250ms")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Port)
	}
	if cfg.CookieTTLDays != 7 {
		t.Errorf("expected 7 day cookie TTL, got %d", cfg.CookieTTLDays)
	}
	if cfg.PollInterval != 250*time.Millisecond {
		t.Errorf("expected 250ms poll interval, got %s", cfg.PollInterval)
	}
}

func TestLoad_BadValuesFallBack(t *testing.T) {
	t.Setenv("SESSION_COOKIE_TTL_DAYS", "not-a-number")
	t.Setenv("SESSION_POLL_INTERVAL", "soon")

	cfg := Load()

	if cfg.CookieTTLDays != 30 {
		t.Errorf("expected fallback 30, got %d", cfg.CookieTTLDays)
	}
	if cfg.PollInterval != time.Second {
		t.Errorf("expected fallback 1s, got %s", cfg.PollInterval)
	}
}
