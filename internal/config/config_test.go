package config_test

import (
	"testing"
	"time"

	"github.com/casestudy/backend-api/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.HTTPPort != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.HTTPPort)
	}
	if cfg.ReadTimeout != 5*time.Second {
		t.Fatalf("expected default read timeout 5s, got %s", cfg.ReadTimeout)
	}
	if cfg.ShutdownTimeout != 30*time.Second {
		t.Fatalf("expected default shutdown timeout 30s, got %s", cfg.ShutdownTimeout)
	}
	if cfg.RateLimit != 100 {
		t.Fatalf("expected default rate limit 100, got %d", cfg.RateLimit)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("WRITE_TIMEOUT", "15s")
	t.Setenv("RATE_LIMIT", "25")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.HTTPPort != "9090" {
		t.Fatalf("expected port 9090, got %s", cfg.HTTPPort)
	}
	if cfg.WriteTimeout != 15*time.Second {
		t.Fatalf("expected write timeout 15s, got %s", cfg.WriteTimeout)
	}
	if cfg.RateLimit != 25 {
		t.Fatalf("expected rate limit 25, got %d", cfg.RateLimit)
	}
}

func TestLoad_MalformedValuesFallBack(t *testing.T) {
	t.Setenv("READ_TIMEOUT", "not-a-duration")
	t.Setenv("RATE_LIMIT", "not-a-number")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ReadTimeout != 5*time.Second {
		t.Fatalf("expected fallback read timeout 5s, got %s", cfg.ReadTimeout)
	}
	if cfg.RateLimit != 100 {
		t.Fatalf("expected fallback rate limit 100, got %d", cfg.RateLimit)
	}
}

func TestLoad_RejectsNonPositiveRateLimit(t *testing.T) {
	t.Setenv("RATE_LIMIT", "-5")

	if _, err := config.Load(); err == nil {
		t.Fatal("expected error for negative RATE_LIMIT")
	}
}
