package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/iho/cartera/internal/infrastructure/config"
)

func TestLoadDefaults(t *testing.T) {
	// t.Setenv registers the restore; an empty value still counts as
	// set for env parsing, so unset the variables afterwards.
	for _, key := range []string{"DATABASE_URL", "MIGRATIONS_PATH", "HTTP_PORT", "IDEMPOTENCY_TTL"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.DatabaseURL == "" {
		t.Fatalf("expected default database URL to be set")
	}

	if cfg.MigrationsPath != "" {
		t.Fatalf("expected migrations path default to be empty, got %q", cfg.MigrationsPath)
	}

	if cfg.HTTPPort != "8080" {
		t.Fatalf("expected default HTTP port 8080, got %s", cfg.HTTPPort)
	}

	if cfg.IdempotencyTTL != 24*time.Hour {
		t.Fatalf("expected default idempotency TTL of 24h, got %s", cfg.IdempotencyTTL)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("REDIS_URL", "redis://example")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DATABASE_TIMEOUT", "45s")
	t.Setenv("MIGRATIONS_PATH", "migrations")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.DatabaseURL != "postgres://example" {
		t.Fatalf("expected custom database URL, got %s", cfg.DatabaseURL)
	}

	if cfg.RedisURL != "redis://example" {
		t.Fatalf("expected custom redis URL, got %s", cfg.RedisURL)
	}

	if cfg.HTTPPort != "9090" {
		t.Fatalf("expected HTTP port override, got %s", cfg.HTTPPort)
	}

	if cfg.DatabaseTimeout != 45*time.Second {
		t.Fatalf("expected database timeout override, got %s", cfg.DatabaseTimeout)
	}

	if cfg.MigrationsPath != "migrations" {
		t.Fatalf("expected migrations path override, got %s", cfg.MigrationsPath)
	}
}
