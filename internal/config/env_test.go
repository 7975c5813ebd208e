package config

import (
	"testing"
	"time"
)

func TestLoadEnvDefaults(t *testing.T) {
	env := LoadEnv()
	if env.AppAddr != ":8080" {
		t.Fatalf("expected default addr, got %q", env.AppAddr)
	}
	if env.DBDriver != "mysql" {
		t.Fatalf("expected mysql driver by default, got %q", env.DBDriver)
	}
	if env.DBDSN == "" {
		t.Fatalf("expected default dsn")
	}
	if env.SessionTTL != 24*time.Hour {
		t.Fatalf("expected 24h session ttl, got %s", env.SessionTTL)
	}
	if len(env.AllowedOrigins()) == 0 {
		t.Fatalf("expected default cors origins")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("APP_ADDR", ":9000")
	t.Setenv("DB_DRIVER", " SQLite ")
	t.Setenv("DB_DSN", "./data/test.db")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, ,http://b.test")

	env := LoadEnv()
	if env.AppAddr != ":9000" {
		t.Fatalf("expected override addr, got %q", env.AppAddr)
	}
	if env.DBDriver != "sqlite" {
		t.Fatalf("expected normalized driver, got %q", env.DBDriver)
	}
	if env.DBDSN != "./data/test.db" {
		t.Fatalf("expected override dsn, got %q", env.DBDSN)
	}
	if env.JWTSecret != "secret" {
		t.Fatalf("expected override secret")
	}
	if env.SessionTTL != 2*time.Hour {
		t.Fatalf("expected 2h ttl, got %s", env.SessionTTL)
	}
	origins := env.AllowedOrigins()
	if len(origins) != 2 || origins[0] != "http://a.test" || origins[1] != "http://b.test" {
		t.Fatalf("unexpected origins: %v", origins)
	}
}

func TestLoadEnvInvalidTTLFallsBack(t *testing.T) {
	t.Setenv("SESSION_TTL", "soon")

	env := LoadEnv()
	if env.SessionTTL != 24*time.Hour {
		t.Fatalf("expected fallback ttl, got %s", env.SessionTTL)
	}
}
