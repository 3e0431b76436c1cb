package config

import (
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"MAGISTRAL_ADDR",
		"DATABASE_URL",
		"DATABASE_MAX_IDLE_CONNS",
		"DATABASE_MAX_OPEN_CONNS",
		"DATABASE_CONN_MAX_LIFETIME",
		"DATABASE_CONN_MAX_IDLE_TIME",
		"DATABASE_USE_MOCK",
		"LOG_LEVEL",
		"SESSION_LIFETIME",
		"SESSION_COOKIE_NAME",
		"SESSION_COOKIE_DOMAIN",
		"SESSION_COOKIE_SECURE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Addr != ":8080" {
		t.Errorf("Server.Addr = %q, want :8080", cfg.Server.Addr)
	}
	if !cfg.Database.UseMock {
		t.Error("Database.UseMock should default to true without DATABASE_URL")
	}
	if cfg.Database.MaxIdleConns != 2 {
		t.Errorf("Database.MaxIdleConns = %d, want 2", cfg.Database.MaxIdleConns)
	}
	if cfg.Database.MaxOpenConns != 10 {
		t.Errorf("Database.MaxOpenConns = %d, want 10", cfg.Database.MaxOpenConns)
	}
	if cfg.Database.ConnMaxLifetime != time.Hour {
		t.Errorf("Database.ConnMaxLifetime = %s, want 1h", cfg.Database.ConnMaxLifetime)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
	if cfg.Auth.Session.Lifetime != 12*time.Hour {
		t.Errorf("Auth.Session.Lifetime = %s, want 12h", cfg.Auth.Session.Lifetime)
	}
	if cfg.Auth.Session.CookieName != "magistral_session" {
		t.Errorf("Auth.Session.CookieName = %q, want magistral_session", cfg.Auth.Session.CookieName)
	}
	if cfg.Auth.Session.CookieSecure {
		t.Error("Auth.Session.CookieSecure should default to false")
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("MAGISTRAL_ADDR", "127.0.0.1:9090")
	t.Setenv("DATABASE_URL", "postgres://localhost/magistral")
	t.Setenv("DATABASE_MAX_OPEN_CONNS", "25")
	t.Setenv("DATABASE_CONN_MAX_LIFETIME", "90m")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SESSION_LIFETIME", "24h")
	t.Setenv("SESSION_COOKIE_SECURE", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Addr != "127.0.0.1:9090" {
		t.Errorf("Server.Addr = %q", cfg.Server.Addr)
	}
	if cfg.Database.UseMock {
		t.Error("Database.UseMock should be false when DATABASE_URL is set")
	}
	if cfg.Database.MaxOpenConns != 25 {
		t.Errorf("Database.MaxOpenConns = %d, want 25", cfg.Database.MaxOpenConns)
	}
	if cfg.Database.ConnMaxLifetime != 90*time.Minute {
		t.Errorf("Database.ConnMaxLifetime = %s, want 90m", cfg.Database.ConnMaxLifetime)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Auth.Session.Lifetime != 24*time.Hour {
		t.Errorf("Auth.Session.Lifetime = %s, want 24h", cfg.Auth.Session.Lifetime)
	}
	if !cfg.Auth.Session.CookieSecure {
		t.Error("Auth.Session.CookieSecure should be true")
	}
}

func TestLoadInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "bad int", key: "DATABASE_MAX_IDLE_CONNS", value: "many"},
		{name: "bad duration", key: "SESSION_LIFETIME", value: "soon"},
		{name: "bad bool", key: "DATABASE_USE_MOCK", value: "maybe"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tc.key, tc.value)

			if _, err := Load(); err == nil {
				t.Fatalf("Load accepted %s=%q", tc.key, tc.value)
			}
		})
	}
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_USE_MOCK", "false")

	if _, err := Load(); err == nil {
		t.Fatal("Load accepted mock disabled without DATABASE_URL")
	}
}
