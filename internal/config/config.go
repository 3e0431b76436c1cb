package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all runtime settings for the workbench server. Values are
// loaded from environment variables with sensible defaults for local
// development.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Logging  LoggingConfig
	Auth     AuthConfig
}

type ServerConfig struct {
	Addr string
}

type DatabaseConfig struct {
	URL             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	UseMock         bool
}

type LoggingConfig struct {
	Level string
}

type AuthConfig struct {
	Session SessionConfig
}

type SessionConfig struct {
	Lifetime     time.Duration
	CookieName   string
	CookieDomain string
	CookieSecure bool
}

// Load reads configuration from the environment.
func Load() (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Addr: firstNonEmpty(os.Getenv("MAGISTRAL_ADDR"), ":8080"),
		},
		Database: DatabaseConfig{
			URL: firstNonEmpty(os.Getenv("DATABASE_URL"), ""),
		},
		Logging: LoggingConfig{
			Level: firstNonEmpty(os.Getenv("LOG_LEVEL"), "info"),
		},
		Auth: AuthConfig{
			Session: SessionConfig{
				CookieName:   firstNonEmpty(os.Getenv("SESSION_COOKIE_NAME"), "magistral_session"),
				CookieDomain: os.Getenv("SESSION_COOKIE_DOMAIN"),
			},
		},
	}

	var err error
	if cfg.Database.MaxIdleConns, err = parseIntWithDefault("DATABASE_MAX_IDLE_CONNS", 2); err != nil {
		return Config{}, err
	}
	if cfg.Database.MaxOpenConns, err = parseIntWithDefault("DATABASE_MAX_OPEN_CONNS", 10); err != nil {
		return Config{}, err
	}
	if cfg.Database.ConnMaxLifetime, err = parseDurationWithDefault("DATABASE_CONN_MAX_LIFETIME", time.Hour); err != nil {
		return Config{}, err
	}
	if cfg.Database.ConnMaxIdleTime, err = parseDurationWithDefault("DATABASE_CONN_MAX_IDLE_TIME", 30*time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.Database.UseMock, err = parseBoolWithDefault("DATABASE_USE_MOCK", cfg.Database.URL == ""); err != nil {
		return Config{}, err
	}
	if cfg.Auth.Session.Lifetime, err = parseDurationWithDefault("SESSION_LIFETIME", 12*time.Hour); err != nil {
		return Config{}, err
	}
	if cfg.Auth.Session.CookieSecure, err = parseBoolWithDefault("SESSION_COOKIE_SECURE", false); err != nil {
		return Config{}, err
	}

	if !cfg.Database.UseMock && cfg.Database.URL == "" {
		return Config{}, fmt.Errorf("config: DATABASE_URL is required unless DATABASE_USE_MOCK is enabled")
	}

	return cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func parseIntWithDefault(key string, def int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("config: invalid %s: %w", key, err)
	}
	return n, nil
}

func parseDurationWithDefault(key string, def time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("config: invalid %s: %w", key, err)
	}
	return d, nil
}

func parseBoolWithDefault(key string, def bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("config: invalid %s: %w", key, err)
	}
	return b, nil
}
