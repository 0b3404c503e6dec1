package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env       string
	DSN       string
	JWTSecret string
	JWTTTL    time.Duration
	AppPort   string

	LogLevel  string
	LogFormat string

	SeedAdminEmail    string
	SeedAdminPassword string
}

// Production switches audit output to the terse operational format.
func (c Config) Production() bool {
	return c.Env == "production"
}

// Load reads .env when present, then the process environment.
func Load() (Config, error) {
	// a missing .env is normal outside local development
	_ = godotenv.Load()

	env := strings.ToLower(getEnv("APP_ENV", "development"))
	// the verbose audit trail is written at debug outside production
	level := "debug"
	if env == "production" {
		level = "info"
	}

	cfg := Config{
		Env:               env,
		DSN:               os.Getenv("MYSQL_DSN"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		AppPort:           getEnv("APP_PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", level),
		LogFormat:         getEnv("LOG_FORMAT", "json"),
		SeedAdminEmail:    strings.TrimSpace(strings.ToLower(getEnv("SEED_ADMIN_EMAIL", "admin@fitdesk.local"))),
		SeedAdminPassword: os.Getenv("SEED_ADMIN_PASSWORD"),
	}

	ttl, err := time.ParseDuration(getEnv("JWT_TTL", "24h"))
	if err != nil {
		return Config{}, fmt.Errorf("parse JWT_TTL: %w", err)
	}
	cfg.JWTTTL = ttl

	if cfg.JWTSecret == "" && !cfg.Production() {
		cfg.JWTSecret = "dev-secret-only"
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []string
	if c.DSN == "" {
		errs = append(errs, "MYSQL_DSN is required")
	}
	if c.JWTSecret == "" {
		errs = append(errs, "JWT_SECRET is required in production")
	}
	if c.Production() && len(c.JWTSecret) < 32 {
		errs = append(errs, "JWT_SECRET must be at least 32 chars in production")
	}
	if c.JWTTTL <= 0 || c.JWTTTL > 7*24*time.Hour {
		errs = append(errs, "JWT_TTL must be between 1s and 168h")
	}
	if c.SeedAdminPassword != "" && len(c.SeedAdminPassword) < 8 {
		errs = append(errs, "SEED_ADMIN_PASSWORD must be at least 8 characters")
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
