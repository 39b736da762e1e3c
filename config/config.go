// Package config loads application settings from a .env file and environment variables.
// Environment variables always take precedence over .env file values.
package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration, read once at process start.
type Config struct {
	// PostgreSQL connection strings. TestDatabaseURL is used when Env is "test".
	DatabaseURL     string
	TestDatabaseURL string

	// Secret signs and verifies login tokens (required).
	Secret string

	// Env is one of development, test or production. The testing reset
	// endpoint is mounted only outside production.
	Env string

	// Server
	Debug      bool
	Port       string
	TLSDomains []string
}

// Load reads configuration from a .env file (if present) and then from
// environment variables. Environment variables always win.
func Load() *Config {
	// Silently load .env – OK if the file doesn't exist (production uses real env vars).
	if err := godotenv.Load(); err != nil {
		log.Println("config: no .env file found, using environment variables only")
	}

	v := viper.New()
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("PORT", ":3003")
	v.SetDefault("DEBUG", false)

	cfg := &Config{
		DatabaseURL:     v.GetString("DATABASE_URL"),
		TestDatabaseURL: v.GetString("TEST_DATABASE_URL"),
		Secret:          v.GetString("SECRET"),
		Env:             strings.ToLower(v.GetString("APP_ENV")),
		Debug:           v.GetBool("DEBUG"),
		Port:            v.GetString("PORT"),
		TLSDomains:      splitTrimmed(v.GetString("TLS_DOMAINS")),
	}

	cfg.validate()
	return cfg
}

// PostgresDSN returns the connection string for the configured environment.
// The test database is selected when APP_ENV=test.
func (c *Config) PostgresDSN() string {
	if c.Env == "test" && c.TestDatabaseURL != "" {
		return c.TestDatabaseURL
	}
	return c.DatabaseURL
}

// JWTKey returns the token signing key as a byte slice.
func (c *Config) JWTKey() []byte {
	return []byte(c.Secret)
}

// IsProduction reports whether the app runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) validate() {
	if c.PostgresDSN() == "" {
		log.Fatal("config: DATABASE_URL must be set")
	}
	if c.Secret == "" {
		log.Fatal("config: SECRET must be set")
	}
}

func splitTrimmed(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
