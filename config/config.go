// Package config loads application settings from a .env file and environment variables.
// Environment variables always take precedence over .env file values.
package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	// PostgreSQL – either set DatabaseURL directly, or the individual fields.
	DatabaseURL string
	DBUser      string
	DBPass      string
	DBHost      string
	DBPort      string
	DBName      string
	DBSSLMode   string

	// JWT signing secret (required in production).
	JWTSecret string

	// Server
	Debug      bool
	Port       string
	TLSDomains []string

	// Sport data provider.
	BiathlonAPIURL  string
	BiathlonRPS     float64
	BiathlonTimeout time.Duration

	// Importer fan-out limits.
	ImportEventConcurrency       int
	ImportCompetitionConcurrency int
	ImportCompetitorConcurrency  int
}

// Load reads configuration from a .env file (if present) and then from
// environment variables. Environment variables always win.
func Load() *Config {
	cfg := fromViper(newViper())
	if err := cfg.validate(); err != nil {
		log.Fatal(err)
	}
	return cfg
}

func fromViper(v *viper.Viper) *Config {
	// Defaults
	v.SetDefault("DB_USER", "biathlon")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_NAME", "biathlonpicks")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("PORT", ":9000")
	v.SetDefault("TLS_DOMAINS", "")
	v.SetDefault("DEBUG", false)
	v.SetDefault("BIATHLON_API_URL", "https://www.biathlonresults.com/modules/sportapi/api")
	v.SetDefault("BIATHLON_RPS", 10)
	v.SetDefault("BIATHLON_TIMEOUT", "30s")
	v.SetDefault("IMPORT_EVENT_CONCURRENCY", 2)
	v.SetDefault("IMPORT_COMPETITION_CONCURRENCY", 5)
	v.SetDefault("IMPORT_COMPETITOR_CONCURRENCY", 50)

	return &Config{
		DatabaseURL:                  v.GetString("DATABASE_URL"),
		DBUser:                       v.GetString("DB_USER"),
		DBPass:                       v.GetString("DB_PASS"),
		DBHost:                       v.GetString("DB_HOST"),
		DBPort:                       v.GetString("DB_PORT"),
		DBName:                       v.GetString("DB_NAME"),
		DBSSLMode:                    v.GetString("DB_SSLMODE"),
		JWTSecret:                    v.GetString("JWT_SECRET"),
		Debug:                        v.GetBool("DEBUG"),
		Port:                         v.GetString("PORT"),
		TLSDomains:                   splitTrimmed(v.GetString("TLS_DOMAINS")),
		BiathlonAPIURL:               strings.TrimRight(v.GetString("BIATHLON_API_URL"), "/"),
		BiathlonRPS:                  v.GetFloat64("BIATHLON_RPS"),
		BiathlonTimeout:              v.GetDuration("BIATHLON_TIMEOUT"),
		ImportEventConcurrency:       v.GetInt("IMPORT_EVENT_CONCURRENCY"),
		ImportCompetitionConcurrency: v.GetInt("IMPORT_COMPETITION_CONCURRENCY"),
		ImportCompetitorConcurrency:  v.GetInt("IMPORT_COMPETITOR_CONCURRENCY"),
	}
}

// PostgresDSN returns the full PostgreSQL connection string.
// DATABASE_URL takes precedence over individual fields.
func (c *Config) PostgresDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser,
		c.DBPass,
		c.DBHost,
		c.DBPort,
		c.DBName,
		c.DBSSLMode,
	)
}

// JWTKey returns the JWT signing key as a byte slice.
func (c *Config) JWTKey() []byte {
	return []byte(c.JWTSecret)
}

func (c *Config) validate() error {
	if c.DatabaseURL == "" && c.DBPass == "" {
		return fmt.Errorf("config: DATABASE_URL or DB_PASS must be set")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("config: JWT_SECRET must be set")
	}
	if c.BiathlonAPIURL == "" {
		return fmt.Errorf("config: BIATHLON_API_URL must not be empty")
	}
	if c.BiathlonTimeout <= 0 {
		return fmt.Errorf("config: BIATHLON_TIMEOUT must be positive")
	}
	if c.ImportEventConcurrency < 1 || c.ImportCompetitionConcurrency < 1 || c.ImportCompetitorConcurrency < 1 {
		return fmt.Errorf("config: import concurrency limits must be at least 1")
	}
	return nil
}

func newViper() *viper.Viper {
	// Silently load .env – OK if the file doesn't exist (production uses real env vars).
	if err := godotenv.Load(); err != nil {
		log.Println("config: no .env file found, using environment variables only")
	}

	v := viper.New()
	v.AutomaticEnv()
	return v
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
