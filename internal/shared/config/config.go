package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds application configuration
type Config struct {
	Version     string `env:"VERSION" envDefault:"0.1.0"`
	Port        int    `env:"PORT" envDefault:"8080"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	SentryDSN   string `env:"SENTRY_DSN"`
	Timezone    string `env:"TIMEZONE" envDefault:"Local"`

	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"10s"`

	StravaBaseURL     string `env:"STRAVA_BASE_URL" envDefault:"https://www.strava.com/api/v3"`
	StravaAccessToken string `env:"STRAVA_ACCESS_TOKEN,required,notEmpty"`
	StravaPerPage     int    `env:"STRAVA_PER_PAGE" envDefault:"30"`
	TopN              int    `env:"DASHBOARD_TOP_N" envDefault:"3"`

	TelemetryEndpoint    string `env:"TELEMETRY_ENDPOINT" envDefault:"https://jsonplaceholder.typicode.com/posts"`
	TelemetryJournalSize int    `env:"TELEMETRY_JOURNAL_SIZE" envDefault:"500"`

	location *time.Location
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", cfg.Timezone, err)
	}
	cfg.location = loc

	if cfg.StravaPerPage <= 0 {
		return nil, fmt.Errorf("STRAVA_PER_PAGE must be positive, got %d", cfg.StravaPerPage)
	}
	if cfg.TopN < 0 {
		return nil, fmt.Errorf("DASHBOARD_TOP_N must not be negative, got %d", cfg.TopN)
	}
	return cfg, nil
}

func (c *Config) IsEnvProd() bool {
	if c.Environment == "prod" && c.SentryDSN != "" {
		return true
	}
	return false
}

// Location returns the zone used for calendar windows. Defaults to time.Local.
func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.Local
	}
	return c.location
}
