package config

import (
	"errors"
	"fmt"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"io/fs"
	"log/slog"
	"time"
)

type ICEProfilesAppConfig struct {
	ServerAddr             string        `env:"SERVER_ADDR" envDefault:"0.0.0.0:8080"`
	LogLevel               string        `env:"LOG_LEVEL" envDefault:"info"`
	Environment            string        `env:"ICE_ENVIRONMENT" envDefault:"production"`
	Profile                string        `env:"ICE_PROFILE" envDefault:"us"`
	AllowedOrigins         []string      `env:"ALLOWED_ORIGINS" envSeparator:","`
	ConfigTTL              time.Duration `env:"ICE_CONFIG_TTL" envDefault:"1h"`
	CloudflareTURNKey      string        `env:"CLOUDFLARE_TURN_KEY"`
	CloudflareTURNAPIToken string        `env:"CLOUDFLARE_TURN_API_TOKEN"`
}

// Load reads an optional .env file and then the process environment.
// Variables already set in the environment win over .env values.
func Load() (*ICEProfilesAppConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var cfg ICEProfilesAppConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

// UseCloudflare reports whether TURN credentials come from Cloudflare instead of the profile table.
func (c *ICEProfilesAppConfig) UseCloudflare() bool {
	return c.CloudflareTURNKey != "" && c.CloudflareTURNAPIToken != ""
}

func (c *ICEProfilesAppConfig) SlogLevel() slog.Level {
	logLevel := slog.LevelInfo
	if err := logLevel.UnmarshalText([]byte(c.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	return logLevel
}
