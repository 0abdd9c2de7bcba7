// Package config loads service configuration from the environment.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the service configuration.
type Config struct {
	Addr        string `envconfig:"ADDR" default:"127.0.0.1:8080"`
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`

	// JWTSecret verifies the bearer tokens issued by the account service.
	JWTSecret string `envconfig:"JWT_SECRET" required:"true"`

	// Spotify OAuth app registration. When id or secret is missing the
	// integration is disabled with a logged warning rather than a crash.
	SpotifyID          string `envconfig:"SPOTIFY_ID"`
	SpotifySecret      string `envconfig:"SPOTIFY_SECRET"`
	SpotifyRedirectURI string `envconfig:"SPOTIFY_REDIRECT_URI" default:"http://127.0.0.1:8080/v1/spotify/callback"`
}

// Load reads configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("loading config: %w", err)
	}
	if len(cfg.JWTSecret) < 32 {
		return Config{}, fmt.Errorf("JWT_SECRET must be at least 32 characters")
	}
	return cfg, nil
}

// SpotifyEnabled reports whether the Spotify OAuth app is configured.
func (c Config) SpotifyEnabled() bool {
	return c.SpotifyID != "" && c.SpotifySecret != ""
}
