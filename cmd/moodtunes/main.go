// Command moodtunes runs the mood tracking and playlist generation API.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	spotifyauth "github.com/zmb3/spotify/v2/auth"

	"github.com/justestif/moodtunes/internal/config"
	"github.com/justestif/moodtunes/internal/db"
	"github.com/justestif/moodtunes/internal/recommend"
	"github.com/justestif/moodtunes/internal/token"
	"github.com/justestif/moodtunes/internal/web"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("parsing LOG_LEVEL: %w", err)
	}
	log := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()

	if !cfg.SpotifyEnabled() {
		log.Warn().Msg("SPOTIFY_ID or SPOTIFY_SECRET not set, Spotify integration disabled")
	}

	ctx := context.Background()
	database, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer database.Close()

	if err := database.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("preparing schema: %w", err)
	}

	auth := spotifyauth.New(
		spotifyauth.WithClientID(cfg.SpotifyID),
		spotifyauth.WithClientSecret(cfg.SpotifySecret),
		spotifyauth.WithRedirectURL(cfg.SpotifyRedirectURI),
		spotifyauth.WithScopes(
			spotifyauth.ScopeUserReadPrivate,
			spotifyauth.ScopeUserReadEmail,
			spotifyauth.ScopePlaylistModifyPublic,
			spotifyauth.ScopePlaylistModifyPrivate,
			spotifyauth.ScopeUserModifyPlaybackState,
		),
	)

	tokens := token.NewManager(auth, database.Users(), log)
	recommender := recommend.New(log)
	handlers := web.NewHandlers(database, tokens, recommender, auth, cfg.SpotifyEnabled(), log)

	server := web.NewServer(web.ServerConfig{
		Addr:      cfg.Addr,
		JWTSecret: cfg.JWTSecret,
		Handlers:  handlers,
		Log:       log,
	})

	return server.Run()
}
