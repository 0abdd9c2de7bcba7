// Package web exposes the HTTP API for mood logging, Spotify account
// linking, playlist generation and playback control.
package web

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
)

// ServerConfig holds server configuration.
type ServerConfig struct {
	Addr      string
	JWTSecret string
	Handlers  *Handlers
	Log       zerolog.Logger
}

// Server is the HTTP server for the API.
type Server struct {
	router   chi.Router
	server   *http.Server
	handlers *Handlers
	log      zerolog.Logger
}

// NewServer creates the server with middleware and routes configured.
func NewServer(cfg ServerConfig) *Server {
	router := chi.NewRouter()

	s := &Server{
		router:   router,
		handlers: cfg.Handlers,
		log:      cfg.Log,
	}

	s.setupMiddleware()
	s.setupRoutes(cfg.JWTSecret)

	s.server = &http.Server{
		Addr:         cfg.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// setupMiddleware configures middleware for the router.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(hlog.NewHandler(s.log))
	s.router.Use(hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Dur("duration", duration).
			Msg("request")
	}))
}

// setupRoutes configures routes for the API.
func (s *Server) setupRoutes(jwtSecret string) {
	s.router.Route("/v1", func(r chi.Router) {
		r.Get("/health", s.handlers.Health)

		// The OAuth redirect carries no bearer token; identity comes
		// from the cookie set by connect.
		r.Get("/spotify/callback", s.handlers.SpotifyCallback)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth(jwtSecret))

			r.Get("/spotify/connect", s.handlers.SpotifyConnect)
			r.Get("/spotify/status", s.handlers.SpotifyStatus)
			r.Delete("/spotify", s.handlers.SpotifyDisconnect)

			r.Post("/moods", s.handlers.CreateMood)
			r.Get("/moods", s.handlers.ListMoods)
			r.Get("/moods/summary", s.handlers.MoodSummary)
			r.Post("/moods/{id}/playlist", s.handlers.GeneratePlaylist)

			r.Get("/tracks/search", s.handlers.SearchTracks)

			r.Put("/player/play", s.handlers.PlayerPlay)
			r.Put("/player/pause", s.handlers.PlayerPause)
		})
	})
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	s.log.Info().Str("addr", s.server.Addr).Msg("starting server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Run starts the server and handles graceful shutdown on interrupt signals.
func (s *Server) Run() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := s.Start(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-stop:
		s.log.Info().Msg("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	s.log.Info().Msg("server stopped")
	return nil
}
