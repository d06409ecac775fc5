package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/davidbz/aria/internal/config"
	"github.com/davidbz/aria/internal/http/middleware"
	"github.com/davidbz/aria/internal/observability"
)

// Server represents the HTTP server.
type Server struct {
	config      config.ServerConfig
	handler     *Handler
	middlewares middleware.Middleware
	srv         *http.Server
}

// NewServer creates a new HTTP server.
func NewServer(
	cfg *config.ServerConfig,
	handler *Handler,
	middlewares middleware.Middleware,
) *Server {
	return &Server{
		config:      *cfg,
		handler:     handler,
		middlewares: middlewares,
		srv:         nil,
	}
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	mux := http.NewServeMux()

	// Gemini Developer API surface.
	mux.HandleFunc("/api/google-ai/generate-text", s.handler.HandleGenerateText)
	mux.HandleFunc("/api/google-ai/generate-music-intro", s.handler.HandleGenerateMusicIntro)
	mux.HandleFunc("/api/google-ai/generate-playlist-description", s.handler.HandleGeneratePlaylistDescription)
	mux.HandleFunc("/api/google-ai/analyze-music-preferences", s.handler.HandleAnalyzeMusicPreferences)
	mux.HandleFunc("/api/google-ai/service-status", s.handler.HandleServiceStatus)
	mux.HandleFunc("/api/google-ai/test-connection", s.handler.HandleTestConnection)
	mux.HandleFunc("/api/google-ai/radio-intro", s.handler.HandleRadioIntro)

	// Vertex AI surface.
	mux.HandleFunc("/api/vertex-ai/generate-content", s.handler.HandleGenerateContent)
	mux.HandleFunc("/api/vertex-ai/analyze-music", s.handler.HandleAnalyzeMusic)
	mux.HandleFunc("/api/vertex-ai/music-recommendations", s.handler.HandleMusicRecommendations)
	mux.HandleFunc("/api/vertex-ai/status", s.handler.HandleVertexStatus)

	// SoundCloud proxy.
	mux.HandleFunc("/api/soundcloud/auth/url", s.handler.HandleSoundCloudAuthURL)
	mux.HandleFunc("/api/soundcloud/auth/token", s.handler.HandleSoundCloudToken)
	mux.HandleFunc("/api/soundcloud/tracks", s.handler.HandleSoundCloudTracks)

	mux.HandleFunc("/health", s.handler.HandleHealth)

	// Apply middleware chain.
	handlerWithMiddleware := s.middlewares(mux)

	// Create server with timeouts.
	s.srv = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      handlerWithMiddleware,
		ReadTimeout:  time.Duration(s.config.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.config.WriteTimeout) * time.Second,
	}

	ctx := context.Background()
	observability.FromContext(ctx).Info("starting HTTP server", observability.Int("port", s.config.Port))

	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	observability.FromContext(ctx).Info("shutting down HTTP server")

	if s.srv == nil {
		return nil
	}

	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}
