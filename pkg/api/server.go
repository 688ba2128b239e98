// Package api provides the HTTP API for the session-analysis service.
package api

import (
	"context"
	"net"
	"net/http"

	echo "github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"

	"github.com/evolvedtroglodyte/therabridge/pkg/config"
	"github.com/evolvedtroglodyte/therabridge/pkg/database"
	"github.com/evolvedtroglodyte/therabridge/pkg/queue"
	"github.com/evolvedtroglodyte/therabridge/pkg/services"
)

// Server is the HTTP API server.
type Server struct {
	echo           *echo.Echo
	httpServer     *http.Server
	cfg            *config.Config
	dbClient       *database.Client
	sessionService *services.SessionService
	triggerService *services.TriggerService
	workerPool     *queue.WorkerPool // nil in tests without a pool
}

// NewServer creates a new API server with Echo v5.
func NewServer(
	cfg *config.Config,
	dbClient *database.Client,
	sessionService *services.SessionService,
	triggerService *services.TriggerService,
	workerPool *queue.WorkerPool,
) *Server {
	e := echo.New()

	s := &Server{
		echo:           e,
		cfg:            cfg,
		dbClient:       dbClient,
		sessionService: sessionService,
		triggerService: triggerService,
		workerPool:     workerPool,
	}

	s.setupRoutes()
	return s
}

// setupRoutes registers all API routes.
func (s *Server) setupRoutes() {
	// Transcripts of long sessions run large, but payloads over 8 MiB are
	// rejected at the HTTP read level before deserialization.
	s.echo.Use(middleware.BodyLimit(8 * 1024 * 1024))
	s.echo.Use(middleware.Recover())

	s.echo.GET("/health", s.healthHandler)

	v1 := s.echo.Group("/api/v1")
	v1.POST("/sessions", s.createSessionHandler)
	v1.GET("/sessions", s.listSessionsHandler)
	v1.GET("/sessions/:id", s.getSessionHandler)
	v1.GET("/sessions/:id/status", s.getStatusHandler)
	v1.POST("/sessions/:id/analyze", s.analyzeHandler)
	v1.POST("/sessions/:id/retry", s.retryHandler)
	v1.POST("/sessions/:id/rerun", s.rerunHandler)
	v1.POST("/sessions/:id/cancel", s.cancelHandler)
}

// Start starts the HTTP server on the given address (blocking).
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:    addr,
		Handler: s.echo,
	}
	return s.httpServer.ListenAndServe()
}

// StartWithListener starts the HTTP server on a pre-created listener.
// Used by test infrastructure to serve on a random OS-assigned port.
func (s *Server) StartWithListener(ln net.Listener) error {
	s.httpServer = &http.Server{Handler: s.echo}
	return s.httpServer.Serve(ln)
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
