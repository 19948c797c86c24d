// Package api exposes the refinement service over HTTP: session
// lifecycle operations, artifact retrieval, the WebSocket event stream
// and health reporting.
package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/roundtable-ai/roundtable/pkg/config"
	"github.com/roundtable-ai/roundtable/pkg/database"
	"github.com/roundtable-ai/roundtable/pkg/events"
	"github.com/roundtable-ai/roundtable/pkg/queue"
	"github.com/roundtable-ai/roundtable/pkg/services"
)

// Server is the HTTP API server.
type Server struct {
	cfg            *config.Config
	sessionService *services.SessionService
	db             *database.Client
	workerPool     *queue.WorkerPool
	connManager    *events.ConnectionManager

	echo *echo.Echo
	http *http.Server
}

// NewServer creates the API server. The database client, worker pool
// and connection manager are optional (embedded/library deployments run
// without them) and are wired via the setters.
func NewServer(cfg *config.Config, sessionService *services.SessionService) *Server {
	s := &Server{
		cfg:            cfg,
		sessionService: sessionService,
	}

	e := echo.New()
	e.Use(securityHeaders(), requestLogger())
	s.registerRoutes(e)
	s.echo = e
	return s
}

// SetDatabase wires the database client for health reporting.
func (s *Server) SetDatabase(db *database.Client) { s.db = db }

// SetWorkerPool wires the worker pool for health reporting.
func (s *Server) SetWorkerPool(pool *queue.WorkerPool) { s.workerPool = pool }

// SetConnectionManager wires the WebSocket connection manager.
func (s *Server) SetConnectionManager(m *events.ConnectionManager) { s.connManager = m }

func (s *Server) registerRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.GET("/health", s.healthHandler)
	v1.GET("/ws", s.wsHandler)

	v1.POST("/sessions", s.startSessionHandler)
	v1.GET("/sessions", s.listSessionsHandler)
	v1.GET("/sessions/:id", s.getSessionHandler)
	v1.GET("/sessions/:id/status", s.sessionStatusHandler)
	v1.POST("/sessions/:id/continue", s.continueSessionHandler)
	v1.POST("/sessions/:id/cancel", s.cancelSessionHandler)
	v1.DELETE("/sessions/:id", s.deleteSessionHandler)

	v1.GET("/sessions/:id/versions", s.listVersionsHandler)
	v1.GET("/sessions/:id/versions/:version", s.getVersionHandler)
	v1.GET("/sessions/:id/reviews", s.getReviewsHandler)
	v1.GET("/sessions/:id/report", s.getReportHandler)
}

// Start begins serving on addr. Blocks until the server stops.
func (s *Server) Start(addr string) error {
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.http.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}
