// Package http provides the web display and metrics servers.
package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apikeyHTTP "github.com/allisson/apikeygen/internal/apikey/http"
	"github.com/allisson/apikeygen/internal/config"
	"github.com/allisson/apikeygen/internal/metrics"
)

// Server serves the web display.
type Server struct {
	server       *http.Server
	router       *gin.Engine
	logger       *slog.Logger
	shuttingDown chan struct{}
}

// NewServer creates a Server listening on host:port. Call SetupRouter before Start.
func NewServer(host string, port int, logger *slog.Logger) *Server {
	return &Server{
		server: &http.Server{
			Addr:              fmt.Sprintf("%s:%d", host, port),
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		logger:       logger,
		shuttingDown: make(chan struct{}),
	}
}

// SetupRouter registers middleware and routes. metricsProvider may be nil.
func (s *Server) SetupRouter(
	cfg *config.Config,
	keyHandler *apikeyHTTP.KeyHandler,
	metricsProvider *metrics.Provider,
) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), metricsProvider.Namespace()))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	router.GET("/", keyHandler.PageHandler)
	v1 := router.Group("/v1")
	{
		v1.GET("/api-keys", keyHandler.ListHandler)
	}

	s.router = router
}

// GetHandler returns the router, mainly for tests.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// Start listens until Shutdown is called.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return errors.New("router not configured")
	}
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown marks the server as not ready and drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	select {
	case <-s.shuttingDown:
	default:
		close(s.shuttingDown)
	}
	return s.server.Shutdown(ctx)
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (s *Server) readinessHandler(c *gin.Context) {
	select {
	case <-s.shuttingDown:
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready"})
	default:
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	}
}
