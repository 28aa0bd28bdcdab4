package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/creatorchain/creatorchain/internal/api/middleware"
	"github.com/creatorchain/creatorchain/internal/api/rest"
	"github.com/creatorchain/creatorchain/internal/api/shared/executor"
	"github.com/creatorchain/creatorchain/internal/logger"
	"github.com/creatorchain/creatorchain/internal/ratelimit"
	"github.com/creatorchain/creatorchain/internal/stream"
)

// Config holds the server configuration
type Config struct {
	Debug       bool
	Host        string
	Port        int
	ReadTimeout time.Duration
	IdleTimeout time.Duration
	// AllowedOrigins restricts CORS; empty allows any origin
	AllowedOrigins []string
	Auth           middleware.AuthConfig
}

// Server wraps the HTTP server
type Server struct {
	config     Config
	executor   executor.Executor
	hub        stream.Hub
	limiter    ratelimit.Limiter
	httpServer *http.Server
}

// New creates a new API server
func New(cfg Config, exec executor.Executor, hub stream.Hub, limiter ratelimit.Limiter) *Server {
	return &Server{
		config:   cfg,
		executor: exec,
		hub:      hub,
		limiter:  limiter,
	}
}

// Router builds the gin engine with middleware and routes
func (s *Server) Router() *gin.Engine {
	// Set Gin mode based on debug flag
	if s.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(s.config.AllowedOrigins))

	restHandler := rest.NewHandler(s.config.Debug, s.executor, s.hub)
	rest.SetupRoutes(router, restHandler, s.config.Auth, s.limiter)

	return router
}

// Start initializes and starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Addr:        addr,
		Handler:     s.Router(),
		ReadTimeout: s.config.ReadTimeout,
		IdleTimeout: s.config.IdleTimeout,
		// No WriteTimeout: notification streams stay open indefinitely
	}

	logger.Info("Starting API server",
		zap.String("address", addr),
	)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down API server")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	return nil
}
