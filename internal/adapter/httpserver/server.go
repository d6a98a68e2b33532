package httpserver

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/StudentDeveloperCommunity/Office-of-International-Affair-Backend/internal/adapter/media"
	"github.com/StudentDeveloperCommunity/Office-of-International-Affair-Backend/internal/adapter/metrics"
	"github.com/StudentDeveloperCommunity/Office-of-International-Affair-Backend/internal/adapter/mongo"
	"github.com/StudentDeveloperCommunity/Office-of-International-Affair-Backend/internal/platform/config"
)

// Deps carries the shared handles route collaborators receive when they
// register: the document-database client and the media uploader.
type Deps struct {
	DB    *mongo.Client
	Media *media.Uploader
}

// RouteRegistrar mounts a collaborator's routes onto the /api group. The
// business route modules implement this; the server only provides the mount
// point and the shared handles.
type RouteRegistrar interface {
	Register(g *echo.Group, deps Deps)
}

type Server struct {
	echo         *echo.Echo
	config       *config.Config
	clock        clockwork.Clock
	registry     *prometheus.Registry
	httpMetrics  *metrics.HTTPMetrics
	healthChecks []HealthCheck
	deps         Deps
	startTime    time.Time
}

func NewServer(cfg *config.Config, clock clockwork.Clock, registry *prometheus.Registry, httpMetrics *metrics.HTTPMetrics, healthChecks []HealthCheck, deps Deps, registrars ...RouteRegistrar) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	srv := &Server{
		echo:         e,
		config:       cfg,
		clock:        clock,
		registry:     registry,
		httpMetrics:  httpMetrics,
		healthChecks: healthChecks,
		deps:         deps,
		startTime:    clock.Now(),
	}

	srv.registerRoutes(registrars)

	return srv
}

func (s *Server) Start() error {
	slog.Info("Starting server", "port", s.config.Port)
	if err := s.echo.Start(":" + s.config.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	return nil
}
