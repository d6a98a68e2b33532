package httpserver

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/StudentDeveloperCommunity/Office-of-International-Affair-Backend/internal/adapter/metrics"
)

const rootMessage = "Student Exchange Programs API - Medi-Caps University"

// allowedOrigins mirrors the deployed frontend plus local dev ports. The
// trailing wildcard keeps unlisted development clients unblocked.
var allowedOrigins = []string{
	"https://io.medicaps.ac.in",
	"http://localhost:3000",
	"http://127.0.0.1:3000",
	"http://localhost:3001",
	"http://127.0.0.1:3001",
	"*",
}

func (s *Server) registerRoutes(registrars []RouteRegistrar) {
	s.echo.Use(s.setupRequestLoggerMiddleware())
	s.echo.Use(middleware.Recover())
	s.echo.Use(correlationMiddleware)
	s.echo.Use(ErrorHandlingMiddleware())
	s.echo.Use(middleware.CORSWithConfig(corsConfig()))
	if s.httpMetrics != nil {
		s.echo.Use(s.httpMetrics.Middleware())
	}

	s.registerHealthRoutes()
	s.echo.GET("/metrics", echo.WrapHandler(metrics.Handler(s.registry)))

	api := s.echo.Group("/api")
	api.GET("/", s.handleRoot)
	for _, r := range registrars {
		r.Register(api, s.deps)
	}
}

func (s *Server) handleRoot(c echo.Context) error {
	response := map[string]string{"message": rootMessage}
	if err := c.JSON(http.StatusOK, response); err != nil {
		return fmt.Errorf("failed to write root response: %w", err)
	}
	return nil
}

func corsConfig() middleware.CORSConfig {
	return middleware.CORSConfig{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
		// The wildcard fallback predates this rewrite; without this flag Echo
		// refuses to combine it with credentials.
		UnsafeWildcardOriginWithAllowCredentials: true,
	}
}

func (s *Server) setupRequestLoggerMiddleware() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			}
			if v.Error != nil {
				attrs = append(attrs, "error", v.Error)
			}
			slog.Info("Request", attrs...)
			return nil
		},
	})
}
