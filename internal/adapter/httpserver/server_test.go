package httpserver

import (
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"

	"github.com/StudentDeveloperCommunity/Office-of-International-Affair-Backend/internal/adapter/metrics"
	"github.com/StudentDeveloperCommunity/Office-of-International-Affair-Backend/internal/platform/config"
)

// stubRegistrar stands in for the out-of-tree route collaborator.
type stubRegistrar struct {
	register func(g *echo.Group, deps Deps)
}

func (r stubRegistrar) Register(g *echo.Group, deps Deps) {
	r.register(g, deps)
}

func newTestServer(t *testing.T, healthChecks []HealthCheck, registrars ...RouteRegistrar) *Server {
	t.Helper()

	cfg := &config.Config{
		AppEnv: "test",
		Port:   "8000",
		DBName: "medicapsoia",
	}
	reg := metrics.NewRegistry()

	return NewServer(cfg, clockwork.NewFakeClock(), reg, metrics.NewHTTPMetrics(reg), healthChecks, Deps{}, registrars...)
}
