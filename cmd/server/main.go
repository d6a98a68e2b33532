package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/StudentDeveloperCommunity/Office-of-International-Affair-Backend/internal/adapter/httpserver"
	"github.com/StudentDeveloperCommunity/Office-of-International-Affair-Backend/internal/adapter/media"
	"github.com/StudentDeveloperCommunity/Office-of-International-Affair-Backend/internal/adapter/metrics"
	"github.com/StudentDeveloperCommunity/Office-of-International-Affair-Backend/internal/adapter/mongo"
	"github.com/StudentDeveloperCommunity/Office-of-International-Affair-Backend/internal/app"
	"github.com/StudentDeveloperCommunity/Office-of-International-Affair-Backend/internal/platform/config"
	"github.com/StudentDeveloperCommunity/Office-of-International-Affair-Backend/internal/platform/logging"
)

const (
	startupTimeout  = 30 * time.Second
	shutdownTimeout = 10 * time.Second
)

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func setupMedia(cfg *config.Config) *media.Uploader {
	uploader, err := media.Setup(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		slog.Error("Failed to configure Cloudinary", "error", err)
		os.Exit(1)
	}
	if uploader.Enabled() {
		slog.Info("Cloudinary ready", "cloud_name", uploader.CloudName())
	} else {
		slog.Warn("Cloudinary credentials not set, media uploads disabled")
	}
	return uploader
}

func setupMongo(cfg *config.Config) *mongo.Client {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Only a malformed MONGO_URL fails here; the driver dials lazily, so an
	// unreachable deployment degrades the start instead of aborting it.
	client, err := mongo.Connect(ctx, cfg.MongoURL, cfg.DBName)
	if err != nil {
		slog.Error("Failed to create MongoDB client", "error", err)
		os.Exit(1)
	}
	return client
}

func runGracefulShutdown(srv *httpserver.Server, lifecycle *app.Lifecycle) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, cleaning up...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}

		lifecycle.Close(shutdownCtx)

		close(done)
	}()

	return done
}

func main() {
	clock := clockwork.NewRealClock()

	cfg := setupConfig()

	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Application starting", "env", cfg.AppEnv, "port", cfg.Port)

	uploader := setupMedia(cfg)

	db := setupMongo(cfg)

	lifecycle := app.NewLifecycle(db.Initialize, app.Closer{Name: "mongodb", Close: db.Close})

	registry := metrics.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(registry)

	healthChecks := []httpserver.HealthCheck{
		{Name: "mongodb", Check: db.Ping},
	}

	deps := httpserver.Deps{DB: db, Media: uploader}

	// Route collaborators register themselves here once they land; the
	// server hands them the /api group and the shared handles in deps.
	srv := httpserver.NewServer(cfg, clock, registry, httpMetrics, healthChecks, deps)

	done := runGracefulShutdown(srv, lifecycle)

	startupCtx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	lifecycle.Startup(startupCtx)
	cancel()

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
}
