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

	"github.com/lincooln/dockboard/internal/adapter/docker"
	"github.com/lincooln/dockboard/internal/adapter/httpserver"
	"github.com/lincooln/dockboard/internal/adapter/settings"
	"github.com/lincooln/dockboard/internal/adapter/sysinfo"
	"github.com/lincooln/dockboard/internal/app"
	"github.com/lincooln/dockboard/internal/discovery"
	"github.com/lincooln/dockboard/internal/platform/config"
	"github.com/lincooln/dockboard/internal/platform/logging"
)

const shutdownTimeout = 10 * time.Second

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func setupDocker() *docker.Source {
	source, err := docker.NewSource()
	if err != nil {
		slog.Error("Failed to create Docker client", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := source.Ping(ctx); err != nil {
		slog.Warn("Docker daemon not reachable yet, continuing anyway", "error", err)
	}

	return source
}

// hostIPResolver prefers the configured address and falls back to detecting
// the outbound interface.
func hostIPResolver(cfg *config.Config) func() string {
	return func() string {
		if cfg.HostIP != "" {
			return cfg.HostIP
		}
		return sysinfo.DetectHostIP()
	}
}

func runGracefulShutdown(srv *httpserver.Server) <-chan struct{} {
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

		close(done)
	}()

	return done
}

func main() {
	clock := clockwork.NewRealClock()

	cfg := setupConfig()

	// Initialize structured logging
	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Application starting", "env", cfg.AppEnv, "port", cfg.Port)

	source := setupDocker()
	defer func() { _ = source.Close() }()

	store := settings.NewStore(cfg.DataDir)

	hostIP := hostIPResolver(cfg)
	collector := sysinfo.NewCollector(hostIP, cfg.StatsCacheTTL, clock)

	facade := discovery.NewFacade(source, store, hostIP)
	appSvc := app.NewService(facade, store, source, source, source, collector, clock)

	healthChecks := []httpserver.HealthCheck{
		{Name: "docker", Check: source.Ping},
		{Name: "settings", Check: store.Ping},
	}

	srv, err := httpserver.NewServer(cfg, appSvc, healthChecks)
	if err != nil {
		slog.Error("Failed to create server", "error", err)
		os.Exit(1)
	}

	done := runGracefulShutdown(srv)

	slog.Info("Server starting", "port", cfg.Port)
	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
}
