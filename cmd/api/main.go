package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"postboard/internal/config"
	"postboard/internal/consul"
	"postboard/internal/logger"
	"postboard/internal/server"
)

func gracefulShutdown(apiServer *http.Server, registrar consul.ServiceRegistrar, serviceID string, done chan bool) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	slog.Info("Shutting down gracefully, press Ctrl+C again to force")
	stop()

	if registrar != nil {
		if err := registrar.Deregister(serviceID); err != nil {
			slog.Warn("Failed to deregister from Consul", "error", err)
		} else {
			slog.Info("Deregistered from Consul", "service_id", serviceID)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := apiServer.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}

	slog.Info("Server exiting")
	done <- true
}

// register announces the service to Consul when CONSUL_HTTP_ADDR is set
func register(cfg *config.Config) (consul.ServiceRegistrar, string, error) {
	if cfg.ConsulAddr == "" {
		return nil, "", nil
	}

	client, err := consul.NewClient(cfg.ConsulAddr, cfg.ConsulToken)
	if err != nil {
		return nil, "", err
	}

	svc, err := consul.NewServiceConfig(cfg.ServiceHost, cfg.Port)
	if err != nil {
		return nil, "", err
	}

	// Clean up a registration left behind by a crashed instance.
	_ = client.Deregister(svc.ID)

	if err := client.Register(svc); err != nil {
		return nil, "", err
	}
	return client, svc.ID, nil
}

func main() {
	logger.SetDefault(logger.New())

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting postboard",
		"port", cfg.Port,
		"env", cfg.Env,
		"reactions_backend", cfg.ReactionsBackend,
		"require_auth", cfg.RequireAuth,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	app, err := server.New(ctx, cfg)
	cancel()
	if err != nil {
		slog.Error("Failed to initialize server", "error", err)
		os.Exit(1)
	}

	registrar, serviceID, err := register(cfg)
	if err != nil {
		slog.Error("Failed to register service with Consul", "error", err)
		_ = app.Close()
		os.Exit(1)
	}
	if registrar != nil {
		slog.Info("Registered with Consul", "service_id", serviceID, "consul", cfg.ConsulAddr)
	}

	apiServer := app.HTTPServer()

	done := make(chan bool, 1)
	go gracefulShutdown(apiServer, registrar, serviceID, done)

	slog.Info("Listening", "addr", apiServer.Addr)
	if err := apiServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("HTTP server error", "error", err)
		_ = app.Close()
		os.Exit(1)
	}

	<-done
	if err := app.Close(); err != nil {
		slog.Warn("Failed to close server resources", "error", err)
	}
	slog.Info("Graceful shutdown complete")
}
