package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/tair/favorites-service/docs"
	"github.com/tair/favorites-service/internal/app"
	"github.com/tair/favorites-service/internal/server"
	"github.com/tair/favorites-service/pkg/logger"
	"github.com/tair/favorites-service/pkg/tracing"
)

const (
	healthInterval  = 10 * time.Second
	shutdownTimeout = 15 * time.Second
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the gRPC health server",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tp, err := tracing.InitTracer(tracing.Config{
		ServiceName:    cfg.ServiceName,
		Enabled:        cfg.Tracing.Enabled,
		JaegerEndpoint: cfg.Tracing.JaegerEndpoint,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := tracing.Shutdown(context.Background(), tp); err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to shut down tracer")
		}
	}()

	backend, err := app.OpenBackend(ctx, cfg)
	if err != nil {
		return err
	}
	defer backend.Close()

	limiter, closeLimiter := app.ProvideLimiter(ctx, cfg)
	defer closeLimiter()

	publisher, closePublisher, err := app.ProvidePublisher(cfg)
	if err != nil {
		return err
	}
	defer closePublisher()

	reg := app.NewRegistry()
	api, err := app.InitializeAPI(cfg, backend, publisher, limiter, reg)
	if err != nil {
		return err
	}

	swagger := httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json"))
	httpServer := server.NewHTTPServer(cfg.HTTPPort, app.NewRouter(cfg, api, backend, reg, swagger))
	grpcServer := server.NewGRPCServer(backend, server.NewGRPCMetrics(reg))

	errCh := make(chan error, 2)
	go func() { errCh <- httpServer.Start() }()
	go func() { errCh <- grpcServer.Serve(cfg.GRPCPort) }()
	go grpcServer.WatchHealth(ctx, healthInterval)

	select {
	case <-ctx.Done():
		logger.Logger.Info().Msg("Shutting down servers...")
	case err = <-errCh:
		if err != nil {
			logger.Logger.Error().Err(err).Msg("Server stopped unexpectedly")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	grpcServer.Stop()
	return errors.Join(err, httpServer.Shutdown(shutdownCtx))
}
