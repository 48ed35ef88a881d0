package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	backendhttp "github.com/vncsmyrnk/colorpoll/internal/adapters/backend/http"
	handlerhttp "github.com/vncsmyrnk/colorpoll/internal/adapters/handler/http"
	"github.com/vncsmyrnk/colorpoll/internal/config"
	"github.com/vncsmyrnk/colorpoll/internal/core/services"
	applog "github.com/vncsmyrnk/colorpoll/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}

	logger := applog.New(cfg.Env, cfg.LogLevel)
	slog.SetDefault(logger)

	api, err := backendhttp.NewClient(cfg.APIBaseURL, &stdhttp.Client{Timeout: cfg.BackendTimeout}, logger)
	if err != nil {
		logger.Error("invalid backend configuration", slog.Any("error", err))
		os.Exit(1)
	}

	syncService := services.NewSyncService(api, cfg.PollInterval, logger)

	handler := handlerhttp.NewHandler(
		handlerhttp.NewDashboardHandler(syncService, cfg.PollInterval),
		handlerhttp.NewVoteHandler(syncService),
		cfg.AllowedOrigins,
	)
	server := &stdhttp.Server{Addr: cfg.UIAddr, Handler: handler}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pingCtx, cancelPing := context.WithTimeout(ctx, 5*time.Second)
	if err := api.Ping(pingCtx); err != nil {
		logger.Warn("backend is not reachable yet, polling anyway", slog.String("url", cfg.APIBaseURL), slog.Any("error", err))
	} else {
		logger.Info("backend is up", slog.String("url", cfg.APIBaseURL))
	}
	cancelPing()

	if err := syncService.Start(ctx); err != nil {
		logger.Error("failed to start poll sync", slog.Any("error", err))
		os.Exit(1)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("dashboard listening", slog.String("addr", cfg.UIAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Gracefully shutting down...")

		syncService.Stop()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("client stopped with error", slog.Any("error", err))
		os.Exit(1)
	}
}
