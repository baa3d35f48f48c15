// Server entry point: config, infra, catalog store, admin gate, live hub, router, graceful shutdown.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/connectvan/backend/internal/admin"
	"github.com/connectvan/backend/internal/auth"
	"github.com/connectvan/backend/internal/config"
	"github.com/connectvan/backend/internal/i18n"
	"github.com/connectvan/backend/internal/infra"
	"github.com/connectvan/backend/internal/realtime"
	"github.com/connectvan/backend/internal/router"
	"github.com/connectvan/backend/internal/security"
	"github.com/connectvan/backend/internal/store"
)

func main() {
	envFile := config.LoadDotEnvUp(8)

	logger, _ := zap.NewProduction()
	if os.Getenv("APP_ENV") == "local" {
		logger, _ = zap.NewDevelopment()
	}
	defer func() { _ = logger.Sync() }()
	if envFile != "" {
		logger.Info("loaded env file", zap.String("path", envFile))
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("config load failed", zap.Error(err))
	}
	if err := i18n.Load(); err != nil {
		logger.Fatal("i18n load failed", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	infraDeps, err := infra.New(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("infra init failed", zap.Error(err))
	}
	defer infraDeps.Close()

	catalogStore := store.NewCatalogStore(infraDeps.Backend, logger)
	if err := catalogStore.Load(ctx); err != nil {
		logger.Fatal("catalog load failed", zap.Error(err))
	}

	gate, err := auth.NewGate(logger, cfg.Security,
		security.NewSessionManager(cfg.Security.SessionSecret, cfg.Security.SessionTTL),
		store.NewSessionStore(infraDeps.Redis, cfg.Security.SessionTTL))
	if err != nil {
		logger.Fatal("admin gate init failed", zap.Error(err))
	}

	hub := realtime.NewHub(logger, catalogStore, cfg.Listing.HeroRotateInterval)
	go hub.Run(ctx)

	handler := router.New(router.Dependencies{
		Config: cfg,
		Logger: logger,
		Redis:  infraDeps.Redis,
		Store:  catalogStore,
		Gate:   gate,
		Hub:    hub,
		Admin:  admin.NewService(logger, catalogStore),
		Images: admin.NewImageEncoder(cfg.Storage.UploadMaxBytes),
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("http server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server error", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	// Live viewers are hijacked connections that Shutdown does not wait for; stop the hub first.
	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}
