package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/Guilherme-dev15/finance-app/internal/auth"
	"github.com/Guilherme-dev15/finance-app/internal/cache"
	"github.com/Guilherme-dev15/finance-app/internal/config"
	"github.com/Guilherme-dev15/finance-app/internal/httpapi"
	"github.com/Guilherme-dev15/finance-app/internal/middleware"
	"github.com/Guilherme-dev15/finance-app/internal/service"
	"github.com/Guilherme-dev15/finance-app/internal/storage/sqlite"
	"github.com/Guilherme-dev15/finance-app/pkg/logging"
)

func main() {
	logging.Setup()

	if err := run(); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer store.Close()
	slog.Info("Database ready", "path", cfg.DBPath)

	var simCache cache.Cache
	if cfg.RedisAddr != "" {
		redisCache := cache.NewRedisCache(cfg.RedisAddr)
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := redisCache.Ping(pingCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("failed to reach redis at %s: %w", cfg.RedisAddr, err)
		}
		simCache = redisCache
		slog.Info("Using Redis cache", "addr", cfg.RedisAddr)
	} else {
		simCache = cache.NewMemoryCache()
		slog.Info("Using in-memory cache")
	}

	logger := slog.Default()
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
	authenticator := auth.NewPasswordAuthenticator(store)
	debtService := service.NewDebtService(store, simCache, logger)
	assistantService := service.NewAssistantService(store, logger)

	mux := httpapi.NewRouter(
		httpapi.NewAuthHandler(authenticator, jwtManager, logger),
		httpapi.NewDebtHandler(debtService),
		httpapi.NewAssistantHandler(assistantService),
		jwtManager,
	)

	limiter := middleware.NewRateLimiter(cfg.RateLimit, time.Minute)
	defer limiter.Stop()

	var handler http.Handler = mux
	handler = middleware.RateLimit(limiter, handler)
	handler = middleware.Metrics(handler)
	handler = middleware.Logging(handler)

	server := &http.Server{
		Addr: fmt.Sprintf(":%d", cfg.Port),
		// h2c lets local clients and proxies speak HTTP/2 without TLS.
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-stop:
		slog.Info("Shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	slog.Info("Server stopped")
	return nil
}
