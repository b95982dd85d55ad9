// api/main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"portfolio/api/analytics"
	"portfolio/api/config"
	"portfolio/api/database"
	"portfolio/api/handlers"
	"portfolio/api/store"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Load .env file at the very start
	if err := config.LoadDotEnv(); err != nil {
		log.WithError(err).Info("No .env file found or error loading .env")
	}

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("Invalid configuration")
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	blobs, closeStore, err := openStore(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize analytics storage")
	}
	defer closeStore()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	tracker := analytics.NewTracker(ctx, store.WithQuota(blobs, cfg.QuotaBytes),
		analytics.WithKey(cfg.StorageKey),
		analytics.WithLogger(log),
	)
	cancel()
	log.WithFields(logrus.Fields{
		"backend": cfg.StorageBackend,
		"key":     cfg.StorageKey,
		"session": tracker.SessionID(),
	}).Info("Analytics tracker ready")

	analyticsHandlers := handlers.NewAnalyticsHandlers(tracker, log)
	r := handlers.NewRouter(gin.Default(), analyticsHandlers, cfg.FEOrigin)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Infof("Go API server starting on http://localhost:%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Go API server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
	}

	log.Info("Server exiting.")
}

// openStore builds the configured blob backend and returns its cleanup func.
func openStore(cfg *config.Config, log *logrus.Logger) (store.BlobStore, func(), error) {
	switch cfg.StorageBackend {
	case config.BackendMemory:
		log.Warn("Using in-memory analytics storage; data is lost on restart")
		return store.NewMemoryStore(), func() {}, nil

	case config.BackendRedis:
		client, err := database.NewRedisDB(cfg.RedisURL, log)
		if err != nil {
			return nil, nil, err
		}
		return store.NewRedisStore(client.Client), client.Close, nil

	case config.BackendPostgres:
		client, err := database.NewPostgresDB(cfg.DatabaseURL, log)
		if err != nil {
			return nil, nil, err
		}
		s := store.NewPostgresStore(client.DB)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.EnsureSchema(ctx); err != nil {
			client.Close()
			return nil, nil, err
		}
		return s, client.Close, nil

	case config.BackendClickHouse:
		client, err := database.NewClickHouseDB(cfg.ClickHouse, log)
		if err != nil {
			return nil, nil, err
		}
		s := store.NewClickHouseStore(client.Conn)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.EnsureSchema(ctx); err != nil {
			client.Close()
			return nil, nil, err
		}
		return s, client.Close, nil

	default:
		s, err := store.NewFileStore(cfg.StorageDir)
		if err != nil {
			return nil, nil, err
		}
		return s, func() {}, nil
	}
}
