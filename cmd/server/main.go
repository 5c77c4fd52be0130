package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stormfins/club-app/internal/api"
	"stormfins/club-app/internal/config"
	"stormfins/club-app/internal/snapshot"
	"stormfins/club-app/internal/storage"
	"stormfins/club-app/internal/store"
	syncadapter "stormfins/club-app/internal/sync"
	"stormfins/club-app/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// .env is optional; config falls back to real env vars and defaults.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}

	zlog, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	}, logger.DefaultServiceName)
	if err != nil {
		log.Fatalf("FATAL: Could not build logger: %v", err)
	}
	defer zlog.Sync()

	// --- Remote sync adapter ---
	var remote store.RemoteAdapter
	if cfg.Sync.Enabled() {
		remote = syncadapter.NewClient(cfg.Sync, zlog)
		zlog.Info("remote sync enabled", zap.String(logger.FieldDocID, cfg.Sync.ServerID))
	} else {
		zlog.Info("remote sync disabled, operating locally")
	}

	// --- Local snapshot backend ---
	var snap store.SnapshotStore
	switch cfg.Snapshot.Backend {
	case "file":
		snap = snapshot.NewFileStore(cfg.Snapshot.FilePath)
		zlog.Info("snapshot backend: file", zap.String("path", cfg.Snapshot.FilePath))
	case "mongo":
		client, err := snapshot.ConnectDB(cfg.Snapshot.MongoURI)
		if err != nil {
			zlog.Fatal("could not connect to MongoDB", zap.Error(err))
		}
		defer func() {
			if err := snapshot.DisconnectDB(client); err != nil {
				zlog.Warn("failed to disconnect MongoDB", zap.Error(err))
			}
		}()
		db := client.Database(cfg.Snapshot.MongoDatabase)
		snap = snapshot.NewMongoStore(db, cfg.Snapshot.MongoCollection)
		zlog.Info("snapshot backend: mongo", zap.String("database", cfg.Snapshot.MongoDatabase))
	case "none", "":
		zlog.Info("snapshot backend: none")
	default:
		zlog.Fatal("unknown snapshot backend", zap.String(logger.FieldBackend, cfg.Snapshot.Backend))
	}

	// --- Avatar object storage (optional) ---
	var files storage.FileStorage
	if cfg.S3.Enabled() {
		files, err = storage.NewS3Storage(cfg.S3, zlog)
		if err != nil {
			zlog.Fatal("failed to initialize avatar storage", zap.Error(err))
		}
	}

	// --- Application store ---
	st := store.New(remote, snap, zlog)
	loadCtx, loadCancel := context.WithTimeout(context.Background(), 30*time.Second)
	st.Load(loadCtx)
	loadCancel()

	// --- HTTP facade ---
	if cfg.JWT.Secret == "" {
		zlog.Fatal("jwt.secret must be configured")
	}
	router := gin.Default()
	api.SetupRoutes(router, cfg.JWT.Secret, cfg.JWT.Expiration, st, files)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		zlog.Info("server starting", zap.String("address", cfg.Server.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("listen and serve error", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zlog.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(ctxShutdown); err != nil {
		zlog.Fatal("server forced to shutdown", zap.Error(err))
	}
	zlog.Info("server exiting")
}
