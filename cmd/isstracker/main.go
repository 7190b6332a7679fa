package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/isstracker/internal/config"
	logpkg "github.com/kailas-cloud/isstracker/internal/logger"
	"github.com/kailas-cloud/isstracker/internal/metrics"
	datasetrepo "github.com/kailas-cloud/isstracker/internal/repository/dataset"
	"github.com/kailas-cloud/isstracker/internal/repository/feed"
	"github.com/kailas-cloud/isstracker/internal/source"
	fssource "github.com/kailas-cloud/isstracker/internal/source/fs"
	s3source "github.com/kailas-cloud/isstracker/internal/source/s3"
	chiTransport "github.com/kailas-cloud/isstracker/internal/transport/chi"
	epochuc "github.com/kailas-cloud/isstracker/internal/usecase/epoch"
	healthuc "github.com/kailas-cloud/isstracker/internal/usecase/health"
	loaduc "github.com/kailas-cloud/isstracker/internal/usecase/load"
	sightinguc "github.com/kailas-cloud/isstracker/internal/usecase/sighting"
	"github.com/kailas-cloud/isstracker/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting ISS tracker",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("source_driver", cfg.Source.Driver),
	)

	ctx := context.Background()

	src, err := buildSource(ctx, cfg.Source)
	if err != nil {
		logger.Fatal("Failed to create document source", zap.Error(err))
	}
	logger.Info("Document source ready",
		zap.String("source", src.Name()),
		zap.String("epoch_file", cfg.Source.EpochFile),
		zap.String("sighting_file", cfg.Source.SightingFile),
	)

	metrics.RegisterLoadMetrics()

	// Repositories
	feedRepo := feed.New(src, cfg.Source.EpochFile, cfg.Source.SightingFile)
	store := datasetrepo.New()

	// Use case services
	epochSvc := epochuc.New(store)
	sightingSvc := sightinguc.New(store)
	loadSvc := loaduc.New(feedRepo, store, logger).WithRecorder(metrics.LoadRecorder{})
	healthSvc := healthuc.New(feedRepo, store)

	loadTimeout := time.Duration(cfg.Load.TimeoutSec) * time.Second
	if cfg.Load.OnStart {
		loadCtx, cancel := context.WithTimeout(ctx, loadTimeout)
		if _, err := loadSvc.Load(loadCtx); err != nil {
			// Not fatal: POST /load can retry once the documents are in place.
			logger.Error("Initial load failed", zap.Error(err))
		}
		cancel()
	}

	server := chiTransport.NewServer(epochSvc, sightingSvc, loadSvc, healthSvc, store, logger).
		WithLoadTimeout(loadTimeout)
	r := chiTransport.NewRouter(server, logger)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// buildSource picks the document source for the configured driver.
func buildSource(ctx context.Context, cfg config.SourceConfig) (source.Source, error) {
	switch source.Driver(cfg.Driver) {
	case source.DriverFS:
		return fssource.New(cfg.Dir), nil
	case source.DriverS3:
		s, err := s3source.New(ctx, s3source.Config{
			Bucket:    cfg.S3.Bucket,
			Prefix:    cfg.S3.Prefix,
			Region:    cfg.S3.Region,
			Endpoint:  cfg.S3.Endpoint,
			PathStyle: cfg.S3.PathStyle,
		})
		if err != nil {
			return nil, fmt.Errorf("s3 source: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown source driver %q", cfg.Driver)
	}
}
