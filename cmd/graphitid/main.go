package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/loktar00/graphiti-state/internal/config"
	"github.com/loktar00/graphiti-state/internal/status"
	"github.com/loktar00/graphiti-state/pkg/adapters/metrics/prometheus"
	"github.com/loktar00/graphiti-state/pkg/adapters/storage/file"
	"github.com/loktar00/graphiti-state/pkg/api/http"
)

var (
	// Version is set by build flags
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := initLogger(cfg.LogLevel)
	defer logger.Sync()

	logger.Info("starting Graphiti status server",
		zap.String("version", Version),
		zap.String("build_time", BuildTime))

	// Report integration readiness up front. The graph database is never
	// dialed from here; only the client options are built.
	summary := status.Summarize(cfg)
	if summary.Available {
		opts, err := cfg.RedisOptions()
		if err != nil {
			logger.Warn("connection URI not parseable", zap.Error(err))
		} else {
			logger.Info("Graphiti integration available",
				zap.String("addr", opts.Addr),
				zap.String("database", cfg.Database),
				zap.Bool("telemetry", cfg.TelemetryEnabled))
		}
	} else {
		logger.Warn("Graphiti integration unavailable",
			zap.String("reason", summary.Reason))
	}

	// Initialize adapters
	metricsCollector := prometheus.NewCollector()
	stateStorage := file.NewStateStorage(metricsCollector, logger)

	// Initialize API server
	httpServer := http.NewServer(&http.Config{
		Port:     cfg.HTTPPort,
		Graphiti: cfg,
		Store:    stateStorage,
		Metrics:  metricsCollector,
		Logger:   logger,
	})

	// Start server
	go func() {
		if err := httpServer.Start(); err != nil {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	logger.Info("Graphiti status server started",
		zap.Int("http_port", cfg.HTTPPort),
		zap.String("state_dir", cfg.StateDir))

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	logger.Info("received shutdown signal")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
	}

	logger.Info("Graphiti status server shut down complete")
}

// initLogger initializes the logger based on log level
func initLogger(level string) *zap.Logger {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapLevel)
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}

	return logger
}
