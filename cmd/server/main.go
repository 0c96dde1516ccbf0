package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	httpadapter "github.com/skycast/weather-lookup/internal/adapter/http"
	kafkaadapter "github.com/skycast/weather-lookup/internal/adapter/kafka"
	"github.com/skycast/weather-lookup/internal/adapter/openweather"
	"github.com/skycast/weather-lookup/internal/config"
	"github.com/skycast/weather-lookup/internal/lookup"
	"github.com/skycast/weather-lookup/internal/observability"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	// Alert publishing is feature-flagged via KAFKA_BROKERS.
	var publisher lookup.AlertPublisher
	var writer *kafkaadapter.Writer
	if cfg.AlertPublishingEnabled {
		writer = kafkaadapter.NewWriter(cfg, logger)
		publisher = writer
		metrics.AlertPublishingEnabled.Set(1)
		logger.Info("alert publishing enabled", "topic", cfg.KafkaAlertTopic, "brokers", cfg.KafkaBrokers)
	} else {
		logger.Info("alert publishing disabled")
	}

	client := openweather.NewClient(cfg.OWMAPIKey, cfg.OWMBaseURL, cfg.OWMTimeout, logger)
	provider := openweather.NewCachedProvider(client, cfg.CacheSize, cfg.CacheTTL, metrics)

	svc := lookup.New(provider, publisher, logger, metrics)

	srv := httpadapter.NewServer(cfg.HTTPAddr, svc, svc, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if writer != nil {
		if err := writer.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
