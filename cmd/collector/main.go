package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	kafkaadapter "github.com/couchcryptid/metar-decode-service/internal/adapter/kafka"
	"github.com/couchcryptid/metar-decode-service/internal/adapter/noaa"
	"github.com/couchcryptid/metar-decode-service/internal/collector"
	"github.com/couchcryptid/metar-decode-service/internal/config"
	"github.com/couchcryptid/metar-decode-service/internal/metar"
	"github.com/couchcryptid/metar-decode-service/internal/observability"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if len(cfg.Stations) == 0 {
		slog.Error("STATIONS is required for the collector")
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	var source metar.ReportSource = noaa.NewClient(cfg.NOAABaseURL, cfg.NOAATimeout, metrics, logger)
	source = noaa.NewRateLimitedSource(source, cfg.NOAARateLimit)
	source = noaa.NewCachedSource(source, cfg.NOAACacheSize, cfg.NOAACacheTTL, metrics)

	publisher := kafkaadapter.NewReportWriter(cfg, logger)
	c := collector.New(cfg.Stations, source, publisher, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("collector starting",
		"stations", len(cfg.Stations),
		"schedule", cfg.CollectSchedule)

	// Run one pass immediately so a fresh deployment does not wait for the
	// first cron tick.
	if err := c.RunOnce(ctx); err != nil {
		logger.Error("initial collection pass failed", "error", err)
	}

	// Prevent overlapping passes when a pass outlasts the schedule.
	sched := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	if _, err := sched.AddFunc(cfg.CollectSchedule, func() {
		if err := c.RunOnce(ctx); err != nil {
			logger.Error("collection pass failed", "error", err)
		}
	}); err != nil {
		logger.Error("invalid COLLECT_SCHEDULE", "schedule", cfg.CollectSchedule, "error", err)
		os.Exit(1)
	}
	sched.Start()

	<-ctx.Done()
	logger.Info("shutting down")

	<-sched.Stop().Done()
	if err := publisher.Close(); err != nil {
		logger.Error("kafka writer close error", "error", err)
	}

	logger.Info("shutdown complete")
}
