package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	KafkaBrokers     []string
	KafkaSourceTopic string
	KafkaSinkTopic   string
	KafkaGroupID     string
	HTTPAddr         string
	LogLevel         string
	LogFormat        string
	ShutdownTimeout  time.Duration

	BatchSize          int
	BatchFlushInterval time.Duration

	// Upstream METAR source (aviationweather.gov) configuration.
	NOAABaseURL   string
	NOAATimeout   time.Duration
	NOAARateLimit float64 // requests per second
	NOAACacheSize int
	NOAACacheTTL  time.Duration

	// Collector configuration.
	Stations        []string
	CollectSchedule string
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	batchSize, err := sharedcfg.ParseBatchSize()
	if err != nil {
		return nil, err
	}

	flushInterval, err := sharedcfg.ParseBatchFlushInterval()
	if err != nil {
		return nil, err
	}

	noaaTimeout, err := parseDuration("NOAA_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	cacheTTL, err := parseDuration("NOAA_CACHE_TTL", "5m")
	if err != nil {
		return nil, err
	}

	rateLimit, err := parseRateLimit()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		KafkaBrokers:       sharedcfg.ParseBrokers(sharedcfg.EnvOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaSourceTopic:   sharedcfg.EnvOrDefault("KAFKA_SOURCE_TOPIC", "raw-metar-reports"),
		KafkaSinkTopic:     sharedcfg.EnvOrDefault("KAFKA_SINK_TOPIC", "decoded-observations"),
		KafkaGroupID:       sharedcfg.EnvOrDefault("KAFKA_GROUP_ID", "metar-decode-service"),
		HTTPAddr:           sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:           sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:          sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout:    shutdownTimeout,
		BatchSize:          batchSize,
		BatchFlushInterval: flushInterval,

		NOAABaseURL:   sharedcfg.EnvOrDefault("NOAA_BASE_URL", "https://aviationweather.gov"),
		NOAATimeout:   noaaTimeout,
		NOAARateLimit: rateLimit,
		NOAACacheSize: parseCacheSize(),
		NOAACacheTTL:  cacheTTL,

		Stations:        parseStations(),
		CollectSchedule: sharedcfg.EnvOrDefault("COLLECT_SCHEDULE", "@every 10m"),
	}

	if len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("KAFKA_BROKERS is required")
	}
	if cfg.KafkaSourceTopic == "" {
		return nil, errors.New("KAFKA_SOURCE_TOPIC is required")
	}
	if cfg.KafkaSinkTopic == "" {
		return nil, errors.New("KAFKA_SINK_TOPIC is required")
	}
	if cfg.NOAABaseURL == "" {
		return nil, errors.New("NOAA_BASE_URL is required")
	}

	return cfg, nil
}

func parseDuration(key, fallback string) (time.Duration, error) {
	d, err := time.ParseDuration(sharedcfg.EnvOrDefault(key, fallback))
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return d, nil
}

func parseRateLimit() (float64, error) {
	s := sharedcfg.EnvOrDefault("NOAA_RATE_LIMIT", "1")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return 0, errors.New("invalid NOAA_RATE_LIMIT")
	}
	return v, nil
}

func parseCacheSize() int {
	if s := os.Getenv("NOAA_CACHE_SIZE"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return 500
}

// parseStations splits the STATIONS list and normalizes ICAO identifiers.
func parseStations() []string {
	raw := os.Getenv("STATIONS")
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	stations := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToUpper(strings.TrimSpace(p))
		if p != "" {
			stations = append(stations, p)
		}
	}
	return stations
}
