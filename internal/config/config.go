package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	OWMAPIKey  string
	OWMBaseURL string
	OWMTimeout time.Duration

	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	CacheSize int
	CacheTTL  time.Duration

	// Alert publishing configuration. Publishing is enabled when brokers
	// are configured; lookups succeed either way.
	KafkaBrokers           []string
	KafkaAlertTopic        string
	AlertPublishingEnabled bool
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	owmTimeout, err := parseDurationEnv("OWM_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	shutdownTimeout, err := parseDurationEnv("SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	cacheTTL, err := parseDurationEnv("CACHE_TTL", 10*time.Minute)
	if err != nil {
		return nil, err
	}

	cacheSize, err := parsePositiveIntEnv("CACHE_SIZE", 256)
	if err != nil {
		return nil, err
	}

	brokers := parseBrokers(os.Getenv("KAFKA_BROKERS"))

	cfg := &Config{
		OWMAPIKey:  os.Getenv("OWM_API_KEY"),
		OWMBaseURL: envOrDefault("OWM_BASE_URL", "https://api.openweathermap.org/data/2.5/weather"),
		OWMTimeout: owmTimeout,

		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		CacheSize: cacheSize,
		CacheTTL:  cacheTTL,

		KafkaBrokers:           brokers,
		KafkaAlertTopic:        envOrDefault("KAFKA_ALERT_TOPIC", "weather-alerts"),
		AlertPublishingEnabled: len(brokers) > 0,
	}

	if cfg.OWMAPIKey == "" {
		return nil, errors.New("OWM_API_KEY is required")
	}
	if cfg.OWMBaseURL == "" {
		return nil, errors.New("OWM_BASE_URL must not be empty")
	}
	if cfg.AlertPublishingEnabled && cfg.KafkaAlertTopic == "" {
		return nil, errors.New("KAFKA_ALERT_TOPIC is required when KAFKA_BROKERS is set")
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDurationEnv(key string, fallback time.Duration) (time.Duration, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, errors.New("invalid " + key)
	}
	return d, nil
}

func parsePositiveIntEnv(key string, fallback int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, errors.New("invalid " + key)
	}
	return n, nil
}

// parseBrokers splits a comma-separated broker list, dropping empty entries.
func parseBrokers(s string) []string {
	var brokers []string
	for _, b := range strings.Split(s, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
