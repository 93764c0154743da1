package config

import (
	"errors"
	"net/url"
	"os"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
	"github.com/joho/godotenv"
)

// Config holds all CLI settings, populated from environment variables.
type Config struct {
	WttrBaseURL     string
	WttrTimeout     time.Duration
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Optional report sink; enabled when brokers are set.
	KafkaBrokers []string
	KafkaTopic   string
	KafkaEnabled bool

	// Optional metrics push; enabled when the URL is set.
	PushgatewayURL string
	PushgatewayJob string
}

// Load reads configuration from the environment (and a .env file in the
// working directory, if present), applying defaults where unset.
func Load() (*Config, error) {
	// A missing .env file is the normal case.
	_ = godotenv.Load()

	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	wttrTimeout, err := time.ParseDuration(sharedcfg.EnvOrDefault("WTTR_TIMEOUT", "10s"))
	if err != nil || wttrTimeout <= 0 {
		return nil, errors.New("invalid WTTR_TIMEOUT")
	}

	var brokers []string
	if raw := os.Getenv("KAFKA_BROKERS"); raw != "" {
		brokers = sharedcfg.ParseBrokers(raw)
	}

	cfg := &Config{
		WttrBaseURL:     sharedcfg.EnvOrDefault("WTTR_BASE_URL", "https://wttr.in"),
		WttrTimeout:     wttrTimeout,
		LogLevel:        sharedcfg.EnvOrDefault("LOG_LEVEL", "warn"),
		LogFormat:       sharedcfg.EnvOrDefault("LOG_FORMAT", "text"),
		ShutdownTimeout: shutdownTimeout,

		KafkaBrokers: brokers,
		KafkaTopic:   sharedcfg.EnvOrDefault("KAFKA_TOPIC", "weather-hazards"),
		KafkaEnabled: len(brokers) > 0,

		PushgatewayURL: os.Getenv("PUSHGATEWAY_URL"),
		PushgatewayJob: sharedcfg.EnvOrDefault("PUSHGATEWAY_JOB", "weather-hazards"),
	}

	if u, err := url.Parse(cfg.WttrBaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return nil, errors.New("invalid WTTR_BASE_URL")
	}
	if cfg.KafkaEnabled && cfg.KafkaTopic == "" {
		return nil, errors.New("KAFKA_TOPIC is required when KAFKA_BROKERS is set")
	}
	if cfg.PushgatewayURL != "" && cfg.PushgatewayJob == "" {
		return nil, errors.New("PUSHGATEWAY_JOB is required when PUSHGATEWAY_URL is set")
	}

	return cfg, nil
}
