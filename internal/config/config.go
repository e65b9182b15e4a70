// Package config loads the runtime configuration of btcanalyser from
// environment variables prefixed with BTCANALYSER_.
package config

import (
	"time"

	"github.com/gabapcia/btcanalyser/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every environment variable name.
const Prefix = "btcanalyser"

// Config holds every tunable of a single invocation.
type Config struct {
	// APIURL is the base URL of the blockchain.info explorer API.
	APIURL string `envconfig:"API_URL" default:"https://blockchain.info" validate:"required,url"`

	// StatsURL serves the current market price (market_price_usd).
	StatsURL string `envconfig:"STATS_URL" default:"https://api.blockchain.info/stats" validate:"required,url"`

	HTTPTimeout      time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s" validate:"gt=0"`
	HTTPRetryMax     int           `envconfig:"HTTP_RETRY_MAX" default:"2" validate:"gte=0"`
	HTTPRetryWaitMin time.Duration `envconfig:"HTTP_RETRY_WAIT_MIN" default:"500ms" validate:"gte=0"`
	HTTPRetryWaitMax time.Duration `envconfig:"HTTP_RETRY_WAIT_MAX" default:"3s" validate:"gtefield=HTTPRetryWaitMin"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"error" validate:"oneof=debug info warn error"`

	// TelemetryEnabled turns on OTLP trace and metric export. The exporters
	// read the standard OTEL_EXPORTER_OTLP_* variables.
	TelemetryEnabled bool   `envconfig:"TELEMETRY_ENABLED" default:"false"`
	ServiceName      string `envconfig:"SERVICE_NAME" default:"btcanalyser" validate:"required"`
}

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, err
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
