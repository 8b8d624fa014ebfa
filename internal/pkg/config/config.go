package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (service endpoint, etc.)
// - default: Values common across all environments (timeouts, debounce, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	API    APIConfig
	Search SearchConfig
	Log    LogConfig
}

type APIConfig struct {
	BaseURL   string        `envconfig:"API_BASE_URL" required:"true"`
	Timeout   time.Duration `envconfig:"API_TIMEOUT" default:"10s"`
	RateLimit float64       `envconfig:"API_RATE_LIMIT" default:"10"`
	RateBurst int           `envconfig:"API_RATE_BURST" default:"5"`
}

type SearchConfig struct {
	// Quiet period between the last keystroke and the filtered query.
	Debounce time.Duration `envconfig:"SEARCH_DEBOUNCE" default:"300ms"`
}

type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL:   "http://localhost:8080",
			Timeout:   2 * time.Second,
			RateLimit: 1000,
			RateBurst: 1000,
		},
		Search: SearchConfig{
			Debounce: 300 * time.Millisecond,
		},
		Log: LogConfig{
			Level: "error", // Error level only for tests
		},
	}
}
