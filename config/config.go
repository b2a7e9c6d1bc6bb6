package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config carries every runtime knob, populated from the environment. A
// .env file is loaded by main before this is read.
type Config struct {
	Port string `envconfig:"PORT" default:"8081"`

	// Catalog source: CATALOG_URL wins when set, otherwise the local file.
	CatalogPath    string        `envconfig:"CATALOG_PATH" default:"data/products.json"`
	CatalogURL     string        `envconfig:"CATALOG_URL"`
	CatalogTimeout time.Duration `envconfig:"CATALOG_TIMEOUT" default:"10s"`

	// View layer.
	SearchDebounce time.Duration `envconfig:"SEARCH_DEBOUNCE" default:"300ms"`
	SessionTTL     time.Duration `envconfig:"SESSION_TTL" default:"30m"`

	// Rate limiting (needs Redis; disabled when REDIS_URL is empty).
	RedisURL         string        `envconfig:"REDIS_URL"`
	RateLimitMax     int           `envconfig:"RATE_LIMIT_MAX" default:"100"`
	RateLimitWindow  time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1m"`
	AllowedOrigins   []string      `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000,http://localhost:3001"`
	EnvironmentLabel string        `envconfig:"APP_ENV" default:"development"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("process env config: %w", err)
	}
	return cfg, nil
}
