package app

import (
	"fmt"
	"time"

	"github.com/aussiebroadwan/storefront/internal/storefront/domain"
	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Remote service
	APIBaseURL   string        `env:"API_BASE_URL" envDefault:"http://localhost:5126/api/"`
	HTTPTimeout  time.Duration `env:"HTTP_TIMEOUT" envDefault:"10s"`
	APIRateLimit float64       `env:"API_RATE_LIMIT" envDefault:"20"` // requests per second, 0 disables
	APIRateBurst int           `env:"API_RATE_BURST" envDefault:"40"`

	// Local storage (token, guest cart)
	DatabaseFile string `env:"STOREFRONT_DATABASE_FILE" envDefault:"storefront.db"`

	// Cart enrichment
	EnrichmentPolicy  domain.EnrichmentPolicy `env:"CART_ENRICHMENT_POLICY" envDefault:"partial"`
	EnrichConcurrency int                     `env:"CART_ENRICH_CONCURRENCY" envDefault:"8"`

	Env                 string        `env:"ENV" envDefault:"dev"`
	LogLevel            string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat           string        `env:"LOG_FORMAT" envDefault:"json"`
	Port                int           `env:"PORT" envDefault:"8080"`
	ShutdownGracePeriod time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`
}

// LoadConfig reads the environment. RATELIMIT_* overrides are read by
// pkg/httpx itself.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects values the services cannot run with.
func (c Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("API_BASE_URL must not be empty")
	}
	if !c.EnrichmentPolicy.Valid() {
		return fmt.Errorf("invalid CART_ENRICHMENT_POLICY %q (want partial or strict)", c.EnrichmentPolicy)
	}
	if c.EnrichConcurrency < 1 {
		return fmt.Errorf("CART_ENRICH_CONCURRENCY must be at least 1, got %d", c.EnrichConcurrency)
	}
	if c.APIRateLimit < 0 || c.APIRateBurst < 0 {
		return fmt.Errorf("API_RATE_LIMIT and API_RATE_BURST must not be negative")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	return nil
}

// DSN is the sqlite connection string for DatabaseFile.
func (c Config) DSN() string {
	if c.DatabaseFile == ":memory:" {
		return c.DatabaseFile
	}
	return fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", c.DatabaseFile)
}
