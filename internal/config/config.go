package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds application configuration loaded from the environment
type Config struct {
	Port     int    `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	Origin   string `env:"ORIGIN" envDefault:"*"`

	Vault struct {
		// Empty dir keeps everything in memory.
		Dir        string `env:"VAULT_DIR" envDefault:""`
		QuotaBytes int    `env:"VAULT_QUOTA_BYTES" envDefault:"5242880"`
		Namespace  string `env:"VAULT_NAMESPACE" envDefault:"mazora"`
	}

	Remote struct {
		URL    string `env:"REMOTE_URL"`
		APIKey string `env:"REMOTE_API_KEY"`
	}

	Content struct {
		URL     string        `env:"CONTENT_API_URL"`
		APIKey  string        `env:"CONTENT_API_KEY"`
		Model   string        `env:"CONTENT_MODEL" envDefault:"faq-writer"`
		Timeout time.Duration `env:"CONTENT_TIMEOUT" envDefault:"20s"`
	}

	LoginDelay        time.Duration `env:"LOGIN_DELAY" envDefault:"800ms"`
	PaymentDelay      time.Duration `env:"PAYMENT_DELAY" envDefault:"1000ms"`
	ReferenceCurrency string        `env:"REFERENCE_CURRENCY" envDefault:"XOF"`
	DefaultLanguage   string        `env:"DEFAULT_LANGUAGE" envDefault:"fr"`
	SeedDemoData      bool          `env:"SEED_DEMO_DATA" envDefault:"true"`
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// Load reads an optional .env file and then the process environment
func Load() (*Config, error) {
	// a missing .env is normal outside local dev
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parse env: %w", err)
	}
	if cfg.Vault.QuotaBytes <= 0 {
		return nil, fmt.Errorf("config: VAULT_QUOTA_BYTES must be positive, got %d", cfg.Vault.QuotaBytes)
	}
	return cfg, nil
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
