// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/bellavista/ordering/pkg/config"
)

// Cart store backends.
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// Config holds all configuration for the ordering service.
type Config struct {
	ServiceName string `env:"SERVICE_NAME" envDefault:"ordering"`
	HTTPPort    int    `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// CartStore selects the session store backend: memory or redis.
	CartStore      string `env:"CART_STORE" envDefault:"memory"`
	RedisAddr      string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword  string `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB        int    `env:"REDIS_DB" envDefault:"0"`
	CartTTLMinutes int    `env:"CART_TTL_MINUTES" envDefault:"120"`

	KafkaBrokers []string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`

	// CheckoutDelayMS is how long a submission stays in the submitting
	// state before the simulated payment settles.
	CheckoutDelayMS int `env:"CHECKOUT_DELAY_MS" envDefault:"2000"`

	AllowedOrigin string `env:"ALLOWED_ORIGIN" envDefault:"*"`

	ShutdownTimeoutSeconds int `env:"SHUTDOWN_TIMEOUT_SECONDS" envDefault:"10"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.CartStore != StoreMemory && c.CartStore != StoreRedis {
		return fmt.Errorf("config: CART_STORE must be %q or %q, got %q", StoreMemory, StoreRedis, c.CartStore)
	}
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("config: HTTP_PORT out of range: %d", c.HTTPPort)
	}
	if c.CartTTLMinutes < 1 {
		return fmt.Errorf("config: CART_TTL_MINUTES must be positive: %d", c.CartTTLMinutes)
	}
	if c.CheckoutDelayMS < 0 {
		return fmt.Errorf("config: CHECKOUT_DELAY_MS must not be negative: %d", c.CheckoutDelayMS)
	}
	return nil
}

// CartTTL returns the cart session TTL as a duration.
func (c *Config) CartTTL() time.Duration {
	return time.Duration(c.CartTTLMinutes) * time.Minute
}

// CheckoutDelay returns the simulated settlement delay as a duration.
func (c *Config) CheckoutDelay() time.Duration {
	return time.Duration(c.CheckoutDelayMS) * time.Millisecond
}

// ShutdownTimeout returns the graceful shutdown window as a duration.
func (c *Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}
