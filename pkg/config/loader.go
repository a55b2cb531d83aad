package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// Load parses environment variables into the provided struct using `env`
// tags. The environment is the ordering service's only configuration
// source; every tunable (CART_STORE, CHECKOUT_DELAY_MS, KAFKA_BROKERS, and
// so on) declares its variable and default on the config struct itself.
func Load(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}
	return nil
}
