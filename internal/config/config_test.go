package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "ordering", cfg.ServiceName)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, StoreMemory, cfg.CartStore)
	assert.Equal(t, 2*time.Hour, cfg.CartTTL())
	assert.Equal(t, 2*time.Second, cfg.CheckoutDelay())
	assert.Equal(t, []string{"localhost:9092"}, cfg.KafkaBrokers)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("CART_STORE", "redis")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("CART_TTL_MINUTES", "30")
	t.Setenv("CHECKOUT_DELAY_MS", "100")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTPPort)
	assert.Equal(t, StoreRedis, cfg.CartStore)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.Equal(t, 30*time.Minute, cfg.CartTTL())
	assert.Equal(t, 100*time.Millisecond, cfg.CheckoutDelay())
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
}

func TestLoadRejectsUnknownStore(t *testing.T) {
	t.Setenv("CART_STORE", "postgres")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsBadPort(t *testing.T) {
	t.Setenv("HTTP_PORT", "99999")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsNonPositiveTTL(t *testing.T) {
	t.Setenv("CART_TTL_MINUTES", "0")

	_, err := Load()
	assert.Error(t, err)
}
