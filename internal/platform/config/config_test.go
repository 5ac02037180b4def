package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()

	assert.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StoreDriverPostgres, cfg.StoreDriver)
	assert.Equal(t, "300-M", cfg.RateLimit)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "TravelBooking", cfg.MongoDatabase)
	assert.Equal(t, "https://api.frankfurter.app", cfg.ExchangeRateAPIURL)
	assert.Equal(t, 5*time.Second, cfg.ExchangeRateAPITimeout)
	assert.Equal(t, 10*time.Minute, cfg.ExchangeRateCacheTTL)
	assert.Equal(t, 256, cfg.ExchangeRateCacheSize)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.True(t, cfg.RunMigrations)
	assert.True(t, cfg.ServeClient)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORE_DRIVER", "Memory")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("EXCHANGE_RATE_API_URL", "http://rates.test/")
	t.Setenv("EXCHANGE_RATE_API_TIMEOUT", "750ms")
	t.Setenv("IS_PRODUCTION", "true")

	cfg, err := LoadConfig()

	assert.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, StoreDriverMemory, cfg.StoreDriver)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "http://rates.test", cfg.ExchangeRateAPIURL)
	assert.Equal(t, 750*time.Millisecond, cfg.ExchangeRateAPITimeout)
	assert.True(t, cfg.IsProduction)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("STORE_DRIVER", "cassandra")
	t.Setenv("EXCHANGE_RATE_CACHE_TTL", "soon")
	t.Setenv("EXCHANGE_RATE_CACHE_SIZE", "-3")

	cfg, err := LoadConfig()

	assert.NoError(t, err)
	assert.Equal(t, StoreDriverPostgres, cfg.StoreDriver)
	assert.Equal(t, 10*time.Minute, cfg.ExchangeRateCacheTTL)
	assert.Equal(t, 256, cfg.ExchangeRateCacheSize)
}
