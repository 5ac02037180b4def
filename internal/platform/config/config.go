package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported values of STORE_DRIVER.
const (
	StoreDriverPostgres = "postgres"
	StoreDriverMongo    = "mongo"
	StoreDriverMemory   = "memory"
)

// Config holds application configuration.
type Config struct {
	Port               string
	IsProduction       bool
	RateLimit          string
	CORSAllowedOrigins []string
	ServeClient        bool
	LogLevel           string
	LogFormat          string
	ShutdownTimeout    time.Duration

	StoreDriver   string
	DatabaseURL   string
	EnableDBCheck bool
	RunMigrations bool
	MongoURL      string
	MongoDatabase string

	ExchangeRateAPIURL     string
	ExchangeRateAPITimeout time.Duration
	ExchangeRateCacheTTL   time.Duration
	ExchangeRateCacheSize  int
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return fromViper(v), nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("SERVE_CLIENT", true)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")

	v.SetDefault("STORE_DRIVER", StoreDriverPostgres)
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("RUN_MIGRATIONS", true)
	v.SetDefault("MONGO_URL", "mongodb://mongo:27017/")
	v.SetDefault("MONGO_DATABASE", "TravelBooking")

	v.SetDefault("EXCHANGE_RATE_API_URL", "https://api.frankfurter.app")
	v.SetDefault("EXCHANGE_RATE_API_TIMEOUT", "5s")
	v.SetDefault("EXCHANGE_RATE_CACHE_TTL", "10m")
	v.SetDefault("EXCHANGE_RATE_CACHE_SIZE", 256)
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{
		Port:               v.GetString("PORT"),
		IsProduction:       v.GetBool("IS_PRODUCTION"),
		RateLimit:          v.GetString("RATE_LIMIT"),
		CORSAllowedOrigins: strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ","),
		ServeClient:        v.GetBool("SERVE_CLIENT"),
		LogLevel:           strings.ToLower(v.GetString("LOG_LEVEL")),
		LogFormat:          strings.ToLower(v.GetString("LOG_FORMAT")),
		ShutdownTimeout:    durationOrDefault(v, "SHUTDOWN_TIMEOUT", 10*time.Second),

		StoreDriver:   strings.ToLower(v.GetString("STORE_DRIVER")),
		DatabaseURL:   v.GetString("PGSQL_URL"),
		EnableDBCheck: v.GetBool("ENABLE_DB_CHECK"),
		RunMigrations: v.GetBool("RUN_MIGRATIONS"),
		MongoURL:      v.GetString("MONGO_URL"),
		MongoDatabase: v.GetString("MONGO_DATABASE"),

		ExchangeRateAPIURL:     strings.TrimRight(v.GetString("EXCHANGE_RATE_API_URL"), "/"),
		ExchangeRateAPITimeout: durationOrDefault(v, "EXCHANGE_RATE_API_TIMEOUT", 5*time.Second),
		ExchangeRateCacheTTL:   durationOrDefault(v, "EXCHANGE_RATE_CACHE_TTL", 10*time.Minute),
		ExchangeRateCacheSize:  v.GetInt("EXCHANGE_RATE_CACHE_SIZE"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	switch cfg.StoreDriver {
	case StoreDriverPostgres:
		if cfg.DatabaseURL == "" {
			log.Println("Warning: PGSQL_URL environment variable not set.")
		}
	case StoreDriverMongo, StoreDriverMemory:
	default:
		log.Printf("Warning: Unknown STORE_DRIVER ('%s'). Defaulting to %s.\n", cfg.StoreDriver, StoreDriverPostgres)
		cfg.StoreDriver = StoreDriverPostgres
	}

	if cfg.ExchangeRateCacheSize <= 0 {
		log.Printf("Warning: Invalid value for EXCHANGE_RATE_CACHE_SIZE (%d). Defaulting to 256.\n", cfg.ExchangeRateCacheSize)
		cfg.ExchangeRateCacheSize = 256
	}

	return cfg
}

// durationOrDefault parses key as a duration, logging and falling back to def when invalid.
func durationOrDefault(v *viper.Viper, key string, def time.Duration) time.Duration {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def.String())
		}
		return def
	}
	return d
}
