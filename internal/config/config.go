package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultAppName     = "CieloFacade"
	defaultAppEnv      = "development"
	defaultPort        = "8080"
	defaultLogLevel    = "info"
	defaultAPIURL      = "https://apisandbox.cieloecommerce.cielo.com.br"
	defaultQueryAPIURL = "https://apiquerysandbox.cieloecommerce.cielo.com.br"

	defaultGatewayTimeout = 30 * time.Second
	defaultShutdownDelay  = 10 * time.Second
	defaultBinCacheTTL    = time.Hour
	defaultIdempotencyTTL = 24 * time.Hour
)

// Config captures application runtime configuration loaded from environment variables.
type Config struct {
	AppName  string
	AppEnv   string
	Port     string
	LogLevel string

	CieloAPIURL      string
	CieloQueryAPIURL string
	CieloMerchantId  string
	CieloMerchantKey string
	GatewayTimeout   time.Duration

	AllowForeignCards bool

	// RedisURL is optional; when empty, BIN lookups are not cached.
	RedisURL    string
	BinCacheTTL time.Duration

	// DatabaseURL is optional; when empty, payment rules come from the
	// built-in defaults instead of Postgres.
	DatabaseURL string

	IdempotencyTTL time.Duration
	ShutdownPeriod time.Duration
}

// Load reads configuration values from the environment and populates a Config instance.
func Load() (Config, error) {
	cfg := Config{
		AppName:           getEnv("APP_NAME", defaultAppName),
		AppEnv:            getEnv("APP_ENV", defaultAppEnv),
		Port:              getEnv("PORT", defaultPort),
		LogLevel:          strings.ToLower(getEnv("LOG_LEVEL", defaultLogLevel)),
		CieloAPIURL:       strings.TrimRight(getEnv("CIELO_API_URL", defaultAPIURL), "/"),
		CieloQueryAPIURL:  strings.TrimRight(getEnv("CIELO_QUERY_API_URL", defaultQueryAPIURL), "/"),
		CieloMerchantId:   os.Getenv("CIELO_MERCHANT_ID"),
		CieloMerchantKey:  os.Getenv("CIELO_MERCHANT_KEY"),
		GatewayTimeout:    defaultGatewayTimeout,
		AllowForeignCards: os.Getenv("ALLOW_FOREIGN_CARDS") == "true",
		RedisURL:          os.Getenv("REDIS_URL"),
		BinCacheTTL:       defaultBinCacheTTL,
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		IdempotencyTTL:    defaultIdempotencyTTL,
		ShutdownPeriod:    defaultShutdownDelay,
	}

	var err error
	if cfg.GatewayTimeout, err = durationEnv("CIELO_TIMEOUT", cfg.GatewayTimeout); err != nil {
		return Config{}, err
	}
	if cfg.BinCacheTTL, err = durationEnv("BIN_CACHE_TTL", cfg.BinCacheTTL); err != nil {
		return Config{}, err
	}
	if cfg.IdempotencyTTL, err = durationEnv("IDEMPOTENCY_TTL", cfg.IdempotencyTTL); err != nil {
		return Config{}, err
	}
	if cfg.ShutdownPeriod, err = durationEnv("SHUTDOWN_TIMEOUT", cfg.ShutdownPeriod); err != nil {
		return Config{}, err
	}

	if (cfg.CieloMerchantId == "") != (cfg.CieloMerchantKey == "") {
		return Config{}, fmt.Errorf("CIELO_MERCHANT_ID and CIELO_MERCHANT_KEY must be set together")
	}

	return cfg, nil
}

// HasGatewayCredentials reports whether real merchant credentials are
// configured. Without them the server runs against the simulated gateway.
func (c Config) HasGatewayCredentials() bool {
	return c.CieloMerchantId != "" && c.CieloMerchantKey != ""
}

// Address returns the listen address in the format Fiber expects.
func (c Config) Address() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return fmt.Sprintf(":%s", c.Port)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// durationEnv reads KEY as a Go duration, or KEY_SECONDS as an integer
// number of seconds, preferring the former.
func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %w", key, err)
		}
		return d, nil
	}
	if v := os.Getenv(key + "_SECONDS"); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("invalid %s_SECONDS: %w", key, err)
		}
		return time.Duration(seconds) * time.Second, nil
	}
	return fallback, nil
}
