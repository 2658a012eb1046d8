package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rgehrsitz/hpgo/internal/params"
)

// Environment variables read by LoadServerConfig.
const (
	EnvAddr        = "HPGO_ADDR"
	EnvFundingFile = "HPGO_FUNDING_FILE"
	EnvDebug       = "HPGO_DEBUG"
	EnvRateLimit   = "HPGO_RATE_LIMIT"
	EnvRedisAddr   = "HPGO_REDIS_ADDR"
	EnvCacheTTL    = "HPGO_CACHE_TTL"
)

const (
	DefaultAddr      = ":8080"
	DefaultRateLimit = 60
	RateLimitWindow  = time.Minute
	DefaultCacheTTL  = 24 * time.Hour
)

// ServerConfig holds settings for the HTTP service.
type ServerConfig struct {
	Addr        string
	FundingFile string
	Debug       bool
	// RateLimit is requests per client per RateLimitWindow; 0 disables limiting.
	RateLimit int
	// RedisAddr enables the estimate cache when set.
	RedisAddr string
	CacheTTL  time.Duration
}

// LoadServerConfig reads the environment, after a best-effort load of
// dotenvPath, and fills in defaults.
func LoadServerConfig(dotenvPath string) (ServerConfig, error) {
	if dotenvPath != "" {
		if err := loadDotEnv(dotenvPath); err != nil {
			return ServerConfig{}, fmt.Errorf("failed to read %s: %w", dotenvPath, err)
		}
	}

	cfg := ServerConfig{
		Addr:        strings.TrimSpace(os.Getenv(EnvAddr)),
		FundingFile: strings.TrimSpace(os.Getenv(EnvFundingFile)),
		RedisAddr:   strings.TrimSpace(os.Getenv(EnvRedisAddr)),
		RateLimit:   DefaultRateLimit,
		CacheTTL:    DefaultCacheTTL,
	}
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}

	if raw := strings.TrimSpace(os.Getenv(EnvDebug)); raw != "" {
		debug, ok := params.ParseBool(raw)
		if !ok {
			return ServerConfig{}, fmt.Errorf("%s: expected a boolean, got %q", EnvDebug, raw)
		}
		cfg.Debug = debug
	}

	if raw := strings.TrimSpace(os.Getenv(EnvRateLimit)); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return ServerConfig{}, fmt.Errorf("%s: expected a non-negative whole number, got %q", EnvRateLimit, raw)
		}
		cfg.RateLimit = n
	}

	if raw := strings.TrimSpace(os.Getenv(EnvCacheTTL)); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil || ttl < 0 {
			return ServerConfig{}, fmt.Errorf("%s: expected a non-negative duration, got %q", EnvCacheTTL, raw)
		}
		cfg.CacheTTL = ttl
	}

	return cfg, nil
}
