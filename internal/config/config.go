package config

import (
	"os"
	"strconv"
	"time"

	"github.com/godilite/talentbridge-stats/internal/stats"
	"github.com/godilite/talentbridge-stats/internal/upstream"
	"go.uber.org/zap"
)

// Config holds all configuration for the application.
type Config struct {
	AppEnv                string
	AppName               string
	HTTPPort              int
	HTTPReadTimeout       time.Duration
	HTTPWriteTimeout      time.Duration
	UpstreamBaseURL       string
	ExportFilePrefix      string
	GRPCEnabled           bool
	GRPCPort              int
	GRPCReflectionEnabled bool
	RedisAddr             string
	CacheTTL              time.Duration
	ShutdownTimeout       time.Duration
}

// CacheEnabled reports whether summaries should be cached. Both an address
// and a positive TTL are needed; otherwise every request fetches fresh.
func (c *Config) CacheEnabled() bool {
	return c.RedisAddr != "" && c.CacheTTL > 0
}

// LoadFromEnv loads configuration from environment variables.
func LoadFromEnv() *Config {
	return &Config{
		AppEnv:                getEnv("APP_ENV", "development"),
		AppName:               getEnv("APP_NAME", "talentbridge-stats"),
		HTTPPort:              getInt("HTTP_PORT", 8080),
		HTTPReadTimeout:       getDuration("HTTP_READ_TIMEOUT", 30*time.Second),
		HTTPWriteTimeout:      getDuration("HTTP_WRITE_TIMEOUT", 60*time.Second),
		UpstreamBaseURL:       getEnv("UPSTREAM_BASE_URL", upstream.DefaultBaseURL),
		ExportFilePrefix:      getEnv("EXPORT_FILE_PREFIX", stats.DefaultExportPrefix),
		GRPCEnabled:           getBool("GRPC_ENABLED", false),
		GRPCPort:              getInt("GRPC_PORT", 50051),
		GRPCReflectionEnabled: getBool("GRPC_REFLECTION_ENABLED", false),
		RedisAddr:             getEnv("REDIS_ADDR", ""),
		CacheTTL:              getDuration("CACHE_TTL", 0),
		ShutdownTimeout:       getDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

// NewLogger creates a new Zap logger based on the config.
func NewLogger(cfg *Config) (*zap.Logger, error) {
	if cfg.AppEnv == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

// getDuration accepts Go durations ("5m") or plain seconds ("300").
func getDuration(key string, fallback time.Duration) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}
